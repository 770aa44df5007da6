// Package bench provides benchmarking primitives for the wordcloud bench
// command.
package bench

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"
)

// RunResult holds the timing and pipeline metadata for a single run.
type RunResult struct {
	Index    int
	Cold     bool // true for the first run (cold-start)
	Duration time.Duration
	Tokens   int
	Distinct int
}

// TokensPerSec returns the pipeline throughput for this run.
// Returns 0 if the duration is zero to avoid division by zero.
func (r RunResult) TokensPerSec() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Tokens) / r.Duration.Seconds()
}

// Stats holds aggregate timing statistics across all runs.
type Stats struct {
	Min  time.Duration
	Max  time.Duration
	Mean time.Duration
}

// ComputeStats calculates min, max and mean over a slice of durations.
// The slice must be non-empty.
func ComputeStats(durations []time.Duration) Stats {
	if len(durations) == 0 {
		return Stats{}
	}
	mn, mx := durations[0], durations[0]
	var sum time.Duration
	for _, d := range durations {
		if d < mn {
			mn = d
		}
		if d > mx {
			mx = d
		}
		sum += d
	}
	return Stats{
		Min:  mn,
		Max:  mx,
		Mean: sum / time.Duration(len(durations)),
	}
}

// SyntheticCorpus builds a deterministic corpus of words tokens drawn from a
// vocabulary of vocab distinct words. The same arguments always produce the
// same corpus.
func SyntheticCorpus(words, vocab int) string {
	if words <= 0 || vocab <= 0 {
		return ""
	}

	rng := rand.New(rand.NewSource(42))
	var b strings.Builder
	b.Grow(words * 8)
	for i := 0; i < words; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "word%04d", rng.Intn(vocab))
	}
	return b.String()
}

// WriteReport formats per-run lines and aggregate stats to w.
func WriteReport(w io.Writer, results []RunResult, stats Stats) {
	for _, r := range results {
		label := "warm"
		if r.Cold {
			label = "cold"
		}
		fmt.Fprintf(w, "run %d (%s): %v  tokens=%d distinct=%d  %.0f tokens/s\n",
			r.Index, label, r.Duration.Round(time.Microsecond), r.Tokens, r.Distinct, r.TokensPerSec())
	}
	fmt.Fprintf(w, "min=%v mean=%v max=%v\n",
		stats.Min.Round(time.Microsecond),
		stats.Mean.Round(time.Microsecond),
		stats.Max.Round(time.Microsecond))
}
