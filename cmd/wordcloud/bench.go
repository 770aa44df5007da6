package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/go-wordcloud/internal/bench"
	"github.com/example/go-wordcloud/internal/freq"
	"github.com/example/go-wordcloud/internal/stopwords"
	"github.com/example/go-wordcloud/internal/text"
)

func newBenchCmd() *cobra.Command {
	var runs int
	var words int
	var vocab int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the clean/tokenize/filter/aggregate pipeline on a synthetic corpus",
		RunE: func(_ *cobra.Command, _ []string) error {
			if runs < 1 {
				return fmt.Errorf("--runs must be at least 1")
			}
			if words < 1 || vocab < 1 {
				return fmt.Errorf("--words and --vocab must be positive")
			}

			corpus := bench.SyntheticCorpus(words, vocab)
			// Fixed synthetic stopwords so the filter stage does real work
			// without touching the network.
			stops := stopwords.NewSet("word0000", "word0001", "word0002", "word0003")

			results := make([]bench.RunResult, 0, runs)
			for i := 0; i < runs; i++ {
				start := time.Now()
				table := freq.Count(stops.FilterSeq(text.Tokens(text.CleanDocument(corpus))))
				elapsed := time.Since(start)

				results = append(results, bench.RunResult{
					Index:    i + 1,
					Cold:     i == 0,
					Duration: elapsed,
					Tokens:   table.Total(),
					Distinct: len(table),
				})
			}

			// Aggregate over warm runs when there are any; the cold run is
			// reported but kept out of the stats.
			durations := make([]time.Duration, 0, len(results))
			for _, r := range results {
				if r.Cold && len(results) > 1 {
					continue
				}
				durations = append(durations, r.Duration)
			}

			bench.WriteReport(os.Stdout, results, bench.ComputeStats(durations))
			return nil
		},
	}

	cmd.Flags().IntVar(&runs, "runs", 5, "Number of pipeline runs")
	cmd.Flags().IntVar(&words, "words", 200_000, "Corpus size in words")
	cmd.Flags().IntVar(&vocab, "vocab", 5_000, "Distinct words in the synthetic vocabulary")

	return cmd
}
