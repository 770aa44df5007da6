// Package stopwords provides the English stopword set used to filter token
// streams, including fetch-once acquisition of the word list with a local
// disk cache.
package stopwords

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
)

// Set is a lookup table of stopwords. Words are stored lowercase; lookups are
// exact-match, so callers must filter already-lowercased tokens.
type Set map[string]struct{}

// NewSet builds a Set from literal words, lowercasing each.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[strings.ToLower(w)] = struct{}{}
	}
	return s
}

// ReadSet parses a word list with one word per line. Blank lines and lines
// starting with '#' are skipped.
func ReadSet(r io.Reader) (Set, error) {
	s := make(Set)
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		w := strings.TrimSpace(scan.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		s[strings.ToLower(w)] = struct{}{}
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return s, nil
}

// Contains reports whether w is a stopword.
func (s Set) Contains(w string) bool {
	_, ok := s[w]
	return ok
}

// Len returns the number of words in the set.
func (s Set) Len() int { return len(s) }

// Filter returns tokens with every stopword removed, preserving order.
// Filtering is idempotent.
func (s Set) Filter(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !s.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}

// FilterSeq lazily removes stopwords from a token sequence.
func (s Set) FilterSeq(tokens iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for t := range tokens {
			if s.Contains(t) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}
