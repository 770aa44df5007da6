package text

import (
	"errors"
	"regexp"
	"strings"
)

// ErrEmptyCorpus is returned when the combined corpus is empty or
// whitespace-only after cleaning.
var ErrEmptyCorpus = errors.New("corpus is empty after cleaning")

var (
	// Anything that is not a word character or whitespace.
	nonWordPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)
	// Runs of decimal digits.
	digitPattern = regexp.MustCompile(`\p{Nd}+`)
)

// CleanDocument normalizes one raw document cell for frequency analysis.
// It lowercases the text, strips every character that is not a word character
// or whitespace, removes digit runs, and collapses the remainder to
// single-space-separated words. A missing value arrives as the empty string
// and passes through unchanged. CleanDocument never fails.
func CleanDocument(s string) string {
	s = strings.ToLower(s)
	s = nonWordPattern.ReplaceAllString(s, "")
	s = digitPattern.ReplaceAllString(s, "")

	return strings.Join(strings.Fields(s), " ")
}

// BuildCorpus cleans every document and joins the results with single spaces,
// in document order. It returns ErrEmptyCorpus when nothing survives cleaning.
func BuildCorpus(docs []string) (string, error) {
	cleaned := make([]string, 0, len(docs))
	for _, d := range docs {
		if c := CleanDocument(d); c != "" {
			cleaned = append(cleaned, c)
		}
	}

	corpus := strings.Join(cleaned, " ")
	if corpus == "" {
		return "", ErrEmptyCorpus
	}

	return corpus, nil
}
