// Package freq aggregates token streams into word-frequency tables.
package freq

import (
	"iter"
	"sort"
)

// Entry is one row of a frequency table.
type Entry struct {
	Word  string
	Count int
}

// Table maps each distinct word to its occurrence count.
type Table map[string]int

// Count builds a frequency table from a token sequence in a single pass.
// Tokens are counted by exact match; case normalization is the tokenizer's
// job. The sum of counts equals the sequence length.
func Count(tokens iter.Seq[string]) Table {
	t := make(Table)
	for tok := range tokens {
		t[tok]++
	}
	return t
}

// CountList builds a frequency table from a token slice.
func CountList(tokens []string) Table {
	t := make(Table, len(tokens))
	for _, tok := range tokens {
		t[tok]++
	}
	return t
}

// Total returns the sum of all counts.
func (t Table) Total() int {
	sum := 0
	for _, c := range t {
		sum += c
	}
	return sum
}

// Entries returns all rows sorted by descending count. Equal counts are
// ordered by ascending word, making the output deterministic.
func (t Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t))
	for w, c := range t {
		entries = append(entries, Entry{Word: w, Count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})
	return entries
}

// Top returns the first n sorted rows, or all rows when n exceeds the table
// size or is non-positive.
func (t Table) Top(n int) []Entry {
	entries := t.Entries()
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[:n]
}
