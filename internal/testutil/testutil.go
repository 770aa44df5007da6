// Package testutil provides shared skip helpers for integration tests.
//
// Each helper calls t.Skip with a clear human-readable reason when the named
// prerequisite is absent, so integration tests remain runnable in partial
// environments without failing noisily.
package testutil

import (
	"os"
	"testing"
)

// RequireNetwork skips the test unless WORDCLOUD_TEST_NETWORK is set.
// Tests that fetch the real stopword list are opt-in.
func RequireNetwork(tb testing.TB) {
	tb.Helper()

	if os.Getenv("WORDCLOUD_TEST_NETWORK") == "" {
		tb.Skip("network tests disabled; set WORDCLOUD_TEST_NETWORK=1 to enable")
	}
}

// RequireFile skips the test if path does not exist.
func RequireFile(tb testing.TB, path string) {
	tb.Helper()

	if _, err := os.Stat(path); err != nil {
		tb.Skipf("required file %q not available: %v", path, err)
	}
}
