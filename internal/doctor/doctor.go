// Package doctor provides environment preflight checks for the wordcloud CLI.
package doctor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// PassMark and FailMark are the prefix symbols printed for each check result.
const (
	PassMark = "✓"
	FailMark = "✗"
)

// StatusFunc returns a short status string or an error if the component is
// unavailable.
type StatusFunc func() (string, error)

// Config holds injectable dependencies for each doctor check.
type Config struct {
	// Stopwords reports the state of the stopword data (cache or URL).
	Stopwords StatusFunc
	// Font reports the resolved render font.
	Font StatusFunc
	// OutputDir is checked for writability. Empty means the working directory.
	OutputDir string
}

// Result collects the outcome of all checks.
type Result struct {
	failures []string
}

// Failed returns true if any check failed.
func (r *Result) Failed() bool { return len(r.failures) > 0 }

// Failures returns the list of failure messages.
func (r *Result) Failures() []string { return append([]string(nil), r.failures...) }

func (r *Result) fail(msg string) { r.failures = append(r.failures, msg) }

// Run executes all configured checks and writes human-readable output to w.
// Each check line is prefixed with PassMark or FailMark.
func Run(cfg Config, w io.Writer) Result {
	var res Result

	// ---- stopword data ----------------------------------------------------
	if cfg.Stopwords != nil {
		status, err := cfg.Stopwords()
		if err != nil {
			res.fail(fmt.Sprintf("stopword data: %v", err))
			fmt.Fprintf(w, "%s stopword data: unavailable (%v)\n", FailMark, err)
		} else {
			fmt.Fprintf(w, "%s stopword data: %s\n", PassMark, status)
		}
	}

	// ---- render font ------------------------------------------------------
	if cfg.Font != nil {
		status, err := cfg.Font()
		if err != nil {
			res.fail(fmt.Sprintf("render font: %v", err))
			fmt.Fprintf(w, "%s render font: unavailable (%v)\n", FailMark, err)
		} else {
			fmt.Fprintf(w, "%s render font: %s\n", PassMark, status)
		}
	}

	// ---- output directory -------------------------------------------------
	dir := cfg.OutputDir
	if dir == "" {
		dir = "."
	}
	if err := checkWritable(dir); err != nil {
		res.fail(fmt.Sprintf("output dir %q: %v", dir, err))
		fmt.Fprintf(w, "%s output dir %s: not writable (%v)\n", FailMark, dir, err)
	} else {
		fmt.Fprintf(w, "%s output dir: %s\n", PassMark, dir)
	}

	return res
}

// checkWritable verifies files can be created in dir.
func checkWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".wordcloud-doctor-*")
	if err != nil {
		return err
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		return err
	}
	return os.Remove(filepath.Clean(name))
}
