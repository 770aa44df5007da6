package stopwords

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

const testList = "the\nand\non\nof\n"

func newTestSource(t *testing.T, handler http.HandlerFunc) (*Source, *int) {
	t.Helper()

	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	src := NewSource(srv.URL, t.TempDir())
	src.Client = srv.Client()
	return src, &hits
}

func serveList(w http.ResponseWriter, _ *http.Request) {
	_, _ = io.WriteString(w, testList)
}

func TestSourceFetchPopulatesCache(t *testing.T) {
	src, _ := newTestSource(t, serveList)

	set, err := src.Fetch(context.Background(), io.Discard)
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}
	if set.Len() != 4 {
		t.Errorf("Len() = %d; want 4", set.Len())
	}
	if !src.Cached() {
		t.Error("Cached() = false after Fetch")
	}

	data, err := os.ReadFile(src.CachePath())
	if err != nil {
		t.Fatalf("read cache file: %v", err)
	}
	if string(data) != testList {
		t.Errorf("cache content = %q; want %q", data, testList)
	}

	if _, err := os.Stat(filepath.Join(src.CacheDir, lockFileName)); err != nil {
		t.Errorf("lock record missing: %v", err)
	}
}

func TestSourceLoadPrefersCache(t *testing.T) {
	src, hits := newTestSource(t, serveList)

	if _, err := src.Load(context.Background()); err != nil {
		t.Fatalf("first Load() error: %v", err)
	}
	if *hits != 1 {
		t.Fatalf("hits after first load = %d; want 1", *hits)
	}

	set, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("second Load() error: %v", err)
	}
	if *hits != 1 {
		t.Errorf("hits after second load = %d; want 1 (cache must be used)", *hits)
	}
	if !set.Contains("the") {
		t.Error(`cached set missing "the"`)
	}
}

func TestSourceFetchServerError(t *testing.T) {
	src, _ := newTestSource(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})

	_, err := src.Fetch(context.Background(), io.Discard)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Fetch() error = %v; want ErrUnavailable", err)
	}
	if src.Cached() {
		t.Error("failed fetch must not leave a cache file")
	}
}

func TestSourceFetchEmptyList(t *testing.T) {
	src, _ := newTestSource(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "\n# only comments\n")
	})

	_, err := src.Fetch(context.Background(), io.Discard)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Fetch() error = %v; want ErrUnavailable", err)
	}
}

func TestSourceLoadUnreachable(t *testing.T) {
	src := NewSource("http://127.0.0.1:1/stopwords.txt", t.TempDir())

	_, err := src.Load(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Load() error = %v; want ErrUnavailable", err)
	}
}

func TestSourceVerify(t *testing.T) {
	src, _ := newTestSource(t, serveList)

	if _, err := src.Fetch(context.Background(), io.Discard); err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if err := src.Verify(); err != nil {
		t.Fatalf("Verify() after fetch: %v", err)
	}

	// Tamper with the cache and expect a checksum mismatch.
	if err := os.WriteFile(src.CachePath(), []byte("tampered\n"), 0o644); err != nil {
		t.Fatalf("tamper cache: %v", err)
	}
	if err := src.Verify(); err == nil {
		t.Error("Verify() = nil after tampering; want checksum error")
	}
}

func TestSourceVerifyNoLock(t *testing.T) {
	src := NewSource(DefaultURL, t.TempDir())
	if err := src.Verify(); err == nil {
		t.Error("Verify() = nil with no lock record; want error")
	}
}
