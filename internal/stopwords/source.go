package stopwords

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// DefaultURL is the canonical English stopword list.
const DefaultURL = "https://raw.githubusercontent.com/stopwords-iso/stopwords-en/master/stopwords-en.txt"

const (
	cacheFileName = "stopwords-en.txt"
	lockFileName  = "stopwords.lock.json"
)

// ErrUnavailable indicates the stopword data could not be obtained from
// either the local cache or the network. Runs must not proceed without it.
var ErrUnavailable = errors.New("stopword data unavailable")

// lockRecord pins the provenance of the cached word list.
type lockRecord struct {
	URL     string `json:"url"`
	SHA256  string `json:"sha256"`
	Fetched string `json:"fetched"`
	Words   int    `json:"words"`
}

// Source obtains the stopword list, preferring the on-disk cache and falling
// back to a network fetch that populates the cache.
type Source struct {
	URL      string
	CacheDir string
	Client   *http.Client
}

// NewSource returns a Source with defaults filled in.
func NewSource(url, cacheDir string) *Source {
	if url == "" {
		url = DefaultURL
	}
	return &Source{
		URL:      url,
		CacheDir: cacheDir,
		Client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// DefaultCacheDir returns the per-user cache directory for word lists.
func DefaultCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve user cache dir: %w", err)
	}
	return filepath.Join(base, "wordcloud"), nil
}

// CachePath returns the location of the cached word list file.
func (s *Source) CachePath() string {
	return filepath.Join(s.CacheDir, cacheFileName)
}

func (s *Source) lockPath() string {
	return filepath.Join(s.CacheDir, lockFileName)
}

// Cached reports whether a non-empty cached word list exists.
func (s *Source) Cached() bool {
	fi, err := os.Stat(s.CachePath())
	return err == nil && !fi.IsDir() && fi.Size() > 0
}

// Load returns the stopword set, reading the cache when present and fetching
// otherwise. A failure with no usable cache wraps ErrUnavailable.
func (s *Source) Load(ctx context.Context) (Set, error) {
	if s.Cached() {
		f, err := os.Open(s.CachePath())
		if err != nil {
			return nil, fmt.Errorf("open cached stopwords: %w", err)
		}
		defer f.Close()

		set, err := ReadSet(f)
		if err != nil {
			return nil, fmt.Errorf("parse cached stopwords: %w", err)
		}
		if len(set) > 0 {
			return set, nil
		}
		// Unusable cache falls through to a fresh fetch.
	}

	return s.Fetch(ctx, io.Discard)
}

// Fetch downloads the word list, writes the cache file and lock record, and
// returns the parsed set. Progress lines are written to out.
func (s *Source) Fetch(ctx context.Context, out io.Writer) (Set, error) {
	if out == nil {
		out = io.Discard
	}
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	fmt.Fprintf(out, "fetch %s\n", s.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build stopword request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch stopword list %s: %v: %w", s.URL, err, ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch stopword list %s: status %s: %w", s.URL, resp.Status, ErrUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read stopword list body: %v: %w", err, ErrUnavailable)
	}

	set, err := ReadSet(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("stopword list %s is empty: %w", s.URL, ErrUnavailable)
	}

	if err := s.writeCache(body, len(set)); err != nil {
		return nil, err
	}

	sum := sha256.Sum256(body)
	fmt.Fprintf(out, "cached %d words -> %s (sha256=%s)\n",
		len(set), s.CachePath(), hex.EncodeToString(sum[:]))

	return set, nil
}

func (s *Source) writeCache(body []byte, words int) error {
	if err := os.MkdirAll(s.CacheDir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	if err := os.WriteFile(s.CachePath(), body, 0o644); err != nil {
		return fmt.Errorf("write stopword cache: %w", err)
	}

	sum := sha256.Sum256(body)
	rec := lockRecord{
		URL:     s.URL,
		SHA256:  hex.EncodeToString(sum[:]),
		Fetched: time.Now().UTC().Format(time.RFC3339),
		Words:   words,
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode lock record: %w", err)
	}
	if err := os.WriteFile(s.lockPath(), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write lock record: %w", err)
	}
	return nil
}

// Verify re-hashes the cached word list against the lock record.
func (s *Source) Verify() error {
	data, err := os.ReadFile(s.lockPath())
	if err != nil {
		return fmt.Errorf("read lock record: %w", err)
	}
	var rec lockRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("decode lock record: %w", err)
	}

	body, err := os.ReadFile(s.CachePath())
	if err != nil {
		return fmt.Errorf("read stopword cache: %w", err)
	}
	sum := sha256.Sum256(body)
	actual := hex.EncodeToString(sum[:])
	if actual != rec.SHA256 {
		return fmt.Errorf("stopword cache checksum mismatch: expected %s got %s", rec.SHA256, actual)
	}
	return nil
}
