package stopwords

import (
	"context"
	"sync"
)

// Process-wide cached set. Read-only after the first successful load; a
// failed load leaves it nil so the next call retries.
var (
	defaultMu     sync.Mutex
	defaultSet    Set
	defaultSource *Source
)

// SetDefaultSource configures where Default loads from. It must be called
// before the first Default call; calling it later has no effect on the
// already-cached set.
func SetDefaultSource(src *Source) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultSource = src
}

// Default returns the process-wide stopword set, loading it on first use.
// Subsequent calls return the cached set without touching disk or network.
func Default(ctx context.Context) (Set, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultSet != nil {
		return defaultSet, nil
	}

	src := defaultSource
	if src == nil {
		dir, err := DefaultCacheDir()
		if err != nil {
			return nil, err
		}
		src = NewSource(DefaultURL, dir)
	}

	set, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	defaultSet = set
	return defaultSet, nil
}
