package render

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/image/font/gofont/goregular"
)

const fontFileName = "go-regular.ttf"

// DefaultFontPath materializes the embedded Go Regular typeface into the user
// cache directory and returns its path. The layout engine reads fonts from
// disk, so the embedded TTF is written out once and reused afterwards.
func DefaultFontPath() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve user cache dir: %w", err)
	}

	dir := filepath.Join(base, "wordcloud", "fonts")
	path := filepath.Join(dir, fontFileName)

	if fi, err := os.Stat(path); err == nil && fi.Size() == int64(len(goregular.TTF)) {
		return path, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create font dir: %w", err)
	}
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		return "", fmt.Errorf("write default font: %w", err)
	}
	return path, nil
}
