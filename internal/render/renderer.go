package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/example/go-wordcloud/internal/freq"
)

// ErrNothingToRender is returned when the frequency table is empty. Callers
// are expected to reject an empty corpus before rendering; this is a guard.
var ErrNothingToRender = errors.New("nothing to render: frequency table is empty")

// Renderer turns a frequency table into an image using an injected Engine.
type Renderer struct {
	Engine Engine
}

// Render validates cfg, limits the table to the cfg.MaxWords most frequent
// distinct words, and hands the result to the layout engine. The engine is
// never asked to place more than cfg.MaxWords words.
func (r *Renderer) Render(table freq.Table, cfg Config) (image.Image, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("render config: %w", err)
	}
	if len(table) == 0 {
		return nil, ErrNothingToRender
	}

	top := table.Top(cfg.MaxWords)
	counts := make(map[string]int, len(top))
	for _, e := range top {
		counts[e.Word] = e.Count
	}

	img, err := r.Engine.Draw(counts, cfg)
	if err != nil {
		return nil, fmt.Errorf("lay out word cloud: %w", err)
	}
	return img, nil
}
