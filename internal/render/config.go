// Package render produces the word-cloud raster image. The external layout
// engine sits behind the Engine interface so the pipeline can be tested
// without real layout work.
package render

import (
	"fmt"
	"image/color"
)

// Accepted parameter ranges and defaults for a render run.
const (
	MinWords     = 50
	MaxWords     = 500
	DefaultWords = 200

	MinDimension  = 400
	MaxDimension  = 2000
	DefaultWidth  = 800
	DefaultHeight = 400
)

// Config is the per-run render configuration. It is immutable once built.
type Config struct {
	MaxWords   int
	Width      int
	Height     int
	Background color.Color
}

// DefaultConfig returns the standard render configuration: 200 words,
// 800x400, white background.
func DefaultConfig() Config {
	return Config{
		MaxWords:   DefaultWords,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Background: color.White,
	}
}

// Validate checks every parameter against its accepted range.
func (c Config) Validate() error {
	if c.MaxWords < MinWords || c.MaxWords > MaxWords {
		return fmt.Errorf("max words %d out of range [%d,%d]", c.MaxWords, MinWords, MaxWords)
	}
	if c.Width < MinDimension || c.Width > MaxDimension {
		return fmt.Errorf("width %d out of range [%d,%d]", c.Width, MinDimension, MaxDimension)
	}
	if c.Height < MinDimension || c.Height > MaxDimension {
		return fmt.Errorf("height %d out of range [%d,%d]", c.Height, MinDimension, MaxDimension)
	}
	if c.Background == nil {
		return fmt.Errorf("background color is required")
	}
	return nil
}
