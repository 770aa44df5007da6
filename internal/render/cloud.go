package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/psykhi/wordclouds"
)

// Fixed aesthetic parameters. These are deliberately not user-tunable.
const (
	fontMinSize = 10
	// Largest glyph size relative to canvas height.
	fontMaxFraction = 2
)

// palette colors the rendered words, anchored on steel blue.
var palette = []color.Color{
	color.RGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff}, // steel blue
	color.RGBA{R: 0x2f, G: 0x4f, B: 0x4f, A: 0xff}, // dark slate gray
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
}

// CloudEngine renders word clouds with the wordclouds layout library.
type CloudEngine struct {
	// FontPath overrides the embedded default font when set.
	FontPath string
}

// Draw lays the word list out on a cfg.Width x cfg.Height canvas filled with
// the configured background color. The caller is responsible for limiting
// counts to the configured word budget.
func (e *CloudEngine) Draw(counts map[string]int, cfg Config) (image.Image, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("no words to lay out")
	}

	fontPath := e.FontPath
	if fontPath == "" {
		var err error
		fontPath, err = DefaultFontPath()
		if err != nil {
			return nil, err
		}
	}

	cloud := wordclouds.NewWordcloud(counts,
		wordclouds.FontFile(fontPath),
		wordclouds.FontMinSize(fontMinSize),
		wordclouds.FontMaxSize(cfg.Height/fontMaxFraction),
		wordclouds.Width(cfg.Width),
		wordclouds.Height(cfg.Height),
		wordclouds.BackgroundColor(cfg.Background),
		wordclouds.Colors(palette),
		wordclouds.RandomPlacement(false),
	)

	return cloud.Draw(), nil
}
