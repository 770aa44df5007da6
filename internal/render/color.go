package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHexColor parses "#rrggbb" or "#rgb" into an opaque color.
func ParseHexColor(s string) (color.Color, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(raw) {
	case 6:
		v, err := strconv.ParseUint(raw, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return color.RGBA{
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
			A: 0xff,
		}, nil
	case 3:
		v, err := strconv.ParseUint(raw, 16, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return color.RGBA{
			R: uint8(v>>8&0xf) * 17,
			G: uint8(v>>4&0xf) * 17,
			B: uint8(v&0xf) * 17,
			A: 0xff,
		}, nil
	default:
		return nil, fmt.Errorf("invalid hex color %q: expected #rgb or #rrggbb", s)
	}
}
