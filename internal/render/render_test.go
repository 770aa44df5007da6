package render

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/go-wordcloud/internal/freq"
)

// fakeEngine records what the renderer asked it to draw.
type fakeEngine struct {
	counts map[string]int
	cfg    Config
	err    error
}

func (f *fakeEngine) Draw(counts map[string]int, cfg Config) (image.Image, error) {
	f.counts = counts
	f.cfg = cfg
	if f.err != nil {
		return nil, f.err
	}
	return image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)), nil
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "max words below range", mutate: func(c *Config) { c.MaxWords = 49 }, wantErr: true},
		{name: "max words above range", mutate: func(c *Config) { c.MaxWords = 501 }, wantErr: true},
		{name: "max words at lower bound", mutate: func(c *Config) { c.MaxWords = 50 }},
		{name: "max words at upper bound", mutate: func(c *Config) { c.MaxWords = 500 }},
		{name: "width too small", mutate: func(c *Config) { c.Width = 399 }, wantErr: true},
		{name: "width too large", mutate: func(c *Config) { c.Width = 2001 }, wantErr: true},
		{name: "height too small", mutate: func(c *Config) { c.Height = 10 }, wantErr: true},
		{name: "height at upper bound", mutate: func(c *Config) { c.Height = 2000 }},
		{name: "missing background", mutate: func(c *Config) { c.Background = nil }, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRendererPassesConfig(t *testing.T) {
	engine := &fakeEngine{}
	r := &Renderer{Engine: engine}

	cfg := DefaultConfig()
	cfg.Width = 1200
	cfg.Height = 600

	img, err := r.Render(freq.Table{"cat": 3, "mat": 1}, cfg)
	require.NoError(t, err)
	require.NotNil(t, img)

	assert.Equal(t, cfg, engine.cfg)
	assert.Equal(t, map[string]int{"cat": 3, "mat": 1}, engine.counts)
}

// With max_words=50 and 200 distinct words, the engine must see exactly the
// 50 most frequent words.
func TestRendererLimitsDistinctWords(t *testing.T) {
	table := make(freq.Table, 200)
	for i := 0; i < 200; i++ {
		table[fmt.Sprintf("word%03d", i)] = i + 1
	}

	engine := &fakeEngine{}
	r := &Renderer{Engine: engine}

	cfg := DefaultConfig()
	cfg.MaxWords = 50

	_, err := r.Render(table, cfg)
	require.NoError(t, err)

	require.Len(t, engine.counts, 50)
	// The least frequent surviving word has count 151 (top 50 of 1..200).
	for word, count := range engine.counts {
		assert.GreaterOrEqual(t, count, 151, "word %s should not have survived", word)
	}
}

func TestRendererEmptyTable(t *testing.T) {
	r := &Renderer{Engine: &fakeEngine{}}

	_, err := r.Render(freq.Table{}, DefaultConfig())
	assert.ErrorIs(t, err, ErrNothingToRender)
}

func TestRendererInvalidConfig(t *testing.T) {
	engine := &fakeEngine{}
	r := &Renderer{Engine: engine}

	cfg := DefaultConfig()
	cfg.MaxWords = 5

	_, err := r.Render(freq.Table{"cat": 1}, cfg)
	require.Error(t, err)
	assert.Nil(t, engine.counts, "engine must not be invoked with invalid config")
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{input: "#ffffff", want: color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{input: "#000000", want: color.RGBA{0x00, 0x00, 0x00, 0xff}},
		{input: "#4682b4", want: color.RGBA{0x46, 0x82, 0xb4, 0xff}},
		{input: "4682b4", want: color.RGBA{0x46, 0x82, 0xb4, 0xff}},
		{input: "#fff", want: color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{input: "#f80", want: color.RGBA{0xff, 0x88, 0x00, 0xff}},
		{input: "#gggggg", wantErr: true},
		{input: "#ffff", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseHexColor(tc.input)
		if tc.wantErr {
			assert.Error(t, err, tc.input)
			continue
		}
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
	}
}

func TestEncodePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))

	data, err := EncodePNG(img)
	require.NoError(t, err)

	// PNG signature.
	require.GreaterOrEqual(t, len(data), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, data[:8])
}

func TestWritePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	path := filepath.Join(t.TempDir(), "out.png")

	require.NoError(t, WritePNG(path, img))
	assert.FileExists(t, path)
}
