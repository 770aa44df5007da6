package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/example/go-wordcloud/internal/render"
	"github.com/example/go-wordcloud/internal/stopwords"
)

type Config struct {
	LogLevel string       `mapstructure:"log_level"`
	Render   RenderConfig `mapstructure:"render"`
	Paths    PathsConfig  `mapstructure:"paths"`
}

type RenderConfig struct {
	MaxWords   int    `mapstructure:"max_words"`
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Background string `mapstructure:"background"`
}

type PathsConfig struct {
	CacheDir    string `mapstructure:"cache_dir"`
	StopwordURL string `mapstructure:"stopword_url"`
	FontPath    string `mapstructure:"font_path"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Render: RenderConfig{
			MaxWords:   render.DefaultWords,
			Width:      render.DefaultWidth,
			Height:     render.DefaultHeight,
			Background: "#ffffff",
		},
		Paths: PathsConfig{
			CacheDir:    "",
			StopwordURL: stopwords.DefaultURL,
			FontPath:    "",
		},
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.Int("render-max-words", defaults.Render.MaxWords,
		fmt.Sprintf("Maximum distinct words to render [%d,%d]", render.MinWords, render.MaxWords))
	fs.Int("render-width", defaults.Render.Width,
		fmt.Sprintf("Image width in pixels [%d,%d]", render.MinDimension, render.MaxDimension))
	fs.Int("render-height", defaults.Render.Height,
		fmt.Sprintf("Image height in pixels [%d,%d]", render.MinDimension, render.MaxDimension))
	fs.String("render-background", defaults.Render.Background, "Canvas background color (#rrggbb)")
	fs.String("paths-cache-dir", defaults.Paths.CacheDir,
		"Cache directory for stopword data and fonts (defaults to the user cache dir)")
	fs.String("paths-stopword-url", defaults.Paths.StopwordURL, "URL of the English stopword list")
	fs.String("paths-font-path", defaults.Paths.FontPath,
		"TTF font file for rendering (defaults to the embedded Go Regular)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("WORDCLOUD")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("wordcloud")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks render parameter ranges and the background color format.
func (c Config) Validate() error {
	rc, err := c.RenderConfig()
	if err != nil {
		return err
	}
	return rc.Validate()
}

// RenderConfig converts the user-facing settings into a validated-shape
// render configuration with a parsed background color.
func (c Config) RenderConfig() (render.Config, error) {
	bg, err := render.ParseHexColor(c.Render.Background)
	if err != nil {
		return render.Config{}, fmt.Errorf("background color: %w", err)
	}
	return render.Config{
		MaxWords:   c.Render.MaxWords,
		Width:      c.Render.Width,
		Height:     c.Render.Height,
		Background: bg,
	}, nil
}

// StopwordSource builds the stopword source from the configured paths.
func (c Config) StopwordSource() (*stopwords.Source, error) {
	dir := c.Paths.CacheDir
	if dir == "" {
		var err error
		dir, err = stopwords.DefaultCacheDir()
		if err != nil {
			return nil, err
		}
	}
	return stopwords.NewSource(c.Paths.StopwordURL, dir), nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("render.max_words", c.Render.MaxWords)
	v.SetDefault("render.width", c.Render.Width)
	v.SetDefault("render.height", c.Render.Height)
	v.SetDefault("render.background", c.Render.Background)
	v.SetDefault("paths.cache_dir", c.Paths.CacheDir)
	v.SetDefault("paths.stopword_url", c.Paths.StopwordURL)
	v.SetDefault("paths.font_path", c.Paths.FontPath)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("log_level", "log-level")
	v.RegisterAlias("render.max_words", "render-max-words")
	v.RegisterAlias("render.width", "render-width")
	v.RegisterAlias("render.height", "render-height")
	v.RegisterAlias("render.background", "render-background")
	v.RegisterAlias("paths.cache_dir", "paths-cache-dir")
	v.RegisterAlias("paths.stopword_url", "paths-stopword-url")
	v.RegisterAlias("paths.font_path", "paths-font-path")
}
