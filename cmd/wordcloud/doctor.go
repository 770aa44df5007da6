package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/go-wordcloud/internal/config"
	"github.com/example/go-wordcloud/internal/doctor"
	"github.com/example/go-wordcloud/internal/render"
)

func newDoctorCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that the environment can run a full generate pass",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			res := doctor.Run(doctor.Config{
				Stopwords: stopwordStatus(cfg),
				Font:      fontStatus(cfg),
				OutputDir: outDir,
			}, os.Stdout)

			if res.Failed() {
				return fmt.Errorf("doctor found %d problem(s)", len(res.Failures()))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out-dir", "", "Directory checked for writability (default: working directory)")

	return cmd
}

func stopwordStatus(cfg config.Config) doctor.StatusFunc {
	return func() (string, error) {
		src, err := cfg.StopwordSource()
		if err != nil {
			return "", err
		}

		if src.Cached() {
			if err := src.Verify(); err != nil {
				return "", err
			}
			return fmt.Sprintf("cache %s", src.CachePath()), nil
		}

		// Not cached: the first run will fetch, so probe the URL.
		client := &http.Client{Timeout: 5 * time.Second}
		resp, err := client.Head(src.URL)
		if err != nil {
			return "", fmt.Errorf("no cache and %s unreachable: %w", src.URL, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("no cache and %s returned %s", src.URL, resp.Status)
		}
		return fmt.Sprintf("not cached; %s reachable", src.URL), nil
	}
}

func fontStatus(cfg config.Config) doctor.StatusFunc {
	return func() (string, error) {
		if cfg.Paths.FontPath != "" {
			if _, err := os.Stat(cfg.Paths.FontPath); err != nil {
				return "", err
			}
			return cfg.Paths.FontPath, nil
		}

		path, err := render.DefaultFontPath()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("embedded Go Regular (%s)", path), nil
	}
}
