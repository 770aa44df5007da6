package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/go-wordcloud/internal/config"
	"github.com/example/go-wordcloud/internal/freq"
	"github.com/example/go-wordcloud/internal/ingest"
	"github.com/example/go-wordcloud/internal/render"
	"github.com/example/go-wordcloud/internal/stopwords"
	"github.com/example/go-wordcloud/internal/text"
)

func newGenerateCmd() *cobra.Command {
	var out string
	var top int
	var tableCSV string
	var noTable bool

	cmd := &cobra.Command{
		Use:   "generate <input.csv|input.xlsx>",
		Short: "Generate a word cloud and frequency table from a single-column spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			return runGenerate(cmd.Context(), cfg, generateOptions{
				InputPath: args[0],
				OutPath:   out,
				Top:       top,
				TableCSV:  tableCSV,
				NoTable:   noTable,
			}, os.Stdout)
		},
	}

	cmd.Flags().StringVar(&out, "out", "wordcloud.png", "Output PNG path")
	cmd.Flags().IntVar(&top, "top", 0, "Rows of the frequency table to print (0 = all)")
	cmd.Flags().StringVar(&tableCSV, "table-csv", "", "Also write the full frequency table as CSV to this path")
	cmd.Flags().BoolVar(&noTable, "no-table", false, "Suppress the frequency table on stdout")

	return cmd
}

type generateOptions struct {
	InputPath string
	OutPath   string
	Top       int
	TableCSV  string
	NoTable   bool
}

// Hooks for tests: real runs build a CloudEngine and hit the configured
// stopword source.
var (
	newRenderEngine = func(cfg config.Config) render.Engine {
		return &render.CloudEngine{FontPath: cfg.Paths.FontPath}
	}
	loadStopwords = func(ctx context.Context, cfg config.Config) (stopwords.Set, error) {
		src, err := cfg.StopwordSource()
		if err != nil {
			return nil, err
		}
		stopwords.SetDefaultSource(src)
		return stopwords.Default(ctx)
	}
)

// runGenerate executes one full run: intake, clean, tokenize, filter,
// aggregate, render, report. Every failure aborts the run; nothing is
// retried.
func runGenerate(ctx context.Context, cfg config.Config, opts generateOptions, stdout io.Writer) error {
	renderCfg, err := cfg.RenderConfig()
	if err != nil {
		return err
	}

	slog.Debug("loading stopword data")
	stops, err := loadStopwords(ctx, cfg)
	if err != nil {
		return mapGenerateError(err)
	}

	docs, err := ingest.ReadFile(opts.InputPath)
	if err != nil {
		return mapGenerateError(err)
	}
	slog.Debug("read documents", "count", len(docs))

	corpus, err := text.BuildCorpus(docs)
	if err != nil {
		return mapGenerateError(err)
	}

	table := freq.Count(stops.FilterSeq(text.Tokens(corpus)))
	if len(table) == 0 {
		// Everything survived cleaning but every token was a stopword.
		return mapGenerateError(text.ErrEmptyCorpus)
	}
	slog.Info("aggregated corpus", "tokens", table.Total(), "distinct", len(table))

	renderer := &render.Renderer{Engine: newRenderEngine(cfg)}
	img, err := renderer.Render(table, renderCfg)
	if err != nil {
		return err
	}
	if err := render.WritePNG(opts.OutPath, img); err != nil {
		return err
	}
	slog.Info("wrote word cloud", "path", opts.OutPath)

	if opts.TableCSV != "" {
		if err := writeTableCSV(opts.TableCSV, table); err != nil {
			return err
		}
		slog.Info("wrote frequency table", "path", opts.TableCSV)
	}

	if !opts.NoTable {
		if err := freq.Write(stdout, table.Top(opts.Top)); err != nil {
			return fmt.Errorf("print frequency table: %w", err)
		}
	}

	return nil
}

func writeTableCSV(path string, table freq.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create frequency csv: %w", err)
	}
	if err := freq.WriteCSV(f, table.Entries()); err != nil {
		_ = f.Close()
		return fmt.Errorf("write frequency csv: %w", err)
	}
	return f.Close()
}

// mapGenerateError attaches actionable context to the known failure classes.
func mapGenerateError(err error) error {
	switch {
	case errors.Is(err, stopwords.ErrUnavailable):
		return fmt.Errorf(
			"stopword data could not be obtained; run 'wordcloud stopwords download' once while online: %w", err)
	case errors.Is(err, text.ErrEmptyCorpus):
		return fmt.Errorf("no valid text found in the input after cleaning: %w", err)
	}

	var shapeErr *ingest.ShapeError
	if errors.As(err, &shapeErr) {
		return fmt.Errorf("upload a spreadsheet with exactly one column containing the documents: %w", err)
	}

	return err
}
