// Package ingest reads the single-column document table from CSV or XLSX
// input. Shape validation happens here, before any text processing.
package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies a supported input file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ShapeError reports an input table that does not have exactly one column.
// Columns is the offending column count; zero means the table had no rows at
// all.
type ShapeError struct {
	Columns int
}

func (e *ShapeError) Error() string {
	if e.Columns == 0 {
		return "input table is empty: expected a header row and one column of documents"
	}
	return fmt.Sprintf("input table must have exactly one column, got %d", e.Columns)
}

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported input format %q (expected .csv or .xlsx)", filepath.Ext(path))
	}
}

// ReadFile reads the documents from path, dispatching on the extension.
// The first row is treated as the header and excluded. Missing cells become
// empty strings.
func ReadFile(path string) ([]string, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	return Read(f, format)
}

// Read reads the documents from r in the given format.
func Read(r io.Reader, format Format) ([]string, error) {
	switch format {
	case FormatCSV:
		return readCSV(r)
	case FormatXLSX:
		return readXLSX(r)
	default:
		return nil, fmt.Errorf("unsupported input format %q", format)
	}
}
