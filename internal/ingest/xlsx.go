package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

func readXLSX(r io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &ShapeError{Columns: 0}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, &ShapeError{Columns: 0}
	}

	// GetRows omits trailing empty cells, so a populated second column shows
	// up as a longer row.
	for _, row := range rows {
		if len(row) > 1 {
			return nil, &ShapeError{Columns: len(row)}
		}
	}

	// First row is the header.
	docs := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 {
			docs = append(docs, "")
			continue
		}
		docs = append(docs, row[0])
	}
	return docs, nil
}
