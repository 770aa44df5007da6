package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
)

func readCSV(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	// Shape validation is ours: report the observed column count instead of
	// the csv package's field-count error.
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, &ShapeError{Columns: 0}
	}

	for _, rec := range records {
		if len(rec) != 1 {
			return nil, &ShapeError{Columns: len(rec)}
		}
	}

	// First record is the header row.
	docs := make([]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		docs = append(docs, rec[0])
	}
	return docs, nil
}
