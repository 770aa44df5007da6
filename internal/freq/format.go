package freq

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

// Write renders entries as an aligned two-column text table.
func Write(w io.Writer, entries []Entry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "WORD\tFREQUENCY"); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(tw, "%s\t%d\n", e.Word, e.Count); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteCSV renders entries as CSV with a header row.
func WriteCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Word", "Frequency"}); err != nil {
		return err
	}
	for _, e := range entries {
		if err := cw.Write([]string{e.Word, strconv.Itoa(e.Count)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
