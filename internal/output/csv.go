package output

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVFormatter renders a single-column list as CSV, for spreadsheets and
// scripts that expect a header row.
type CSVFormatter struct {
	out *csv.Writer
}

// NewCSVFormatter returns a formatter writing to w.
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{out: csv.NewWriter(w)}
}

// WriteColumn writes header, then one record per item, then flushes.
// Identifiers holding commas or quotes come out quoted.
func (c *CSVFormatter) WriteColumn(header string, items []string) error {
	if err := c.out.Write([]string{header}); err != nil {
		return err
	}
	for _, item := range items {
		if err := c.out.Write([]string{item}); err != nil {
			return err
		}
	}

	c.out.Flush()
	if err := c.out.Error(); err != nil {
		return fmt.Errorf("write %s column: %w", header, err)
	}
	return nil
}
