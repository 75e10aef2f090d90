package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Supported formats.
const (
	FormatPlain = "plain"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
	FormatCSV   = "csv"
)

// Formats lists the accepted --format values.
var Formats = []string{FormatPlain, FormatJSON, FormatYAML, FormatTable, FormatCSV}

// ValidateFormat reports whether format is supported.
func ValidateFormat(format string) error {
	for _, f := range Formats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format %q (want one of %s)", format, strings.Join(Formats, ", "))
}

// List describes a single-column result.
type List struct {
	Command string
	Column  string
	Items   []string
	Summary map[string]interface{}
}

// WriteList renders list in the given format.
func WriteList(w io.Writer, format string, list List) error {
	switch format {
	case FormatPlain, "":
		return writePlain(w, list.Items)
	case FormatJSON:
		return NewJSONFormatter(w).WriteSuccess(list.Command, nonNil(list.Items), list.Summary)
	case FormatYAML:
		return NewYAMLFormatter(w).Write(Output{
			Success: true,
			Command: list.Command,
			Data:    nonNil(list.Items),
			Summary: list.Summary,
		})
	case FormatTable:
		t := NewTableFormatter(w)
		if err := t.WriteHeader(strings.ToUpper(list.Column)); err != nil {
			return err
		}
		for _, item := range list.Items {
			if err := t.WriteRow(item); err != nil {
				return err
			}
		}
		return t.Flush()
	case FormatCSV:
		return NewCSVFormatter(w).WriteColumn(list.Column, list.Items)
	default:
		return ValidateFormat(format)
	}
}

// writePlain prints one item per line and nothing else.
func writePlain(w io.Writer, items []string) error {
	bw := bufio.NewWriter(w)
	for _, item := range items {
		if _, err := fmt.Fprintln(bw, item); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
