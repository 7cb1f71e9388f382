package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/TheEndless/roku-builder/internal/lint"
	"github.com/TheEndless/roku-builder/internal/termcolor"
	"github.com/TheEndless/roku-builder/internal/textutil"
)

const maxMatchWidth = 60

// WriteTable renders warnings as a width-aligned terminal table.
// Severity cells are colored after layout so padding never counts
// escape sequences.
func WriteTable(w io.Writer, warnings []lint.Warning, sel FieldSelection, colored bool) error {
	headers := Headers(sel.Fields)
	rows := make([][]string, 0, len(warnings))
	for _, warning := range warnings {
		row := RowValues(warning, sel.Fields)
		for i, f := range sel.Fields {
			if f.Key == "match" {
				row[i] = sanitizeCell(row[i])
				row[i] = textutil.TruncateByWidth(row[i], maxMatchWidth, "…")
			}
		}
		rows = append(rows, row)
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = textutil.VisibleWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := textutil.VisibleWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	line := make([]string, len(headers))
	for i, h := range headers {
		line[i] = textutil.PadRight(h, widths[i])
	}
	if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(line, "  "), " ")); err != nil {
		return err
	}
	for r, row := range rows {
		for i, cell := range row {
			cell = textutil.PadRight(cell, widths[i])
			if colored && sel.Fields[i].Key == "severity" {
				cell = termcolor.Apply(termcolor.SeverityStyle(warnings[r].Severity), cell, true)
			}
			line[i] = cell
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(line, "  "), " ")); err != nil {
			return err
		}
	}
	return nil
}

func sanitizeCell(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\t", " ")
	return s
}
