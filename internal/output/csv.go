package output

import (
	"encoding/csv"
	"io"

	"github.com/TheEndless/roku-builder/internal/lint"
)

// WriteCSV renders warnings as RFC 4180 compliant CSV (including CRLF
// endings).
func WriteCSV(w io.Writer, warnings []lint.Warning, sel FieldSelection) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write(Headers(sel.Fields)); err != nil {
		return err
	}
	for _, warning := range warnings {
		if err := writer.Write(RowValues(warning, sel.Fields)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
