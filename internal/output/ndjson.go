package output

import (
	"encoding/json"
	"io"

	"github.com/TheEndless/roku-builder/internal/lint"
)

// WriteNDJSON streams warnings as newline-delimited JSON objects.
func WriteNDJSON(w io.Writer, warnings []lint.Warning) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, warning := range warnings {
		if err := enc.Encode(warning); err != nil {
			return err
		}
	}
	return nil
}
