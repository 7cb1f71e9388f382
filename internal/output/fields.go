package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/TheEndless/roku-builder/internal/lint"
)

type Field struct {
	Key    string
	Header string
}

type FieldSelection struct {
	Fields []Field
}

var fieldRegistry = map[string]string{
	"severity": "SEVERITY",
	"location": "LOCATION",
	"rule":     "RULE",
	"match":    "MATCH",
	"pattern":  "PATTERN",
}

var defaultFieldKeys = []string{"severity", "location", "rule", "match"}

// ResolveFields parses a comma-separated field list; empty selects the
// default columns.
func ResolveFields(raw string) (FieldSelection, error) {
	raw = strings.TrimSpace(raw)
	keys := defaultFieldKeys
	if raw != "" {
		keys = strings.Split(raw, ",")
	}
	sel := FieldSelection{}
	for _, key := range keys {
		name := strings.ToLower(strings.TrimSpace(key))
		if name == "" {
			return FieldSelection{}, fmt.Errorf("invalid fields: empty entry")
		}
		header, ok := fieldRegistry[name]
		if !ok {
			return FieldSelection{}, fmt.Errorf("unknown field: %s", name)
		}
		sel.Fields = append(sel.Fields, Field{Key: name, Header: header})
	}
	return sel, nil
}

func Headers(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Header
	}
	return out
}

func RowValues(w lint.Warning, fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		switch f.Key {
		case "severity":
			out[i] = w.Severity
		case "location":
			out[i] = w.Path + ":" + strconv.Itoa(w.Line+1)
		case "rule":
			out[i] = w.Name
		case "match":
			out[i] = w.MatchText()
		case "pattern":
			out[i] = w.Pattern
		}
	}
	return out
}
