package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/TheEndless/roku-builder/internal/lint"
)

func sampleWarnings() []lint.Warning {
	return []lint.Warning{
		{
			Rule: lint.Rule{Name: "no-stop", Severity: "error", Pattern: "stop"},
			Path: "source/main.brs", Line: 4, Match: []string{"stop"},
		},
		{
			Rule: lint.Rule{Name: "todo-marker", Severity: "info", Pattern: "TODO",
				Extra: map[string]any{"category": "style"}},
			Path: "components/scene.xml", Line: 0, Match: []string{"TODO | later"},
		},
	}
}

func defaultSelection(t *testing.T) FieldSelection {
	t.Helper()
	sel, err := ResolveFields("")
	if err != nil {
		t.Fatalf("ResolveFields: %v", err)
	}
	return sel
}

func TestResolveFields(t *testing.T) {
	sel, err := ResolveFields("rule, severity")
	if err != nil {
		t.Fatalf("ResolveFields: %v", err)
	}
	if len(sel.Fields) != 2 || sel.Fields[0].Key != "rule" || sel.Fields[1].Key != "severity" {
		t.Fatalf("unexpected selection: %+v", sel)
	}
	if _, err := ResolveFields("rule,,match"); err == nil {
		t.Fatal("expected error for empty entry")
	}
	if _, err := ResolveFields("bogus"); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestRowValuesLocationIsOneBased(t *testing.T) {
	sel := defaultSelection(t)
	row := RowValues(sampleWarnings()[0], sel.Fields)
	if row[1] != "source/main.brs:5" {
		t.Fatalf("location must be 1-based for humans: %q", row[1])
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, sampleWarnings(), defaultSelection(t), false); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "SEVERITY") {
		t.Fatalf("missing header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "source/main.brs:5") {
		t.Fatalf("missing location: %q", lines[1])
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Fatal("uncolored table must not contain escapes")
	}
}

func TestWriteTableColored(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, sampleWarnings(), defaultSelection(t), true); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatal("colored table must contain escapes")
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleWarnings(), defaultSelection(t)); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "SEVERITY,LOCATION,RULE,MATCH\r\n") {
		t.Fatalf("missing CSV header: %q", out)
	}
	if !strings.Contains(out, "TODO | later") {
		t.Fatalf("match cell missing: %q", out)
	}
}

func TestWriteNDJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteNDJSON(&buf, sampleWarnings()); err != nil {
		t.Fatalf("WriteNDJSON: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(lines))
	}
	var decoded lint.Warning
	if err := json.Unmarshal([]byte(lines[1]), &decoded); err != nil {
		t.Fatalf("invalid NDJSON line: %v", err)
	}
	if decoded.Line != 0 || decoded.Extra["category"] != "style" {
		t.Fatalf("round trip lost data: %+v", decoded)
	}
}

func TestWriteMarkdownTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMarkdownTable(&buf, sampleWarnings(), defaultSelection(t)); err != nil {
		t.Fatalf("WriteMarkdownTable: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "| SEVERITY | LOCATION | RULE | MATCH |") {
		t.Fatalf("missing markdown header: %q", out)
	}
	if !strings.Contains(out, `TODO \| later`) {
		t.Fatalf("pipe not escaped: %q", out)
	}
}
