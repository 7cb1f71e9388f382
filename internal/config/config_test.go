package config

import (
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"testing"

	"github.com/TheEndless/roku-builder/internal/lint"
)

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func boolPtr(b bool) *bool { return &b }

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadYAMLPreservesExtraFields(t *testing.T) {
	path := writeConfig(t, "rules.yaml", `
rules:
  - name: no-stop
    pattern: '\bstop\b'
    severity: error
    case_sensitive: false
    include_comments: false
    category: debug
    docs_url: https://example.test/no-stop
engine:
  jobs: 4
  exclude: [out, dist]
indent:
  char: " "
  interval: 4
`)
	file, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(file.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(file.Rules))
	}
	rule := file.Rules[0]
	if rule.Name != "no-stop" || rule.Severity != "error" || rule.Pattern != `\bstop\b` {
		t.Fatalf("unexpected rule: %+v", rule)
	}
	wantExtra := map[string]any{
		"category": "debug",
		"docs_url": "https://example.test/no-stop",
	}
	if !reflect.DeepEqual(rule.Extra, wantExtra) {
		t.Fatalf("extra fields not preserved: %v", rule.Extra)
	}
	if file.Engine.Jobs == nil || *file.Engine.Jobs != 4 {
		t.Fatalf("engine jobs not decoded: %+v", file.Engine)
	}
	if file.Engine.Excludes == nil || !reflect.DeepEqual(*file.Engine.Excludes, []string{"out", "dist"}) {
		t.Fatalf("engine excludes not decoded: %+v", file.Engine)
	}
	if file.Indent == nil || file.Indent.Interval != 4 {
		t.Fatalf("indent section not decoded: %+v", file.Indent)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "rules.toml", `
[[rules]]
name = "todo"
pattern = "TODO"
include_comments = true
owner = "tools"

[engine]
output = "ndjson"
`)
	file, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(file.Rules) != 1 || !file.Rules[0].IncludeComments {
		t.Fatalf("unexpected rules: %+v", file.Rules)
	}
	if file.Rules[0].Extra["owner"] != "tools" {
		t.Fatalf("extra field lost: %v", file.Rules[0].Extra)
	}
	if file.Engine.Output == nil || *file.Engine.Output != "ndjson" {
		t.Fatalf("engine output not decoded: %+v", file.Engine)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeConfig(t, "rules.json", `{
  "rules": [{"name": "p", "pattern": "print", "severity": "info"}]
}`)
	file, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(file.Rules) != 1 || file.Rules[0].Severity != "info" {
		t.Fatalf("unexpected rules: %+v", file.Rules)
	}
}

func TestLoadRejectsBadShapes(t *testing.T) {
	cases := map[string]string{
		"rules.yaml":  "rules: 12\n",
		"rule.yaml":   "rules: [[nested]]\n",
		"types.yaml":  "rules:\n  - name: x\n    pattern: 3\n",
		"indent.yaml": "indent: [1]\n",
		"fmt.ini":     "anything",
	}
	for name, content := range cases {
		if _, err := Load(writeConfig(t, name, content)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestMergeEnginePrecedence(t *testing.T) {
	base := DefaultEngineSettings()
	fileCfg := EngineConfig{Output: strPtr("csv"), Jobs: intPtr(2), FailOn: strPtr("info")}
	envCfg := EngineConfig{Output: strPtr("ndjson"), AllFiles: boolPtr(true)}
	flagCfg := EngineConfig{Output: strPtr("markdown")}

	merged := MergeEngine(base, fileCfg, envCfg, flagCfg)
	if merged.Output != "markdown" {
		t.Fatalf("expected flag output to win, got %q", merged.Output)
	}
	if merged.Jobs != 2 || merged.FailOn != "info" || !merged.AllFiles {
		t.Fatalf("unexpected merge result: %+v", merged)
	}
	if merged.Color != "auto" {
		t.Fatalf("default color lost: %q", merged.Color)
	}
}

func TestFromEnv(t *testing.T) {
	env := map[string]string{
		"ROKU_LINT_OUTPUT":    "csv",
		"ROKU_LINT_JOBS":      "8",
		"ROKU_LINT_EXCLUDE":   "out, dist ,",
		"ROKU_LINT_ALL_FILES": "yes",
	}
	eng, err := FromEnv(func(k string) string { return env[k] })
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if eng.Output == nil || *eng.Output != "csv" {
		t.Fatalf("output not read: %+v", eng)
	}
	if eng.Jobs == nil || *eng.Jobs != 8 {
		t.Fatalf("jobs not read: %+v", eng)
	}
	if !reflect.DeepEqual(*eng.Excludes, []string{"out", "dist"}) {
		t.Fatalf("excludes not split: %v", *eng.Excludes)
	}
	if eng.AllFiles == nil || !*eng.AllFiles {
		t.Fatalf("all_files not read: %+v", eng)
	}
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	if _, err := FromEnv(func(k string) string {
		if k == "ROKU_LINT_JOBS" {
			return "zero"
		}
		return ""
	}); err == nil {
		t.Fatal("expected error for bad jobs")
	}
	if _, err := FromEnv(func(k string) string {
		if k == "ROKU_LINT_ALL_FILES" {
			return "perhaps"
		}
		return ""
	}); err == nil {
		t.Fatal("expected error for bad boolean")
	}
}

func TestFindWalksUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "components")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cfg := filepath.Join(root, ".roku-lint.yml")
	if err := os.WriteFile(cfg, []byte("rules: []\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := Find(nested); got != cfg {
		t.Fatalf("Find=%q want %q", got, cfg)
	}
}

func TestNormalizeRules(t *testing.T) {
	rules, err := NormalizeRules([]lint.Rule{{Name: "a", Pattern: "x"}})
	if err != nil {
		t.Fatalf("NormalizeRules: %v", err)
	}
	if rules[0].Severity != lint.SeverityWarning {
		t.Fatalf("severity not defaulted: %q", rules[0].Severity)
	}

	bad := [][]lint.Rule{
		{{Pattern: "x"}},
		{{Name: "a", Pattern: "x"}, {Name: "a", Pattern: "y"}},
		{{Name: "a"}},
		{{Name: "a", Pattern: "("}},
		{{Name: "a", Pattern: "x", Severity: "fatal"}},
	}
	for i, rules := range bad {
		if _, err := NormalizeRules(rules); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}

func TestDefaultRulesAreValid(t *testing.T) {
	rules, err := NormalizeRules(DefaultRules())
	if err != nil {
		t.Fatalf("default rules invalid: %v", err)
	}
	if len(rules) == 0 {
		t.Fatal("default rule set is empty")
	}
	for _, rule := range rules {
		if _, err := regexp.Compile(rule.Pattern); err != nil {
			t.Fatalf("rule %s: %v", rule.Name, err)
		}
	}
}

func TestValidateFailOn(t *testing.T) {
	for raw, want := range map[string]string{
		"": "error", "error": "error", "warning": "warning",
		"info": "info", "never": "never", " Warning ": "warning",
	} {
		got, err := ValidateFailOn(raw)
		if err != nil || got != want {
			t.Fatalf("ValidateFailOn(%q)=%q,%v want %q", raw, got, err, want)
		}
	}
	if _, err := ValidateFailOn("sometimes"); err == nil {
		t.Fatal("expected error")
	}
}

func TestSeverityRank(t *testing.T) {
	if SeverityRank(lint.SeverityError) <= SeverityRank(lint.SeverityWarning) {
		t.Fatal("error must outrank warning")
	}
	if SeverityRank(lint.SeverityWarning) <= SeverityRank(lint.SeverityInfo) {
		t.Fatal("warning must outrank info")
	}
	if SeverityRank("mystery") != 0 {
		t.Fatal("unknown severity must rank lowest")
	}
}
