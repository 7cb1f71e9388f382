package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/TheEndless/roku-builder/internal/indent"
	"github.com/TheEndless/roku-builder/internal/lint"
)

// Keys the loader understands on a rule entry. Everything else is
// preserved verbatim into Rule.Extra and travels into every warning
// the rule produces.
var ruleKeys = map[string]struct{}{
	"name":             {},
	"severity":         {},
	"pattern":          {},
	"case_sensitive":   {},
	"include_comments": {},
	"disabled":         {},
}

// Load decodes a rule-set file. The format follows the extension:
// YAML, TOML or JSON.
func Load(path string) (File, error) {
	var file File
	data, err := os.ReadFile(path)
	if err != nil {
		return file, err
	}
	var raw map[string]any
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return file, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return file, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return file, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return file, fmt.Errorf("unsupported config format: %s", path)
	}
	return buildFile(path, raw)
}

func buildFile(path string, raw map[string]any) (File, error) {
	var file File
	if rules, ok := raw["rules"]; ok {
		list, ok := anyList(rules)
		if !ok {
			return file, fmt.Errorf("%s: rules must be a list", path)
		}
		for i, entry := range list {
			m, ok := entry.(map[string]any)
			if !ok {
				return file, fmt.Errorf("%s: rule %d must be a mapping", path, i)
			}
			rule, err := ruleFromMap(m)
			if err != nil {
				return file, fmt.Errorf("%s: rule %d: %w", path, i, err)
			}
			file.Rules = append(file.Rules, rule)
		}
	}
	if section, ok := raw["indent"]; ok {
		m, ok := section.(map[string]any)
		if !ok {
			return file, fmt.Errorf("%s: indent must be a mapping", path)
		}
		cfg, err := indentFromMap(m)
		if err != nil {
			return file, fmt.Errorf("%s: indent: %w", path, err)
		}
		file.Indent = &cfg
	}
	if section, ok := raw["engine"]; ok {
		m, ok := section.(map[string]any)
		if !ok {
			return file, fmt.Errorf("%s: engine must be a mapping", path)
		}
		eng, err := engineFromMap(m)
		if err != nil {
			return file, fmt.Errorf("%s: engine: %w", path, err)
		}
		file.Engine = eng
	}
	return file, nil
}

func ruleFromMap(m map[string]any) (lint.Rule, error) {
	var rule lint.Rule
	var err error
	if rule.Name, err = stringKey(m, "name"); err != nil {
		return rule, err
	}
	if rule.Severity, err = stringKey(m, "severity"); err != nil {
		return rule, err
	}
	if rule.Pattern, err = stringKey(m, "pattern"); err != nil {
		return rule, err
	}
	if rule.CaseSensitive, err = boolKey(m, "case_sensitive"); err != nil {
		return rule, err
	}
	if rule.IncludeComments, err = boolKey(m, "include_comments"); err != nil {
		return rule, err
	}
	if rule.Disabled, err = boolKey(m, "disabled"); err != nil {
		return rule, err
	}
	// stable iteration keeps error messages deterministic
	extraKeys := make([]string, 0, len(m))
	for k := range m {
		if _, known := ruleKeys[k]; !known {
			extraKeys = append(extraKeys, k)
		}
	}
	sort.Strings(extraKeys)
	for _, k := range extraKeys {
		if rule.Extra == nil {
			rule.Extra = make(map[string]any, len(extraKeys))
		}
		rule.Extra[k] = m[k]
	}
	return rule, nil
}

func indentFromMap(m map[string]any) (indent.Config, error) {
	var cfg indent.Config
	var err error
	if cfg.Char, err = stringKey(m, "char"); err != nil {
		return cfg, err
	}
	if cfg.Interval, err = intKey(m, "interval"); err != nil {
		return cfg, err
	}
	if cfg.Severity, err = stringKey(m, "severity"); err != nil {
		return cfg, err
	}
	return cfg.Normalize()
}

func engineFromMap(m map[string]any) (EngineConfig, error) {
	var eng EngineConfig
	if v, ok := m["exclude"]; ok {
		list, err := stringsValue(v, "exclude")
		if err != nil {
			return eng, err
		}
		eng.Excludes = &list
	}
	for key, target := range map[string]**bool{
		"all_files": &eng.AllFiles,
		"no_indent": &eng.NoIndent,
	} {
		if _, ok := m[key]; !ok {
			continue
		}
		v, err := boolKey(m, key)
		if err != nil {
			return eng, err
		}
		*target = &v
	}
	if _, ok := m["jobs"]; ok {
		v, err := intKey(m, "jobs")
		if err != nil {
			return eng, err
		}
		eng.Jobs = &v
	}
	for key, target := range map[string]**string{
		"output":  &eng.Output,
		"color":   &eng.Color,
		"fail_on": &eng.FailOn,
	} {
		if _, ok := m[key]; !ok {
			continue
		}
		v, err := stringKey(m, key)
		if err != nil {
			return eng, err
		}
		*target = &v
	}
	return eng, nil
}

// anyList tolerates the two list shapes the decoders produce: YAML and
// JSON yield []any, TOML yields []map[string]any for arrays of tables.
func anyList(v any) ([]any, bool) {
	switch list := v.(type) {
	case []any:
		return list, true
	case []map[string]any:
		out := make([]any, len(list))
		for i, m := range list {
			out[i] = m
		}
		return out, true
	default:
		return nil, false
	}
}

func stringKey(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string, got %T", key, v)
	}
	return s, nil
}

func boolKey(m map[string]any, key string) (bool, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%s must be a boolean, got %T", key, v)
	}
	return b, nil
}

func intKey(m map[string]any, key string) (int, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("%s must be an integer, got %v", key, n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%s must be an integer, got %T", key, v)
	}
}

func stringsValue(v any, key string) ([]string, error) {
	list, ok := v.([]any)
	if !ok {
		if s, ok := v.(string); ok {
			return []string{s}, nil
		}
		return nil, fmt.Errorf("%s must be a list of strings, got %T", key, v)
	}
	out := make([]string, 0, len(list))
	for _, entry := range list {
		s, ok := entry.(string)
		if !ok {
			return nil, fmt.Errorf("%s entries must be strings, got %T", key, entry)
		}
		out = append(out, s)
	}
	return out, nil
}
