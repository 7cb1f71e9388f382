package config

import (
	"fmt"
	"strconv"
	"strings"
)

// FromEnv builds a config layer from ROKU_LINT_* variables. getenv is
// injectable for tests; nil falls back to an empty environment.
func FromEnv(getenv func(string) string) (EngineConfig, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var eng EngineConfig

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setString(&eng.Output, "ROKU_LINT_OUTPUT")
	setString(&eng.Color, "ROKU_LINT_COLOR")
	setString(&eng.FailOn, "ROKU_LINT_FAIL_ON")

	if raw := strings.TrimSpace(getenv("ROKU_LINT_EXCLUDE")); raw != "" {
		list := splitList(raw)
		eng.Excludes = &list
	}
	if raw := strings.TrimSpace(getenv("ROKU_LINT_JOBS")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return eng, fmt.Errorf("ROKU_LINT_JOBS: invalid value %q", raw)
		}
		eng.Jobs = &n
	}

	setBool := func(target **bool, key string) error {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return nil
		}
		v, err := parseBool(raw, key)
		if err != nil {
			return err
		}
		*target = &v
		return nil
	}
	if err := setBool(&eng.AllFiles, "ROKU_LINT_ALL_FILES"); err != nil {
		return eng, err
	}
	if err := setBool(&eng.NoIndent, "ROKU_LINT_NO_INDENT"); err != nil {
		return eng, err
	}
	return eng, nil
}

func parseBool(raw, key string) (bool, error) {
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("%s: invalid boolean %q", key, raw)
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
