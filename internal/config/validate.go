package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/TheEndless/roku-builder/internal/lint"
)

// NormalizeRules validates the rule list and fills defaulted fields.
// Patterns are compiled here so a bad rule fails at configuration time
// instead of on its first use mid-scan.
func NormalizeRules(rules []lint.Rule) ([]lint.Rule, error) {
	seen := make(map[string]struct{}, len(rules))
	out := make([]lint.Rule, 0, len(rules))
	for i, rule := range rules {
		if strings.TrimSpace(rule.Name) == "" {
			return nil, fmt.Errorf("rule %d: name is required", i)
		}
		if _, dup := seen[rule.Name]; dup {
			return nil, fmt.Errorf("rule %s: duplicate name", rule.Name)
		}
		seen[rule.Name] = struct{}{}
		if rule.Pattern == "" {
			return nil, fmt.Errorf("rule %s: pattern is required", rule.Name)
		}
		expr := rule.Pattern
		if !rule.CaseSensitive {
			expr = "(?i)" + expr
		}
		if _, err := regexp.Compile(expr); err != nil {
			return nil, &lint.ConfigError{Rule: rule.Name, Err: err}
		}
		switch rule.Severity {
		case "":
			rule.Severity = lint.SeverityWarning
		case lint.SeverityInfo, lint.SeverityWarning, lint.SeverityError:
		default:
			return nil, fmt.Errorf("rule %s: unknown severity %q", rule.Name, rule.Severity)
		}
		out = append(out, rule)
	}
	return out, nil
}

// SeverityRank orders severities for the fail-on threshold; unknown
// strings rank below info.
func SeverityRank(severity string) int {
	switch severity {
	case lint.SeverityError:
		return 3
	case lint.SeverityWarning:
		return 2
	case lint.SeverityInfo:
		return 1
	default:
		return 0
	}
}

// ValidateFailOn canonicalizes the --fail-on value. "never" disables
// the warning-based exit code entirely.
func ValidateFailOn(raw string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch value {
	case "", lint.SeverityError:
		return lint.SeverityError, nil
	case lint.SeverityInfo, lint.SeverityWarning, "never":
		return value, nil
	default:
		return "", fmt.Errorf("invalid fail_on: %s", raw)
	}
}
