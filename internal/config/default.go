package config

import "github.com/TheEndless/roku-builder/internal/lint"

// DefaultRules is the stock rule set used when no config file is
// found. Each entry is an ordinary rule with no engine special cases.
func DefaultRules() []lint.Rule {
	return []lint.Rule{
		{
			Name:     "no-stop",
			Severity: lint.SeverityError,
			Pattern:  `(?m)^[ \t]*stop[ \t]*\r?$`,
			Extra:    map[string]any{"category": "debug"},
		},
		{
			Name:     "print-debugging",
			Severity: lint.SeverityWarning,
			Pattern:  `(?m)^[ \t]*(print|\?)[ \t]`,
			Extra:    map[string]any{"category": "debug"},
		},
		{
			Name:     "deprecated-roimagecanvas",
			Severity: lint.SeverityWarning,
			Pattern:  `roImageCanvas`,
			Extra:    map[string]any{"category": "deprecation"},
		},
		{
			Name:     "deprecated-rourltransfer-wait",
			Severity: lint.SeverityInfo,
			Pattern:  `\.GetToString\(`,
			Extra:    map[string]any{"category": "performance"},
		},
		{
			Name:            "todo-marker",
			Severity:        lint.SeverityInfo,
			Pattern:         `TODO|FIXME`,
			CaseSensitive:   true,
			IncludeComments: true,
		},
		{
			Name:            "trailing-whitespace",
			Severity:        lint.SeverityInfo,
			Pattern:         `(?m)[ \t]+\r?$`,
			CaseSensitive:   true,
			IncludeComments: true,
			Extra:           map[string]any{"category": "style"},
		},
	}
}
