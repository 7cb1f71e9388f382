// Package indent implements the per-line indentation checker fed by
// the inspector. It validates a uniform indent unit and flags jumps of
// more than one level, skipping blank lines and lines inside markup
// block comments.
package indent

import (
	"fmt"
	"strings"

	"github.com/TheEndless/roku-builder/internal/lint"
)

// Config は 1 ファイル分のインデント検査の設定
type Config struct {
	// Char is the single indent character, " " or "\t".
	Char string `json:"char"`
	// Interval is the number of Char repetitions per level.
	Interval int    `json:"interval"`
	Severity string `json:"severity,omitempty"`
}

func Default() Config {
	return Config{Char: " ", Interval: 2, Severity: lint.SeverityWarning}
}

// Normalize fills zero values with defaults and rejects configs the
// checker cannot honor.
func (c Config) Normalize() (Config, error) {
	if c.Char == "" {
		c.Char = " "
	}
	if c.Char != " " && c.Char != "\t" {
		return c, fmt.Errorf("indent char must be a space or a tab, got %q", c.Char)
	}
	if c.Interval == 0 {
		c.Interval = 2
	}
	if c.Interval < 0 {
		return c, fmt.Errorf("indent interval must be positive, got %d", c.Interval)
	}
	if c.Severity == "" {
		c.Severity = lint.SeverityWarning
	}
	return c, nil
}

// Checker accumulates indentation warnings for one file. It satisfies
// lint.LineChecker.
type Checker struct {
	cfg       Config
	path      string
	prevLevel int
	warnings  []lint.Warning
}

func New(cfg Config, path string) *Checker {
	return &Checker{cfg: cfg, path: path}
}

func (c *Checker) Feed(rawLine string, ordinal int, insideComment bool) {
	line := strings.TrimRight(rawLine, "\r")
	if insideComment || strings.TrimSpace(line) == "" {
		return
	}
	leading := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
	wrong := "\t"
	if c.cfg.Char == "\t" {
		wrong = " "
	}
	if strings.Contains(leading, wrong) {
		c.report(ordinal, "mixed indentation characters")
		return
	}
	count := len(leading)
	if count%c.cfg.Interval != 0 {
		c.report(ordinal, fmt.Sprintf("indentation is not a multiple of %d", c.cfg.Interval))
		return
	}
	level := count / c.cfg.Interval
	if level > c.prevLevel+1 {
		c.report(ordinal, "indented more than one level at once")
	}
	c.prevLevel = level
}

func (c *Checker) Warnings() []lint.Warning { return c.warnings }

func (c *Checker) report(ordinal int, detail string) {
	c.warnings = append(c.warnings, lint.Warning{
		Rule: lint.Rule{
			Name:     "indentation",
			Severity: c.cfg.Severity,
			Extra:    map[string]any{"detail": detail},
		},
		Path: c.path,
		Line: ordinal,
	})
}
