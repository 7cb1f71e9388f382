package termcolor

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type ColorMode int

const (
	ModeAuto ColorMode = iota
	ModeAlways
	ModeNever
)

func (m ColorMode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "auto"
	}
}

func ParseMode(v string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "auto":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	default:
		return ModeAuto, fmt.Errorf("unknown color mode: %s", v)
	}
}

// Enabled resolves a mode against the output stream and environment.
// NO_COLOR and TERM=dumb both disable auto coloring.
func Enabled(mode ColorMode, f *os.File, getenv func(string) string) bool {
	if getenv == nil {
		getenv = os.Getenv
	}
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	if getenv("NO_COLOR") != "" {
		return false
	}
	if getenv("TERM") == "dumb" {
		return false
	}
	return f != nil && term.IsTerminal(int(f.Fd()))
}

type Style struct {
	Bold    bool
	Dim     bool
	FGBasic *int
}

func Apply(s Style, text string, enabled bool) string {
	if !enabled || text == "" {
		return text
	}
	codes := sgrCodes(s)
	if len(codes) == 0 {
		return text
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + text + "\x1b[0m"
}

func sgrCodes(s Style) []string {
	codes := make([]string, 0, 3)
	if s.Bold {
		codes = append(codes, "1")
	}
	if s.Dim {
		codes = append(codes, "2")
	}
	if s.FGBasic != nil {
		codes = append(codes, fmt.Sprintf("3%d", *s.FGBasic))
	}
	return codes
}

func basic(n int) *int { return &n }

// SeverityStyle maps a warning severity to its table color.
func SeverityStyle(severity string) Style {
	switch severity {
	case "error":
		return Style{Bold: true, FGBasic: basic(1)}
	case "warning":
		return Style{FGBasic: basic(3)}
	case "info":
		return Style{FGBasic: basic(6)}
	default:
		return Style{Dim: true}
	}
}
