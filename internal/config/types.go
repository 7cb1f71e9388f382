package config

import (
	"github.com/TheEndless/roku-builder/internal/indent"
	"github.com/TheEndless/roku-builder/internal/lint"
)

// EngineConfig holds the optional engine-level keys of one config
// layer (file or environment). Nil pointers mean "not set here".
type EngineConfig struct {
	Excludes *[]string
	AllFiles *bool
	Jobs     *int
	Output   *string
	Color    *string
	FailOn   *string
	NoIndent *bool
}

// File is one decoded rule-set file: the ordered rule list, the
// optional indentation section and engine defaults.
type File struct {
	Rules  []lint.Rule
	Indent *indent.Config
	Engine EngineConfig
}

// EngineSettings is the fully resolved engine configuration after
// merging defaults, file, environment and flags.
type EngineSettings struct {
	Excludes []string
	AllFiles bool
	Jobs     int
	Output   string
	Color    string
	FailOn   string
	NoIndent bool
}

func DefaultEngineSettings() EngineSettings {
	return EngineSettings{
		Output: "table",
		Color:  "auto",
		FailOn: lint.SeverityError,
	}
}

// MergeEngine applies layers onto base in order; later layers win.
func MergeEngine(base EngineSettings, layers ...EngineConfig) EngineSettings {
	out := base
	for _, layer := range layers {
		out.Excludes = resolveStrings(out.Excludes, layer.Excludes)
		out.AllFiles = resolveBool(out.AllFiles, layer.AllFiles)
		out.Jobs = resolveInt(out.Jobs, layer.Jobs)
		out.Output = resolveString(out.Output, layer.Output)
		out.Color = resolveString(out.Color, layer.Color)
		out.FailOn = resolveString(out.FailOn, layer.FailOn)
		out.NoIndent = resolveBool(out.NoIndent, layer.NoIndent)
	}
	return out
}

func resolveString(current string, next *string) string {
	if next == nil {
		return current
	}
	return *next
}

func resolveBool(current bool, next *bool) bool {
	if next == nil {
		return current
	}
	return *next
}

func resolveInt(current int, next *int) int {
	if next == nil {
		return current
	}
	return *next
}

func resolveStrings(current []string, next *[]string) []string {
	if next == nil {
		return current
	}
	out := make([]string, len(*next))
	copy(out, *next)
	return out
}
