package detect

import (
	"path/filepath"
	"strings"
)

// Dialect はファイルのコメント方言を表す
type Dialect int

const (
	// DialectNone covers every extension outside the two recognized
	// dialects: no comment stripping is performed at all.
	DialectNone Dialect = iota
	// DialectScripting is BrightScript: single-line comments starting
	// at an unescaped apostrophe, no multi-line form.
	DialectScripting
	// DialectMarkup is SceneGraph XML: <!-- --> block comments that
	// may span lines.
	DialectMarkup
)

func (d Dialect) String() string {
	switch d {
	case DialectScripting:
		return "brightscript"
	case DialectMarkup:
		return "scenegraph"
	default:
		return "none"
	}
}

var dialectExtensions = map[string]Dialect{
	".brs": DialectScripting,
	".xml": DialectMarkup,
}

// ForPath maps a file path to its comment dialect by extension,
// case-insensitively.
func ForPath(p string) Dialect {
	ext := strings.ToLower(filepath.Ext(p))
	if d, ok := dialectExtensions[ext]; ok {
		return d
	}
	return DialectNone
}

// Candidate reports whether the walker should hand path to the
// inspector. With allFiles set every regular file qualifies; otherwise
// only the two recognized extensions do.
func Candidate(p string, allFiles bool) bool {
	if allFiles {
		return true
	}
	return ForPath(p) != DialectNone
}
