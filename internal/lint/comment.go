package lint

import (
	"strings"

	"github.com/TheEndless/roku-builder/internal/detect"
)

const (
	markupOpen  = "<!--"
	markupClose = "-->"
)

// stripper removes comment text line by line, carrying the open-block
// state of a markup file across calls. One stripper serves exactly one
// file and is never reused.
type stripper struct {
	dialect detect.Dialect
	inBlock bool
}

func newStripper(d detect.Dialect) *stripper {
	return &stripper{dialect: d}
}

// feed consumes one physical line (without its terminator) and returns
// the comment-preserved and comment-stripped variants. Scripting
// single-line comments have no conditional form, so they are absent
// from both. For DialectNone both variants are the raw line.
func (s *stripper) feed(line string) (withComments, withoutComments string) {
	switch s.dialect {
	case detect.DialectScripting:
		stripped := stripScriptComment(line)
		return stripped, stripped
	case detect.DialectMarkup:
		return line, s.stripMarkup(line)
	default:
		return line, line
	}
}

// stripScriptComment cuts the line at the first unescaped apostrophe.
func stripScriptComment(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] == '\'' && (i == 0 || line[i-1] != '\\') {
			return line[:i]
		}
	}
	return line
}

func (s *stripper) stripMarkup(line string) string {
	if s.inBlock {
		end := strings.Index(line, markupClose)
		if end < 0 {
			return ""
		}
		s.inBlock = false
		line = line[end+len(markupClose):]
	}
	// comments that open and close on this line
	for {
		open := strings.Index(line, markupOpen)
		if open < 0 {
			return line
		}
		rest := line[open+len(markupOpen):]
		end := strings.Index(rest, markupClose)
		if end < 0 {
			s.inBlock = true
			return line[:open]
		}
		line = line[:open] + rest[end+len(markupClose):]
	}
}
