package lint

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/TheEndless/roku-builder/internal/detect"
)

// LineChecker is the per-line collaborator contract (indentation
// checks live behind it). It is fed every raw physical line in file
// order together with the live block-comment state, then asked once
// for its accumulated warnings. Ignore directives do not apply to it.
type LineChecker interface {
	Feed(rawLine string, ordinal int, insideComment bool)
	Warnings() []Warning
}

// Inspector runs one file's scan session: comment stripping, ignore
// collection, pattern scanning and collaborator feeding. It holds no
// per-file state itself, so one Inspector may serve many files, and
// distinct files may be inspected in parallel from separate
// goroutines as long as NewChecker returns a fresh collaborator.
type Inspector struct {
	rules []Rule
	// NewChecker constructs the per-file collaborator; nil disables
	// line checking for every inspection.
	newChecker func(path string) LineChecker
}

func NewInspector(rules []Rule, newChecker func(path string) LineChecker) *Inspector {
	return &Inspector{rules: rules, newChecker: newChecker}
}

// Inspect reads path in full and returns every warning produced by the
// enabled rules, in configured rule order, followed by the
// collaborator's warnings. Any read or pattern error fails the whole
// call.
func (in *Inspector) Inspect(path string) ([]Warning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var checker LineChecker
	if in.newChecker != nil {
		checker = in.newChecker(path)
	}

	st := newStripper(detect.ForPath(path))
	lines := strings.Split(string(data), "\n")
	ignored := make(map[int]struct{})
	var withB, withoutB strings.Builder
	withB.Grow(len(data))
	withoutB.Grow(len(data))

	for i, line := range lines {
		if hasIgnoreToken(line) {
			ignored[i] = struct{}{}
		}
		w, wo := st.feed(line)
		if i > 0 {
			withB.WriteByte('\n')
			withoutB.WriteByte('\n')
		}
		withB.WriteString(w)
		withoutB.WriteString(wo)
		if checker != nil {
			checker.Feed(line, i, st.inBlock)
		}
	}

	withComments := withB.String()
	withoutComments := withoutB.String()

	var warnings []Warning
	for _, rule := range in.rules {
		ws, err := scanRule(rule, path, withComments, withoutComments, ignored)
		if err != nil {
			return nil, err
		}
		warnings = append(warnings, ws...)
	}
	if checker != nil {
		warnings = append(warnings, checker.Warnings()...)
	}
	return warnings, nil
}

// scanRule walks the chosen blob with a cursor, emitting one warning
// per non-overlapping match. Line ordinals come from counting the
// terminators before the match start, which is valid because the
// stripper preserves exactly one terminator per original line.
func scanRule(rule Rule, path, withComments, withoutComments string, ignored map[int]struct{}) ([]Warning, error) {
	if rule.Disabled {
		return nil, nil
	}
	expr := rule.Pattern
	if !rule.CaseSensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &ConfigError{Rule: rule.Name, Err: err}
	}

	blob := withoutComments
	if rule.IncludeComments {
		blob = withComments
	}

	var out []Warning
	cursor := 0
	line := 0
	counted := 0
	for cursor <= len(blob) {
		loc := re.FindStringSubmatchIndex(blob[cursor:])
		if loc == nil {
			break
		}
		start := cursor + loc[0]
		end := cursor + loc[1]
		line += strings.Count(blob[counted:start], "\n")
		counted = start
		if _, skip := ignored[line]; !skip {
			out = append(out, newWarning(rule, path, line, submatches(blob, cursor, loc)))
		}
		if end == start {
			// zero-width match: step past it so the scan terminates
			end++
		}
		cursor = end
	}
	return out, nil
}

func submatches(blob string, base int, loc []int) []string {
	groups := make([]string, 0, len(loc)/2)
	for i := 0; i < len(loc); i += 2 {
		if loc[i] < 0 {
			groups = append(groups, "")
			continue
		}
		groups = append(groups, blob[base+loc[i]:base+loc[i+1]])
	}
	return groups
}
