package lint

// Severity levels recognized by reporting and the exit-code policy.
// The engine itself treats severity as just another rule field.
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Rule は設定された検出パターン 1 件を表す
type Rule struct {
	Name            string         `json:"name"`
	Severity        string         `json:"severity,omitempty"`
	Pattern         string         `json:"pattern"`
	CaseSensitive   bool           `json:"case_sensitive"`
	IncludeComments bool           `json:"include_comments"`
	Disabled        bool           `json:"disabled,omitempty"`
	Extra           map[string]any `json:"extra,omitempty"`
}

// Clone returns an independent value copy of the rule. Extra is copied
// one level deep, which is enough for decoded config scalars and lists.
func (r Rule) Clone() Rule {
	out := r
	if r.Extra != nil {
		out.Extra = make(map[string]any, len(r.Extra))
		for k, v := range r.Extra {
			out.Extra[k] = cloneValue(v)
		}
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, inner := range t {
			m[k] = cloneValue(inner)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, inner := range t {
			s[i] = cloneValue(inner)
		}
		return s
	default:
		return v
	}
}

// Warning は 1 件の検出結果を表す。元ルールの全フィールドの
// 独立したコピーに位置情報を加えたもの
type Warning struct {
	Rule
	Path string `json:"path"`
	Line int    `json:"line"`
	// Match holds the matched text followed by any capture groups,
	// empty strings for groups that did not participate.
	Match []string `json:"match,omitempty"`
}

func newWarning(r Rule, path string, line int, match []string) Warning {
	return Warning{Rule: r.Clone(), Path: path, Line: line, Match: match}
}

// MatchText returns the full matched text, or "" for warnings that do
// not originate from a pattern match (e.g. indentation findings).
func (w Warning) MatchText() string {
	if len(w.Match) == 0 {
		return ""
	}
	return w.Match[0]
}
