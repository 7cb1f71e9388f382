package engine

import (
	"github.com/TheEndless/roku-builder/internal/indent"
	"github.com/TheEndless/roku-builder/internal/lint"
)

// Options は 1 回の走査の実行オプション
type Options struct {
	// Roots are the files or directories to scan.
	Roots []string
	// Excludes are path substrings; any candidate whose slash-relative
	// path contains one is skipped.
	Excludes []string
	Rules    []lint.Rule
	// Indent enables the indentation collaborator; nil disables it.
	Indent   *indent.Config
	AllFiles bool
	Jobs     int
	Progress bool
}

// FileError は 1 ファイルの検査失敗を表す
type FileError struct {
	File    string `json:"file"`
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// Result is one scan over all roots. Warnings are ordered by file
// path; within a file the inspector's order (rule groups, then
// indentation findings) is preserved.
type Result struct {
	Warnings   []lint.Warning `json:"warnings"`
	Files      int            `json:"files"`
	Total      int            `json:"total"`
	ElapsedMS  int64          `json:"elapsed_ms"`
	Errors     []FileError    `json:"errors,omitempty"`
	ErrorCount int            `json:"error_count"`
}

// MaxSeverityRank returns the highest rank present in the result per
// the given ranking function, 0 when there are no warnings.
func (r *Result) MaxSeverityRank(rank func(string) int) int {
	max := 0
	for _, w := range r.Warnings {
		if v := rank(w.Severity); v > max {
			max = v
		}
	}
	return max
}
