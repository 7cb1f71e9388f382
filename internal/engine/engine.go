package engine

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/TheEndless/roku-builder/internal/detect"
	"github.com/TheEndless/roku-builder/internal/indent"
	"github.com/TheEndless/roku-builder/internal/lint"
	"github.com/TheEndless/roku-builder/internal/util"
)

const maxJobs = 64

// Run は設定されたルールで全ルートを走査し、警告と
// ファイル単位のエラーを集約した Result を返します。
//
// 個々のファイルの検査失敗は Result.Errors に記録され、
// 走査全体は継続します。
func Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.NumCPU()
	}
	if opts.Jobs > maxJobs {
		opts.Jobs = maxJobs
	}

	files, err := collectFiles(opts.Roots, opts.Excludes, opts.AllFiles)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return &Result{ElapsedMS: msSince(start)}, nil
	}

	var newChecker func(string) lint.LineChecker
	if opts.Indent != nil {
		cfg := *opts.Indent
		newChecker = func(path string) lint.LineChecker {
			return indent.New(cfg, path)
		}
	}
	inspector := lint.NewInspector(opts.Rules, newChecker)

	type fileResult struct {
		warnings []lint.Warning
		err      *FileError
	}
	jobs := make(chan string)
	results := make(chan fileResult)
	prog := util.NewProgress(len(files), opts.Progress)

	var wg sync.WaitGroup
	wg.Add(opts.Jobs)
	for i := 0; i < opts.Jobs; i++ {
		go func() {
			defer wg.Done()
			for path := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				ws, err := inspector.Inspect(path)
				res := fileResult{warnings: ws}
				if err != nil {
					res = fileResult{err: newFileError(path, "inspect", err)}
				}
				prog.Advance()
				results <- res
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case jobs <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var warnings []lint.Warning
	var errs []FileError
	for res := range results {
		if res.err != nil {
			errs = append(errs, *res.err)
			continue
		}
		warnings = append(warnings, res.warnings...)
	}
	prog.Done()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// group by file; the per-file order is the inspector's contract
	sort.SliceStable(warnings, func(i, j int) bool {
		return warnings[i].Path < warnings[j].Path
	})
	sort.Slice(errs, func(i, j int) bool {
		if errs[i].File == errs[j].File {
			return errs[i].Stage < errs[j].Stage
		}
		return errs[i].File < errs[j].File
	})

	return &Result{
		Warnings:   warnings,
		Files:      len(files),
		Total:      len(warnings),
		ElapsedMS:  msSince(start),
		Errors:     errs,
		ErrorCount: len(errs),
	}, nil
}

func newFileError(file, stage string, err error) *FileError {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		msg = "unknown error"
	}
	return &FileError{File: file, Stage: stage, Message: msg}
}

func collectFiles(roots, excludes []string, allFiles bool) ([]string, error) {
	if len(roots) == 0 {
		roots = []string{"."}
	}
	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, dup := seen[path]; dup {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if excluded(path, excludes) {
				return nil
			}
			if !detect.Candidate(path, allFiles) {
				return nil
			}
			add(path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}
	sort.Strings(files)
	return files, nil
}

func excluded(path string, excludes []string) bool {
	slashed := filepath.ToSlash(path)
	for _, ex := range excludes {
		if ex == "" {
			continue
		}
		if strings.Contains(slashed, ex) {
			return true
		}
	}
	return false
}

func msSince(t time.Time) int64 { return time.Since(t).Milliseconds() }
