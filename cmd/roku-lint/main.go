package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/TheEndless/roku-builder/internal/config"
	"github.com/TheEndless/roku-builder/internal/engine"
	"github.com/TheEndless/roku-builder/internal/indent"
	"github.com/TheEndless/roku-builder/internal/output"
	"github.com/TheEndless/roku-builder/internal/termcolor"
	"github.com/TheEndless/roku-builder/internal/util"
)

const (
	exitWarnings = 1
	exitErrors   = 2
)

func main() {
	log.SetFlags(0)
	if len(os.Args) > 1 && os.Args[1] == "watch" {
		watchCmd(os.Args[2:])
		return
	}
	os.Exit(scanCmd(os.Args[1:]))
}

func scanCmd(args []string) int {
	run, err := parseArgs(args)
	if err != nil {
		log.Fatal(err)
	}
	res, err := engine.Run(context.Background(), run.opts)
	if err != nil {
		log.Fatal(err)
	}
	if err := render(os.Stdout, res, run); err != nil {
		log.Fatal(err)
	}
	reportErrors(os.Stderr, res)
	return exitCodeFor(res, run.settings.FailOn)
}

// runConfig is everything one scan invocation needs: the resolved
// engine options plus presentation settings.
type runConfig struct {
	opts     engine.Options
	settings config.EngineSettings
	fields   output.FieldSelection
	colored  bool
}

func parseArgs(args []string) (runConfig, error) {
	fs := flag.NewFlagSet("roku-lint", flag.ExitOnError)

	var (
		cfgPath    = fs.String("config", "", "rule-set file (default: search upward for .roku-lint.*)")
		outputFmt  = fs.String("output", "", "table|json|ndjson|csv|markdown")
		color      = fs.String("color", "", "auto|always|never")
		fields     = fs.String("fields", "", "comma-separated table columns")
		excludes   = fs.String("exclude", "", "comma-separated path fragments to skip")
		allFiles   = fs.Bool("all-files", false, "scan every file, not just .brs/.xml")
		jobs       = fs.Int("jobs", runtime.NumCPU(), "max parallel file inspections")
		failOn     = fs.String("fail-on", "", "info|warning|error|never (exit 1 threshold)")
		noIndent   = fs.Bool("no-indent", false, "disable the indentation checker")
		noProgress = fs.Bool("no-progress", false, "disable progress/ETA")
		forceProg  = fs.Bool("progress", false, "force progress even when piped")
	)
	_ = fs.Parse(args)

	roots := fs.Args()
	if len(roots) == 0 {
		roots = []string{"."}
	}

	path := strings.TrimSpace(*cfgPath)
	if path == "" {
		path = strings.TrimSpace(os.Getenv("ROKU_LINT_CONFIG"))
	}
	if path == "" {
		path = config.Find(roots[0])
	}
	var file config.File
	if path != "" {
		var err error
		file, err = config.Load(path)
		if err != nil {
			return runConfig{}, err
		}
	}
	rules := file.Rules
	if len(rules) == 0 {
		rules = config.DefaultRules()
	}
	rules, err := config.NormalizeRules(rules)
	if err != nil {
		return runConfig{}, err
	}

	envCfg, err := config.FromEnv(os.Getenv)
	if err != nil {
		return runConfig{}, err
	}
	flagCfg := flagOverrides(fs, *excludes, *allFiles, *jobs, *outputFmt, *color, *failOn, *noIndent)
	settings := config.MergeEngine(config.DefaultEngineSettings(), file.Engine, envCfg, flagCfg)
	settings.FailOn, err = config.ValidateFailOn(settings.FailOn)
	if err != nil {
		return runConfig{}, err
	}

	var indentCfg *indent.Config
	if !settings.NoIndent {
		cfg := indent.Default()
		if file.Indent != nil {
			cfg = *file.Indent
		}
		indentCfg = &cfg
	}

	sel, err := output.ResolveFields(*fields)
	if err != nil {
		return runConfig{}, err
	}
	mode, err := termcolor.ParseMode(settings.Color)
	if err != nil {
		return runConfig{}, err
	}

	return runConfig{
		opts: engine.Options{
			Roots:    roots,
			Excludes: settings.Excludes,
			Rules:    rules,
			Indent:   indentCfg,
			AllFiles: settings.AllFiles,
			Jobs:     settings.Jobs,
			Progress: util.ShouldShowProgress(*forceProg, *noProgress),
		},
		settings: settings,
		fields:   sel,
		colored:  termcolor.Enabled(mode, os.Stdout, nil),
	}, nil
}

// flagOverrides lifts only the flags the user actually set into a
// config layer, so flag defaults never mask file or env values.
func flagOverrides(fs *flag.FlagSet, excludes string, allFiles bool, jobs int, outputFmt, color, failOn string, noIndent bool) config.EngineConfig {
	var cfg config.EngineConfig
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "exclude":
			list := splitList(excludes)
			cfg.Excludes = &list
		case "all-files":
			v := allFiles
			cfg.AllFiles = &v
		case "jobs":
			v := jobs
			cfg.Jobs = &v
		case "output":
			v := outputFmt
			cfg.Output = &v
		case "color":
			v := color
			cfg.Color = &v
		case "fail-on":
			v := failOn
			cfg.FailOn = &v
		case "no-indent":
			v := noIndent
			cfg.NoIndent = &v
		}
	})
	return cfg
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func render(w io.Writer, res *engine.Result, run runConfig) error {
	switch strings.ToLower(run.settings.Output) {
	case "", "table":
		return output.WriteTable(w, res.Warnings, run.fields, run.colored)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(res)
	case "ndjson":
		return output.WriteNDJSON(w, res.Warnings)
	case "csv":
		return output.WriteCSV(w, res.Warnings, run.fields)
	case "markdown":
		return output.WriteMarkdownTable(w, res.Warnings, run.fields)
	default:
		return fmt.Errorf("invalid output format: %s", run.settings.Output)
	}
}

func reportErrors(w io.Writer, res *engine.Result) {
	for _, fe := range res.Errors {
		fmt.Fprintf(w, "error: %s: %s: %s\n", fe.File, fe.Stage, fe.Message)
	}
}

func exitCodeFor(res *engine.Result, failOn string) int {
	if res.ErrorCount > 0 {
		return exitErrors
	}
	if failOn == "never" {
		return 0
	}
	if res.MaxSeverityRank(config.SeverityRank) >= config.SeverityRank(failOn) {
		return exitWarnings
	}
	return 0
}
