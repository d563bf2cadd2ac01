// Command zenfmt formats source files and optionally strips their
// comments, trailing whitespace, or excess blank lines. Running it with
// no mode flag formats; --strip-comments, --strip-whitespace,
// --strip-newlines, and --all select the other operations described in
// the package doc.
//
// Grounded on _examples/original_source/cli/cli.rs and
// _examples/original_source/core/file_finder.rs's CliArgs/XzenfmtArgs.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pborman/getopt/v2"

	"github.com/zenfmt/zenfmt/internal/cache"
	"github.com/zenfmt/zenfmt/internal/config"
	"github.com/zenfmt/zenfmt/internal/debugdump"
	"github.com/zenfmt/zenfmt/internal/diffpreview"
	"github.com/zenfmt/zenfmt/internal/dispatch"
	"github.com/zenfmt/zenfmt/internal/format"
	"github.com/zenfmt/zenfmt/internal/logging"
	"github.com/zenfmt/zenfmt/internal/pipeline"
	"github.com/zenfmt/zenfmt/internal/walk"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	set := getopt.New()
	set.SetProgram("zenfmt")

	codeFormat := set.BoolLong("code-format", 0, "format code only (default when no other mode is given)")
	stripComments := set.BoolLong("strip-comments", 0, "strip comments only")
	stripWhitespace := set.BoolLong("strip-whitespace", 0, "strip trailing whitespace only")
	stripNewlines := set.BoolLong("strip-newlines", 0, "collapse runs of blank lines only")
	all := set.BoolLong("all", 0, "format, strip comments, then format again")
	noConfirm := set.BoolLong("no-confirm", 0, "skip the confirmation prompt")
	checkDeps := set.BoolLong("check-dependencies", 0, "check whether required external tools are installed")
	debug := set.BoolLong("debug-ranges", 0, "dump located comment ranges instead of writing output")
	showDiff := set.BoolLong("diff", 0, "after processing, print a diff of each modified file (files are still written)")
	useCache := set.StringLong("cache", 0, "", "path to a processed-file cache database")
	concurrency := set.IntLong("jobs", 'j', 0, "maximum concurrent files (default: number of CPUs)")
	langs := set.ListLong("lang", 0, "restrict to specific languages (repeatable)")
	include := set.ListLong("include", 0, "glob pattern for files to include (repeatable)")
	exclude := set.ListLong("exclude", 0, "glob pattern for files/directories to exclude (repeatable)")
	configPath := set.StringLong("config", 0, ".zenfmt.yaml", "path to the project config file")

	set.SetParameters("[path]")
	if err := set.Getopt(args, nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		set.PrintUsage(os.Stderr)
		return 2
	}

	rest := set.Args()
	if len(rest) > 0 && rest[0] == "completion" {
		return runCompletion(rest[1:])
	}

	if err := logging.Configure(*debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *checkDeps {
		return runCheckDependencies(context.Background(), *langs)
	}

	cfg, err := config.LoadIfExists(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 1
	}
	if len(*include) > 0 {
		cfg.Include = *include
	}
	if len(*exclude) > 0 {
		cfg.Exclude = *exclude
	}
	dispatch.MaxConsecutiveBlankLines = cfg.MaxConsecutiveBlankLines
	if *concurrency <= 0 {
		*concurrency = cfg.Concurrency
	}
	if *useCache == "" {
		*useCache = cfg.CacheFile
	}

	path := "."
	if len(rest) > 0 {
		path = rest[0]
	}

	files, err := walk.Find(walk.Options{
		Roots:            []string{path},
		Include:          cfg.Include,
		Exclude:          cfg.Exclude,
		RespectGitignore: cfg.RespectGitignore,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error finding files:", err)
		return 1
	}
	if len(*langs) > 0 {
		files = filterByLang(files, *langs)
	}

	if len(files) == 0 {
		fmt.Println("No files found matching the criteria.")
		return 0
	}

	fmt.Printf("Found %d files:\n", len(files))
	for i, f := range files {
		if i >= 10 {
			fmt.Printf("  ... and %d more.\n", len(files)-10)
			break
		}
		fmt.Println("  " + f)
	}

	if !confirmProcessing(len(files), *noConfirm) {
		return 0
	}

	mode := determineMode(*all, *stripComments, *stripWhitespace, *stripNewlines, *codeFormat)
	fmt.Printf("Processing files (mode: %s)...\n", modeName(mode))

	var fc *cache.Cache
	if *useCache != "" {
		fc, err = cache.Open(*useCache)
		if err != nil {
			fmt.Fprintln(os.Stderr, "cache:", err)
			return 1
		}
		defer fc.Close()
	}

	if *debug {
		return runDebugRanges(files)
	}

	ctx := context.Background()
	results := pipeline.Run(ctx, files, mode, *concurrency, fc)

	if *showDiff {
		printDiffs(results)
	}

	successCount, failureCount := 0, 0
	fmt.Println("\nProcessing complete.")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "  failed: %s - %s\n", r.Path, r.Err)
			failureCount++
			continue
		}
		successCount++
	}
	fmt.Printf("Result: %d processed successfully, %d failed.\n", successCount, failureCount)

	if failureCount > 0 {
		return 1
	}
	return 0
}

func determineMode(all, strip, stripWS, stripNL, format bool) dispatch.Mode {
	switch {
	case all:
		return dispatch.ModeAll
	case strip:
		return dispatch.ModeStrip
	case stripWS:
		return dispatch.ModeStripWhitespace
	case stripNL:
		return dispatch.ModeStripNewlines
	default:
		return dispatch.ModeFormat
	}
}

func modeName(m dispatch.Mode) string {
	switch m {
	case dispatch.ModeAll:
		return "all"
	case dispatch.ModeStrip:
		return "strip-comments"
	case dispatch.ModeStripWhitespace:
		return "strip-whitespace"
	case dispatch.ModeStripNewlines:
		return "strip-newlines"
	default:
		return "code-format"
	}
}

func filterByLang(files []string, wanted []string) []string {
	want := make(map[string]bool, len(wanted))
	for _, w := range wanted {
		want[strings.ToLower(w)] = true
	}
	out := files[:0]
	for _, f := range files {
		l, ok := dispatch.LanguageFor(f)
		if ok && want[string(l)] {
			out = append(out, f)
		}
	}
	return out
}

func confirmProcessing(count int, noConfirm bool) bool {
	if noConfirm {
		return true
	}
	fmt.Printf("Process %d files? [y/N] ", count)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(strings.ToLower(line))
	confirmed := line == "y" || line == "yes"
	if !confirmed {
		fmt.Println("Aborted by user.")
	}
	return confirmed
}

// runCheckDependencies probes the external formatters the given
// languages route to (every registered tool when wanted is empty) and
// reports which are missing; any missing tool makes it return 1. The
// other modes do not check tools up front: a missing formatter shows up
// there as a per-file formatter error for each file that needs it.
//
// Grounded on _examples/original_source/core/dependency_checker.rs's
// check_dependencies.
func runCheckDependencies(ctx context.Context, wanted []string) int {
	langs := make([]dispatch.Lang, len(wanted))
	for i, w := range wanted {
		langs[i] = dispatch.Lang(strings.ToLower(w))
	}

	fmt.Println("Checking dependencies:")
	results, allOK := format.CheckDependencies(ctx, langs)
	if len(results) == 0 {
		if len(wanted) > 0 {
			fmt.Printf("No specific formatter dependencies found for language(s): %v\n", wanted)
		} else {
			fmt.Println("No specific formatter dependencies found to check.")
		}
		return 0
	}

	for _, r := range results {
		fmt.Println("  " + r.Message)
	}
	if !allOK {
		fmt.Fprintln(os.Stderr, "One or more required formatters are missing.")
		return 1
	}
	fmt.Println("All checked dependencies seem satisfied.")
	return 0
}

func runDebugRanges(files []string) int {
	for _, path := range files {
		l, ok := dispatch.LanguageFor(path)
		if !ok {
			continue
		}
		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, path, err)
			continue
		}
		ranges, err := dispatch.FindComments(l, string(content))
		if err != nil {
			fmt.Fprintln(os.Stderr, path, err)
			continue
		}
		fmt.Println(debugdump.Ranges(path, string(content), ranges))
	}
	return 0
}

func printDiffs(results []dispatch.Result) {
	for _, r := range results {
		if r.Err != nil || !r.Modified {
			continue
		}
		after, err := os.ReadFile(r.Path)
		if err != nil {
			continue
		}
		fmt.Println(diffpreview.Render(r.Path, r.Before, string(after)))
	}
}

func runCompletion(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: zenfmt completion <bash|zsh|fish>")
		return 2
	}
	shell := args[0]
	script, ok := completionScripts[shell]
	if !ok {
		fmt.Fprintf(os.Stderr, "unsupported shell %q\n", shell)
		return 2
	}
	fmt.Println(script)
	return 0
}

var completionScripts = map[string]string{
	"bash": `_zenfmt_complete() {
  COMPREPLY=( $(compgen -W "--code-format --strip-comments --strip-whitespace --strip-newlines --all --lang --include --exclude --no-confirm --check-dependencies --diff --debug-ranges --cache --jobs --config" -- "${COMP_WORDS[COMP_CWORD]}") )
}
complete -F _zenfmt_complete ` + filepath.Base("zenfmt"),
	"zsh": `#compdef zenfmt
_arguments \
  '--code-format[format code only]' \
  '--strip-comments[strip comments only]' \
  '--strip-whitespace[strip trailing whitespace only]' \
  '--strip-newlines[collapse blank lines only]' \
  '--all[format, strip, format]' \
  '--lang=[restrict to language]' \
  '--include=[glob to include]' \
  '--exclude=[glob to exclude]'`,
	"fish": `complete -c zenfmt -l code-format -d 'format code only'
complete -c zenfmt -l strip-comments -d 'strip comments only'
complete -c zenfmt -l strip-whitespace -d 'strip trailing whitespace only'
complete -c zenfmt -l strip-newlines -d 'collapse blank lines only'
complete -c zenfmt -l all -d 'format, strip, format'
complete -c zenfmt -l lang -d 'restrict to language' -x
complete -c zenfmt -l include -d 'glob to include' -x
complete -c zenfmt -l exclude -d 'glob to exclude' -x`,
}
