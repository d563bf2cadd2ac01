package format

import (
	"context"
	"os/exec"
	"sort"

	"github.com/zenfmt/zenfmt/internal/dispatch"
)

// ToolDependency carries the availability-check metadata for one
// external formatter: the command used to probe whether it's on PATH,
// and the hint printed when it isn't.
//
// Grounded on _examples/original_source/core/dependency_checker.rs's
// ToolInfo/TOOLS table.
type ToolDependency struct {
	CheckCommand []string
	InstallHint  string
}

// toolDeps is keyed by tool name (not language), since several
// languages share a tool (prettierd, astyle, tidy) and the original
// checks each distinct tool once regardless of how many languages
// route to it.
var toolDeps = map[string]ToolDependency{
	"rustfmt":            {[]string{"rustfmt", "--version"}, "Install rustfmt component (e.g., 'rustup component add rustfmt')"},
	"astyle":             {[]string{"astyle", "--version"}, "Install astyle (e.g., 'sudo apt install astyle', 'brew install astyle')"},
	"rubocop":            {[]string{"rubocop", "--version"}, "Install rubocop (e.g., 'gem install rubocop')"},
	"taplo":              {[]string{"taplo", "--version"}, "Install taplo CLI (e.g., 'cargo install taplo-cli')"},
	"prettierd":          {[]string{"prettierd", "--version"}, "Install prettierd (e.g., 'npm install -g prettier prettierd')"},
	"asmfmt":             {[]string{"asmfmt", "--version"}, "Install asmfmt (check project repo)"},
	"crystal":            {[]string{"crystal", "--version"}, "Install Crystal (crystal-lang.org)"},
	"fish_indent":        {[]string{"fish_indent", "--version"}, "Install fish shell (includes fish_indent)"},
	"shfmt":              {[]string{"shfmt", "--version"}, "Install shfmt (e.g., 'apt install shfmt', 'brew install shfmt')"},
	"stylua":             {[]string{"stylua", "--version"}, "Install stylua (e.g., 'cargo install stylua')"},
	"black":              {[]string{"black", "--version"}, "Install black (e.g., 'pip install black')"},
	"perltidy":           {[]string{"perltidy", "--version"}, "Install perltidy (e.g., 'cpanm Perl::Tidy', package manager)"},
	"gofmt":              {[]string{"gofmt", "-h"}, "Install Go (includes gofmt): https://golang.org/doc/install"},
	"elm-format":         {[]string{"elm-format", "--help"}, "Install elm-format (e.g., 'npm install -g elm-format')"},
	"ormolu":             {[]string{"ormolu", "--version"}, "Install ormolu (e.g., 'cabal install ormolu')"},
	"cabal-fmt":          {[]string{"cabal-fmt", "--version"}, "Install cabal-fmt (e.g., 'cabal install cabal-fmt')"},
	"tidy":               {[]string{"tidy", "-v"}, "Install tidy-html5 (e.g., 'apt install tidy', 'brew install tidy-html5')"},
	"nginxfmt":           {[]string{"nginxfmt", "--version"}, "Install nginxfmt (check project repo)"},
	"nixfmt":             {[]string{"nixfmt", "--version"}, "Install nixfmt (check project repo or Nix packages)"},
	"ktlint":             {[]string{"ktlint", "--version"}, "Install ktlint (check project repo)"},
	"google-java-format": {[]string{"google-java-format", "--version"}, "Install google-java-format (download JAR or build plugins)"},
	"swift-format":       {[]string{"swift-format", "--version"}, "Install swift-format (check Swift toolchain/GitHub)"},
	"dockfmt":            {[]string{"dockfmt", "--version"}, "Install dockfmt (check project repo)"},
	"djlint":             {[]string{"djlint", "--version"}, "Install djlint (e.g., 'pip install djlint')"},
}

// DependencyResult is the outcome of probing one tool for availability.
type DependencyResult struct {
	Tool    string
	Found   bool
	Message string
}

// checkToolCommand runs command and reports whether it exited zero. A
// nil Cmd.Stdout/Stderr already discards output, matching
// check_tool_command's explicit Stdio::null on both streams.
func checkToolCommand(ctx context.Context, command []string) bool {
	if len(command) == 0 {
		return false
	}
	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	return cmd.Run() == nil
}

// relevantToolNames returns the distinct tool names that Tools routes
// the given languages to (every registered tool, deduped, when langs
// is empty), sorted for deterministic iteration, mirroring the
// original's checked_tools/tools_needing_check construction.
func relevantToolNames(langs []dispatch.Lang) []string {
	want := make(map[dispatch.Lang]bool, len(langs))
	for _, l := range langs {
		want[l] = true
	}
	checkAll := len(want) == 0

	seen := make(map[string]bool)
	var names []string
	for l, tool := range Tools {
		if !checkAll && !want[l] {
			continue
		}
		if seen[tool.Name] {
			continue
		}
		seen[tool.Name] = true
		names = append(names, tool.Name)
	}
	sort.Strings(names)
	return names
}

// CheckDependencies probes, once each, the distinct tools that Tools
// routes the given languages to (every registered tool when langs is
// empty), and reports whether every probed tool was found.
//
// Grounded on _examples/original_source/core/dependency_checker.rs's
// check_dependencies.
func CheckDependencies(ctx context.Context, langs []dispatch.Lang) (results []DependencyResult, allOK bool) {
	allOK = true
	for _, name := range relevantToolNames(langs) {
		dep, ok := toolDeps[name]
		var found bool
		var msg string
		if ok {
			found = checkToolCommand(ctx, dep.CheckCommand)
		}
		switch {
		case found:
			msg = name + ": OK"
		case ok:
			msg = name + ": Not found. " + dep.InstallHint
		default:
			msg = name + ": Not found. No install hint available."
		}
		if !found {
			allOK = false
		}
		results = append(results, DependencyResult{Tool: name, Found: found, Message: msg})
	}
	return results, allOK
}
