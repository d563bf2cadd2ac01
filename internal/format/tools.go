package format

import "github.com/zenfmt/zenfmt/internal/dispatch"

// Tool describes one external formatter invocation: the executable name
// and the argument template used to format a file in place. stdin
// tools read the file content on stdin and write the formatted result
// to stdout rather than editing the file directly.
//
// Grounded on _examples/original_source/core/command_runner.rs, which
// wraps each of these the same way: one small function per tool.
type Tool struct {
	Name  string
	Args  func(path string) []string
	Stdin bool
}

func inPlace(name string, args ...string) Tool {
	return Tool{Name: name, Args: func(path string) []string { return append(append([]string{}, args...), path) }}
}

func stdio(name string, args ...string) Tool {
	return Tool{Name: name, Args: func(string) []string { return args }, Stdin: true}
}

// Tools maps each language to the formatter that runs over it,
// reproducing _examples/original_source/core/command_runner.rs's
// per-language wrapper functions and
// _examples/original_source/core/processor.rs's run_formatter_for_lang
// dispatch table exactly, including the flags passed to each tool.
var Tools = map[dispatch.Lang]Tool{
	dispatch.Rust:       inPlace("rustfmt"),
	dispatch.C:          inPlace("astyle", "--style=kr", "-n"),
	dispatch.CPP:        inPlace("astyle", "--style=google", "-n"),
	dispatch.Ruby:       inPlace("rubocop", "-A", "--fail-level", "error"),
	dispatch.TOML:       inPlace("taplo", "fmt"),
	dispatch.JSON:       stdio("prettierd", "--stdin-filepath"),
	dispatch.JSONC:      stdio("prettierd", "--stdin-filepath"),
	dispatch.YAML:       stdio("prettierd", "--stdin-filepath"),
	dispatch.CSS:        stdio("prettierd", "--stdin-filepath"),
	dispatch.SCSS:       stdio("prettierd", "--stdin-filepath"),
	dispatch.Less:       stdio("prettierd", "--stdin-filepath"),
	dispatch.Markdown:   stdio("prettierd", "--stdin-filepath"),
	dispatch.JavaScript: stdio("prettierd", "--stdin-filepath"),
	dispatch.TypeScript: stdio("prettierd", "--stdin-filepath"),
	dispatch.Python:     inPlace("black", "-q"),
	dispatch.Go:         inPlace("gofmt", "-w"),
	dispatch.Lua:        inPlace("stylua"),
	dispatch.Shell:      inPlace("shfmt", "-w", "-i", "4", "-ci"),
	dispatch.Fish:       inPlace("fish_indent", "-w"),
	dispatch.Perl:       inPlace("perltidy", "-st"),
	dispatch.Haskell:    inPlace("ormolu", "-m", "inplace"),
	dispatch.Cabal:      inPlace("cabal-fmt", "-i"),
	dispatch.Elm:        inPlace("elm-format", "--yes"),
	dispatch.Crystal:    stdio("crystal", "tool", "format", "-"),
	dispatch.Java:       inPlace("google-java-format", "-i"),
	dispatch.Kotlin:     inPlace("ktlint", "-F"),
	dispatch.Swift:      inPlace("swift-format", "format", "--in-place"),
	dispatch.HTML:       inPlace("tidy", "-m", "-q", "-indent"),
	dispatch.XML:        inPlace("tidy", "-m", "-q", "-indent"),
	dispatch.Nix:        inPlace("nixfmt"),
	dispatch.Twig:       inPlace("djlint", "--reformat"),
	dispatch.Conf:       inPlace("nginxfmt"),
	dispatch.Dockerfile: inPlace("dockfmt", "format", "-w"),
	dispatch.Assembly:   inPlace("asmfmt", "-w"),
}

// ToolFor returns the formatter registered for l, if any.
func ToolFor(l dispatch.Lang) (Tool, bool) {
	t, ok := Tools[l]
	return t, ok
}
