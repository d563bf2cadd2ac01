// Package dispatch maps a file path to a language tag and capability
// set, and drives the per-mode processing pipeline over a single file's
// content.
package dispatch

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"

	"github.com/zenfmt/zenfmt/internal/lang"
	"github.com/zenfmt/zenfmt/internal/langtag"
	"github.com/zenfmt/zenfmt/internal/lexrt"
	"github.com/zenfmt/zenfmt/internal/stripper"
)

// Lang is a language tag, matching the strings the original dispatcher
// in _examples/original_source/core/processor.rs used: "rust", "c",
// "cpp", "ruby", "toml", "json", "yaml", "python", "go", "lua", "shell",
// "fish", "perl", "haskell", "cabal", "elm", "crystal", "java",
// "kotlin", "swift", "markdown", "html", "xml", "css", "scss", "less",
// "nix", "twig", "conf", "assembly", "dockerfile", "javascript",
// "typescript", "jsonc".
//
// Lang is an alias of langtag.Lang rather than a new named type, so
// that it is identical to the type internal/stripper's Line Stripper
// accepts; internal/stripper cannot import this package back since
// this package already imports internal/stripper.
type Lang = langtag.Lang

const (
	Rust       Lang = "rust"
	C          Lang = "c"
	CPP        Lang = "cpp"
	Ruby       Lang = "ruby"
	TOML       Lang = "toml"
	JSON       Lang = "json"
	JSONC      Lang = "jsonc"
	YAML       Lang = "yaml"
	Python     Lang = "python"
	Go         Lang = "go"
	Lua        Lang = "lua"
	Shell      Lang = "shell"
	Fish       Lang = "fish"
	Perl       Lang = "perl"
	Haskell    Lang = "haskell"
	Cabal      Lang = "cabal"
	Elm        Lang = "elm"
	Crystal    Lang = "crystal"
	Java       Lang = "java"
	Kotlin     Lang = "kotlin"
	Swift      Lang = "swift"
	Markdown   Lang = "markdown"
	HTML       Lang = "html"
	XML        Lang = "xml"
	CSS        Lang = "css"
	SCSS       Lang = "scss"
	Less       Lang = "less"
	Nix        Lang = "nix"
	Twig       Lang = "twig"
	Conf       Lang = "conf"
	Assembly   Lang = "assembly"
	Dockerfile Lang = "dockerfile"
	JavaScript Lang = "javascript"
	TypeScript Lang = "typescript"
)

var specialFilenames = map[string]Lang{
	"Rakefile":   Ruby,
	"Gemfile":    Ruby,
	"Dockerfile": Dockerfile,
}

var extensionLangs = map[string]Lang{
	"rs":        Rust,
	"c":         C,
	"h":         C,
	"cpp":       CPP,
	"cxx":       CPP,
	"cc":        CPP,
	"hpp":       CPP,
	"rb":        Ruby,
	"rake":      Ruby,
	"toml":      TOML,
	"json":      JSON,
	"jsonc":     JSONC,
	"yaml":      YAML,
	"yml":       YAML,
	"py":        Python,
	"go":        Go,
	"lua":       Lua,
	"sh":        Shell,
	"bash":      Shell,
	"fish":      Fish,
	"pl":        Perl,
	"pm":        Perl,
	"hs":        Haskell,
	"lhs":       Haskell,
	"cabal":     Cabal,
	"elm":       Elm,
	"cr":        Crystal,
	"java":      Java,
	"kt":        Kotlin,
	"kts":       Kotlin,
	"swift":     Swift,
	"md":        Markdown,
	"markdown":  Markdown,
	"html":      HTML,
	"htm":       HTML,
	"xml":       XML,
	"xhtml":     XML,
	"css":       CSS,
	"scss":      SCSS,
	"less":      Less,
	"nix":       Nix,
	"twig":      Twig,
	"conf":      Conf,
	"asm":       Assembly,
	"s":         Assembly,
	"js":        JavaScript,
	"jsx":       JavaScript,
	"ts":        TypeScript,
	"tsx":       TypeScript,
}

var extCaser = cases.Fold()

// LanguageFor returns the language tag for path, by special filename
// first and then by case-folded extension, exactly as
// _examples/original_source/core/processor.rs's get_language_from_path
// does. ok is false when no rule matches (the dispatcher's Non-goal:
// files of unrecognized type are left untouched).
func LanguageFor(path string) (l Lang, ok bool) {
	base := filepath.Base(path)
	if l, ok := specialFilenames[base]; ok {
		return l, true
	}
	ext := filepath.Ext(base)
	if ext == "" {
		return "", false
	}
	ext = extCaser.String(strings.TrimPrefix(ext, "."))
	l, ok = extensionLangs[ext]
	return l, ok
}

var cannotFormat = map[Lang]bool{
	Assembly: true, Cabal: true, Conf: true,
}

var cannotStrip = map[Lang]bool{
	Assembly: true, Cabal: true,
}

// CanFormat reports whether l is eligible for formatting. Eligibility
// is a capability decision independent of whether Tools actually lists
// a formatter for l; a handful of languages (assembly, cabal, conf) are
// excluded outright because formatting them is out of scope.
func CanFormat(l Lang) bool { return !cannotFormat[l] }

// CanStrip reports whether l is eligible for comment stripping. Like
// CanFormat, this is independent of whether finders actually has an
// entry for l: a language with no registered lexer simply strips
// nothing (FindComments returns no ranges), which is harmless.
func CanStrip(l Lang) bool { return !cannotStrip[l] }

// finders maps a language to the lexer that locates its comment ranges.
// Perl, dockerfile and conf share the shell lexer. Languages absent from
// this table (markdown, cabal, assembly) have no lexer: FindComments
// reports no ranges for them, so stripping leaves them unchanged.
var finders = map[Lang]stripper.Finder{
	C:          lang.FindComments,
	CPP:        lang.FindComments,
	Go:         lang.FindComments,
	Java:       lang.FindComments,
	Kotlin:     lang.FindComments,
	Swift:      lang.FindComments,
	CSS:        lang.FindComments,
	SCSS:       lang.FindComments,
	Less:       lang.FindComments,
	JavaScript: lang.FindComments,
	TypeScript: lang.FindComments,
	JSON:       lang.FindCommentsJSON,
	JSONC:      lang.FindCommentsJSON,
	Rust:       lang.FindCommentsRust,
	Shell:      lang.FindCommentsShell,
	Perl:       lang.FindCommentsShell,
	Dockerfile: lang.FindCommentsShell,
	Conf:       lang.FindCommentsShell,
	Fish:       lang.FindCommentsFish,
	Python:     lang.FindCommentsPython,
	Ruby:       lang.FindCommentsRuby,
	Crystal:    lang.FindCommentsCrystal,
	YAML:       lang.FindCommentsYAML,
	TOML:       lang.FindCommentsTOML,
	Lua:        lang.FindCommentsLua,
	Haskell:    lang.FindCommentsHaskell,
	Elm:        lang.FindCommentsHaskell,
	Nix:        lang.FindCommentsNix,
	Twig:       lang.FindCommentsTwig,
	HTML:       lang.FindCommentsXMLHTML,
	XML:        lang.FindCommentsXMLHTML,
}

// FinderFor returns the comment lexer registered for l, if any.
func FinderFor(l Lang) (stripper.Finder, bool) {
	f, ok := finders[l]
	return f, ok
}

// FindComments is a convenience wrapper combining FinderFor and a call,
// returning an empty, non-nil range slice for languages with no lexer.
func FindComments(l Lang, input string) ([]lexrt.Range, error) {
	f, ok := FinderFor(l)
	if !ok {
		return []lexrt.Range{}, nil
	}
	return f(input)
}
