package lang

import "github.com/zenfmt/zenfmt/internal/lexrt"

// TOML: # to end of line is a comment, suppressed inside basic ("...")
// and literal ('...') strings, including their triple-quoted multi-line
// forms ("""...""" and '''...'''). Triple-quoted bodies are masked
// before scanning, the same approach used for Python.
//
// Grounded on _examples/original_source/core/stripper/toml.rs.
func FindCommentsTOML(input string) ([]lexrt.Range, error) {
	masked := maskPythonTripleQuotes(input)
	return lexrt.Run(masked, yamlNormal, yamlTrack{}, yamlTransition, yamlEffect)
}
