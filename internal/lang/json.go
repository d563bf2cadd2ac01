package lang

import "github.com/zenfmt/zenfmt/internal/lexrt"

// JSON (and jsonc) reuses the C-family lexer: // and /* */ comments, "..."
// strings. JSON has no character-literal syntax, but accepting ' as a
// string delimiter too is harmless since well-formed JSON never contains
// an unescaped bare quote outside a string.
//
// Grounded on _examples/original_source/core/stripper/json.rs, which
// delegates to c_family.rs in the same way.
func FindCommentsJSON(input string) ([]lexrt.Range, error) {
	return FindComments(input)
}
