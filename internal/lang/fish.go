package lang

import "github.com/zenfmt/zenfmt/internal/lexrt"

// Fish shares its comment syntax with POSIX shell: # to end of line,
// with the same string-quoting rules. Like shell, its finder does not
// special-case a leading shebang; the Line Stripper protects it.
//
// Grounded on _examples/original_source/core/stripper/fish.rs, which
// re-exports shell.rs's functions rather than reimplementing them.
func FindCommentsFish(input string) ([]lexrt.Range, error) {
	return FindCommentsShell(input)
}
