package lang

import "github.com/zenfmt/zenfmt/internal/lexrt"

// Crystal: # to end of line is a comment, same quoting rules as Ruby.
// Unlike Ruby, Crystal has no =begin/=end block comment form.
//
// Grounded on _examples/original_source/core/stripper/crystal.rs.
func FindCommentsCrystal(input string) ([]lexrt.Range, error) {
	return lexrt.Run(input, rbNormal, rbTrack{}, rbTransition, rbEffect)
}
