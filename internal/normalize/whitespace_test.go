package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimTrailingWhitespace(t *testing.T) {
	input := "a   \nb\t\t\nc\n"
	assert.Equal(t, "a\nb\nc\n", TrimTrailingWhitespace(input))
}

func TestTrimTrailingWhitespacePreservesNewlineCount(t *testing.T) {
	input := "a\n\n\nb"
	out := TrimTrailingWhitespace(input)
	assert.Equal(t, 3, countRune(out, '\n'))
}

func TestCollapseBlankLinesDefault(t *testing.T) {
	input := "a\n\n\n\nb\nc\n\n\nd"
	assert.Equal(t, "a\n\nb\nc\n\nd", CollapseBlankLines(input, 1))
}

func TestCollapseBlankLinesHigherLimit(t *testing.T) {
	input := "a\n\n\n\nb"
	assert.Equal(t, "a\n\n\nb", CollapseBlankLines(input, 2))
}

func TestCollapseBlankLinesNoBlankRuns(t *testing.T) {
	input := "a\nb\nc"
	assert.Equal(t, input, CollapseBlankLines(input, 1))
}

func countRune(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}
