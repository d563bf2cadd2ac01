package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCommentsRustLineComment(t *testing.T) {
	input := "let x = 1; // comment\nlet y = 2;"
	ranges, err := FindCommentsRust(input)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, "// comment", input[ranges[0].From:ranges[0].To])
}

func TestFindCommentsRustNestedBlock(t *testing.T) {
	input := "/* outer /* inner */ still outer */ code();"
	ranges, err := FindCommentsRust(input)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, "/* outer /* inner */ still outer */", input[ranges[0].From:ranges[0].To])
}

func TestFindCommentsRustStringSuppressesComment(t *testing.T) {
	input := `let s = "// not a comment";`
	ranges, err := FindCommentsRust(input)
	require.NoError(t, err)
	assert.Empty(t, ranges)
}

func TestFindCommentsRustCharLiteral(t *testing.T) {
	input := `let c = '/'; // real comment`
	ranges, err := FindCommentsRust(input)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, "// real comment", input[ranges[0].From:ranges[0].To])
}
