package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCommentsPythonHashComment(t *testing.T) {
	input := "x = 1  # comment\ny = 2"
	ranges, err := FindCommentsPython(input)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, "# comment", input[ranges[0].From:ranges[0].To])
}

func TestFindCommentsPythonTripleQuoteSuppressesHash(t *testing.T) {
	input := "x = '''\n# not a comment\n'''\ny = 2  # real"
	ranges, err := FindCommentsPython(input)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, "# real", input[ranges[0].From:ranges[0].To])
}

func TestFindCommentsPythonOrdinaryStringSuppressesHash(t *testing.T) {
	input := `x = "a # not a comment"`
	ranges, err := FindCommentsPython(input)
	require.NoError(t, err)
	assert.Empty(t, ranges)
}
