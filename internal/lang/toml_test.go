package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCommentsTOMLHashComment(t *testing.T) {
	input := "key = 1 # trailing\n"
	ranges, err := FindCommentsTOML(input)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, "# trailing", input[ranges[0].From:ranges[0].To])
}

func TestFindCommentsTOMLTripleQuoteSuppressesHash(t *testing.T) {
	input := "key = \"\"\"\na # b\n\"\"\"\n"
	ranges, err := FindCommentsTOML(input)
	require.NoError(t, err)
	assert.Empty(t, ranges)
}

func TestFindCommentsTOMLBasicStringSuppressesHash(t *testing.T) {
	input := `key = "a # b"` + "\n"
	ranges, err := FindCommentsTOML(input)
	require.NoError(t, err)
	assert.Empty(t, ranges)
}
