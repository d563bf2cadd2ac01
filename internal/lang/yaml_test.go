package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCommentsYAMLHashComment(t *testing.T) {
	input := "key: value # trailing\n"
	ranges, err := FindCommentsYAML(input)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, "# trailing", input[ranges[0].From:ranges[0].To])
}

func TestFindCommentsYAMLSingleQuoteSuppressesHash(t *testing.T) {
	input := "key: 'a # b'\n"
	ranges, err := FindCommentsYAML(input)
	require.NoError(t, err)
	assert.Empty(t, ranges)
}

func TestFindCommentsYAMLDoubleQuoteEscapedQuote(t *testing.T) {
	input := `key: "a \" # not a comment"` + "\n"
	ranges, err := FindCommentsYAML(input)
	require.NoError(t, err)
	assert.Empty(t, ranges)
}
