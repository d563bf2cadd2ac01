package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCommentsNixHashComment(t *testing.T) {
	input := "x = 1; # trailing\n"
	ranges, err := FindCommentsNix(input)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, "# trailing", input[ranges[0].From:ranges[0].To])
}

func TestFindCommentsNixBlockComment(t *testing.T) {
	input := "x = /* note */ 1;"
	ranges, err := FindCommentsNix(input)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, "/* note */", input[ranges[0].From:ranges[0].To])
}

func TestFindCommentsNixIndentedStringSuppressesHash(t *testing.T) {
	input := "x = '' a # b '';"
	ranges, err := FindCommentsNix(input)
	require.NoError(t, err)
	assert.Empty(t, ranges)
}

func TestFindCommentsNixDoubleQuoteSuppressesHash(t *testing.T) {
	input := `x = "a # b";`
	ranges, err := FindCommentsNix(input)
	require.NoError(t, err)
	assert.Empty(t, ranges)
}
