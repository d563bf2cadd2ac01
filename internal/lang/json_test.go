package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCommentsJSONLineComment(t *testing.T) {
	input := "{\n  \"a\": 1 // trailing\n}"
	ranges, err := FindCommentsJSON(input)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, "// trailing", input[ranges[0].From:ranges[0].To])
}

func TestFindCommentsJSONBlockComment(t *testing.T) {
	input := "{ /* note */ \"a\": 1 }"
	ranges, err := FindCommentsJSON(input)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, "/* note */", input[ranges[0].From:ranges[0].To])
}

func TestFindCommentsJSONSlashInStringIsNotAComment(t *testing.T) {
	input := `{"path": "a/b/c"}`
	ranges, err := FindCommentsJSON(input)
	require.NoError(t, err)
	assert.Empty(t, ranges)
}
