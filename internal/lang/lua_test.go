package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCommentsLuaLineComment(t *testing.T) {
	input := "x = 1 -- comment\ny = 2"
	ranges, err := FindCommentsLua(input)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, "-- comment", input[ranges[0].From:ranges[0].To])
}

func TestFindCommentsLuaLongBracketComment(t *testing.T) {
	input := "x = 1\n--[[ this\nspans lines ]]\ny = 2"
	ranges, err := FindCommentsLua(input)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, "--[[ this\nspans lines ]]", input[ranges[0].From:ranges[0].To])
}

func TestFindCommentsLuaLongBracketLeveled(t *testing.T) {
	input := "--[==[ contains ]] but not the real end ]==] code()"
	ranges, err := FindCommentsLua(input)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, "--[==[ contains ]] but not the real end ]==]", input[ranges[0].From:ranges[0].To])
}
