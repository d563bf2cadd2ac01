package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCommentsHaskellLineComment(t *testing.T) {
	input := "x = 1 -- set x\n"
	ranges, err := FindCommentsHaskell(input)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, "-- set x", input[ranges[0].From:ranges[0].To])
}

func TestFindCommentsHaskellNestedBlock(t *testing.T) {
	input := "x = {- outer {- inner -} still outer -} 1"
	ranges, err := FindCommentsHaskell(input)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, "{- outer {- inner -} still outer -}", input[ranges[0].From:ranges[0].To])
}

func TestFindCommentsHaskellUnterminatedLineAtEOF(t *testing.T) {
	input := "x = 1 -- trailing"
	ranges, err := FindCommentsHaskell(input)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, "-- trailing", input[ranges[0].From:ranges[0].To])
}
