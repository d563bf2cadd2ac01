package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCommentsTwigComment(t *testing.T) {
	input := "<p>{# a note #}</p>"
	ranges, err := FindCommentsTwig(input)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, "{# a note #}", input[ranges[0].From:ranges[0].To])
}

func TestFindCommentsTwigNoComment(t *testing.T) {
	input := "<p>{{ value }}</p>"
	ranges, err := FindCommentsTwig(input)
	require.NoError(t, err)
	assert.Empty(t, ranges)
}

func TestFindCommentsTwigLoneBraceIsNotAComment(t *testing.T) {
	input := "{{ x }}"
	ranges, err := FindCommentsTwig(input)
	require.NoError(t, err)
	assert.Empty(t, ranges)
}
