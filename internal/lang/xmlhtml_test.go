package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCommentsXMLHTMLComment(t *testing.T) {
	input := "<p>before<!-- a note --></p>"
	ranges, err := FindCommentsXMLHTML(input)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, "<!-- a note -->", input[ranges[0].From:ranges[0].To])
}

func TestFindCommentsXMLHTMLDashesInsideComment(t *testing.T) {
	input := "<!-- a --- note -->"
	ranges, err := FindCommentsXMLHTML(input)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, input, input[ranges[0].From:ranges[0].To])
}

func TestFindCommentsXMLHTMLLoneBangIsNotAComment(t *testing.T) {
	input := "<!DOCTYPE html>"
	ranges, err := FindCommentsXMLHTML(input)
	require.NoError(t, err)
	assert.Empty(t, ranges)
}
