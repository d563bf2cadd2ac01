package stripper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenfmt/zenfmt/internal/lexrt"
)

func TestRemoveSingleRange(t *testing.T) {
	input := "abc[def]ghi"
	out, err := Remove(input, []lexrt.Range{{From: 3, To: 8}})
	require.NoError(t, err)
	assert.Equal(t, "abcghi", out)
}

func TestRemoveMultipleRangesBackToFront(t *testing.T) {
	input := "a[1]b[2]c"
	out, err := Remove(input, []lexrt.Range{{From: 1, To: 4}, {From: 5, To: 8}})
	require.NoError(t, err)
	assert.Equal(t, "abc", out)
}

func TestRemoveEmptyRanges(t *testing.T) {
	input := "unchanged"
	out, err := Remove(input, nil)
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestRemoveRejectsOutOfBounds(t *testing.T) {
	_, err := Remove("short", []lexrt.Range{{From: 0, To: 100}})
	assert.Error(t, err)
}

func TestRemoveRejectsOverlap(t *testing.T) {
	_, err := Remove("0123456789", []lexrt.Range{{From: 0, To: 5}, {From: 3, To: 8}})
	assert.Error(t, err)
}

func TestRemoveRejectsInverted(t *testing.T) {
	_, err := Remove("0123456789", []lexrt.Range{{From: 5, To: 2}})
	assert.Error(t, err)
}

// Remove sorts before checking overlap, so ranges arriving out of order
// (but individually valid and non-overlapping once sorted) are accepted
// rather than rejected.
func TestRemoveAcceptsUnsortedInput(t *testing.T) {
	input := "a[1]b[2]c"
	out, err := Remove(input, []lexrt.Range{{From: 5, To: 8}, {From: 1, To: 4}})
	require.NoError(t, err)
	assert.Equal(t, "abc", out)
}

func TestCheckRangesAcceptsUnsortedValidInput(t *testing.T) {
	err := CheckRanges("0123456789", []lexrt.Range{{From: 7, To: 9}, {From: 0, To: 3}})
	assert.NoError(t, err)
}
