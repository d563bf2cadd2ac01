package lexrt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A toy language: state is "in"/"out" of a comment, action marks
// start/continue/end, tracking state holds the pending range start.
type toyState int

const (
	toyOut toyState = iota
	toyIn
)

type toyAction int

const (
	toyNone toyAction = iota
	toyOpen
	toyClose
)

func toyTransition(from toyState, r rune, ok bool) (toyState, toyAction) {
	if !ok {
		if from == toyIn {
			return toyOut, toyClose
		}
		return toyOut, toyNone
	}
	switch from {
	case toyOut:
		if r == '#' {
			return toyIn, toyOpen
		}
		return toyOut, toyNone
	case toyIn:
		if r == '\n' {
			return toyOut, toyClose
		}
		return toyIn, toyNone
	}
	return toyOut, toyNone
}

func toyEffect(action toyAction, track int, pos int, ranges []Range) (int, []Range, error) {
	switch action {
	case toyOpen:
		return pos, ranges, nil
	case toyClose:
		return 0, append(ranges, Range{From: track, To: pos}), nil
	default:
		return track, ranges, nil
	}
}

func TestRunBasicComment(t *testing.T) {
	ranges, err := Run("a = 1 #hi\nb = 2", toyOut, 0, toyTransition, toyEffect)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, Range{From: 6, To: 9}, ranges[0])
}

func TestRunUnterminatedCommentAtEOF(t *testing.T) {
	ranges, err := Run("x #trailing", toyOut, 0, toyTransition, toyEffect)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, 11, ranges[0].To)
}

func TestRunNoComment(t *testing.T) {
	ranges, err := Run("no comment here", toyOut, 0, toyTransition, toyEffect)
	require.NoError(t, err)
	assert.Empty(t, ranges)
}

func TestRunPropagatesEffectError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Run("#x", toyOut, 0, toyTransition, func(a toyAction, tr int, pos int, r []Range) (int, []Range, error) {
		return tr, r, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestRunMultibyteOffsets(t *testing.T) {
	// "é" is 2 bytes in UTF-8; the comment starts right after it.
	input := "é #c\n"
	ranges, err := Run(input, toyOut, 0, toyTransition, toyEffect)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, 3, ranges[0].From) // byte offset, not rune index
}
