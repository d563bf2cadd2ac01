// Package lexrt is the generic lexer runtime shared by every language lexer
// in internal/lang. It drives a language-specific transition function and
// effect function over an input string one rune at a time, the same way
// db47h/lex's StateFn chain drives a lexer one rune at a time, except here
// the driver is a closed generic loop rather than a chain of returned
// continuations: each language only supplies two pure functions, never a
// StateFn implementation of its own.
package lexrt

import "unicode/utf8"

// Range is a half-open byte interval [From, To) into the original input.
type Range struct {
	From int
	To   int
}

// Transition computes the next parse state and the action to take for the
// current rune. ok is false exactly once, on the sentinel step after the
// last rune, with r undefined; transitions must handle that case to flush
// any open construct (an unterminated line comment, for instance).
type Transition[S comparable, A any] func(from S, r rune, ok bool) (S, A)

// Effect applies action to the in-progress tracking state and comment range
// list, returning the updated tracking state and range list. Returning a
// non-nil error aborts Run immediately with that error.
type Effect[A any, T any] func(action A, track T, pos int, ranges []Range) (T, []Range, error)

// Run feeds (byte offset, rune) pairs from input to transition, passes the
// resulting action to effect along with the current byte offset, and
// accumulates the ranges effect returns. After the last real rune it
// performs exactly one more step with ok=false and pos=len(input) so the
// language can close out any comment still open at end of input.
//
// Iteration is over runes (so delimiter matching is correct for multi-byte
// input) but every position handed to transition/effect is a byte offset
// into input, not a rune index.
func Run[S comparable, A any, T any](
	input string,
	start S,
	trackStart T,
	transition Transition[S, A],
	effect Effect[A, T],
) ([]Range, error) {
	var ranges []Range
	state := start
	track := trackStart

	for i := 0; i < len(input); {
		r, size := utf8.DecodeRuneInString(input[i:])
		next, action := transition(state, r, true)
		var err error
		track, ranges, err = effect(action, track, i, ranges)
		if err != nil {
			return nil, err
		}
		state = next
		i += size
	}

	// sentinel step: no character, offset is the total byte length.
	next, action := transition(state, 0, false)
	var err error
	track, ranges, err = effect(action, track, len(input), ranges)
	if err != nil {
		return nil, err
	}
	_ = next

	return ranges, nil
}
