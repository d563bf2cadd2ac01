package lang

import "github.com/zenfmt/zenfmt/internal/lexrt"

// Shell (bash/zsh/sh): # to end of line is a comment. '...'
// single-quoted strings suppress comment recognition entirely; "..."
// double-quoted strings do too, with backslash escapes.
//
// A leading shebang line is a comment by this finder's own rules like
// any other; it survives comment stripping because internal/stripper's
// Line Stripper protects any "#!"-prefixed line generically, for every
// language, not just shell.
//
// Grounded on _examples/original_source/core/stripper/shell.rs.

type shKind int

const (
	shNormal shKind = iota
	shComment
	shSingleQuote
	shDoubleQuote
	shDoubleQuoteEsc
)

type shAction int

const (
	shNothing shAction = iota
	shStart
	shEnd
)

type shTrack struct {
	inComment bool
	start     int
	line      int
}

func shTransition(from shKind, r rune, ok bool) (shKind, shAction) {
	if !ok {
		if from == shComment {
			return shNormal, shEnd
		}
		return shNormal, shNothing
	}
	switch from {
	case shNormal:
		switch r {
		case '#':
			return shComment, shStart
		case '\'':
			return shSingleQuote, shNothing
		case '"':
			return shDoubleQuote, shNothing
		default:
			return shNormal, shNothing
		}
	case shComment:
		if r == '\n' {
			return shNormal, shEnd
		}
		return shComment, shNothing
	case shSingleQuote:
		if r == '\'' {
			return shNormal, shNothing
		}
		return shSingleQuote, shNothing
	case shDoubleQuote:
		switch r {
		case '"':
			return shNormal, shNothing
		case '\\':
			return shDoubleQuoteEsc, shNothing
		default:
			return shDoubleQuote, shNothing
		}
	case shDoubleQuoteEsc:
		return shDoubleQuote, shNothing
	default:
		return shNormal, shNothing
	}
}

func shEffect(action shAction, t shTrack, pos int, ranges []lexrt.Range) (shTrack, []lexrt.Range, error) {
	switch action {
	case shStart:
		t.inComment = true
		t.start = pos
	case shEnd:
		if t.inComment {
			ranges = append(ranges, lexrt.Range{From: t.start, To: pos})
			t.inComment = false
		}
	}
	return t, ranges, nil
}

// FindCommentsShell locates shell comments in input, including a leading
// shebang line: it is reported as an ordinary full-line comment match
// here, the same as any other language's finder would. Preserving it is
// the Line Stripper's job, not this finder's.
func FindCommentsShell(input string) ([]lexrt.Range, error) {
	return lexrt.Run(input, shNormal, shTrack{}, shTransition, shEffect)
}
