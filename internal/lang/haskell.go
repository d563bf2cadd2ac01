package lang

import "github.com/zenfmt/zenfmt/internal/lexrt"

// Haskell and Elm share a comment syntax: -- to end of line, and {- -}
// block comments that nest. Depth is carried in the parse state itself,
// the same technique used for Rust's nested block comments.
//
// Grounded on _examples/original_source/core/stripper/haskell_elm.rs.

type hsKind int

const (
	hsNormal hsKind = iota
	hsFirstDash
	hsLineComment
	hsFirstBrace
	hsBlockComment
	hsBlockCommentDash
	hsBlockCommentBrace
)

type hsParseState struct {
	kind  hsKind
	depth int
}

type hsAction int

const (
	hsNothing hsAction = iota
	hsPotentialDash
	hsConfirmLine
	hsPotentialBrace
	hsConfirmBlockStart
	hsDismiss
	hsConfirmLineEnd
	hsBlockNest
	hsConfirmBlockEnd
)

type hsTrack struct {
	inLine       bool
	inBlock      bool
	start        int
	potential    int
	hasPotential bool
}

func hsTransition(from hsParseState, r rune, ok bool) (hsParseState, hsAction) {
	normal := hsParseState{kind: hsNormal}
	if !ok {
		switch from.kind {
		case hsFirstDash, hsFirstBrace:
			return normal, hsDismiss
		case hsLineComment:
			return normal, hsConfirmLineEnd
		default:
			return normal, hsNothing
		}
	}
	switch from.kind {
	case hsNormal:
		switch r {
		case '-':
			return hsParseState{kind: hsFirstDash}, hsPotentialDash
		case '{':
			return hsParseState{kind: hsFirstBrace}, hsPotentialBrace
		default:
			return normal, hsNothing
		}
	case hsFirstDash:
		if r == '-' {
			return hsParseState{kind: hsLineComment}, hsConfirmLine
		}
		return normal, hsDismiss
	case hsLineComment:
		if r == '\n' {
			return normal, hsConfirmLineEnd
		}
		return from, hsNothing
	case hsFirstBrace:
		if r == '-' {
			return hsParseState{kind: hsBlockComment, depth: 1}, hsConfirmBlockStart
		}
		return normal, hsDismiss
	case hsBlockComment:
		switch r {
		case '-':
			return hsParseState{kind: hsBlockCommentDash, depth: from.depth}, hsNothing
		case '{':
			return hsParseState{kind: hsBlockCommentBrace, depth: from.depth}, hsNothing
		default:
			return from, hsNothing
		}
	case hsBlockCommentDash:
		switch r {
		case '}':
			d := from.depth - 1
			if d == 0 {
				return normal, hsConfirmBlockEnd
			}
			return hsParseState{kind: hsBlockComment, depth: d}, hsBlockNest
		case '-':
			return from, hsNothing
		default:
			return hsParseState{kind: hsBlockComment, depth: from.depth}, hsNothing
		}
	case hsBlockCommentBrace:
		switch r {
		case '-':
			return hsParseState{kind: hsBlockComment, depth: from.depth + 1}, hsBlockNest
		case '{':
			return from, hsNothing
		default:
			return hsParseState{kind: hsBlockComment, depth: from.depth}, hsNothing
		}
	default:
		return normal, hsNothing
	}
}

func hsEffect(action hsAction, t hsTrack, pos int, ranges []lexrt.Range) (hsTrack, []lexrt.Range, error) {
	switch action {
	case hsNothing, hsBlockNest:
	case hsPotentialDash, hsPotentialBrace:
		if !t.inLine && !t.inBlock {
			t.potential = pos
			t.hasPotential = true
		}
	case hsConfirmLine:
		if t.hasPotential {
			t.inLine = true
			t.start = t.potential
			t.hasPotential = false
		}
	case hsConfirmBlockStart:
		if t.hasPotential {
			t.inBlock = true
			t.start = t.potential
			t.hasPotential = false
		}
	case hsDismiss:
		t.hasPotential = false
	case hsConfirmLineEnd:
		if t.inLine {
			ranges = append(ranges, lexrt.Range{From: t.start, To: pos})
			t = hsTrack{}
		}
	case hsConfirmBlockEnd:
		if t.inBlock {
			ranges = append(ranges, lexrt.Range{From: t.start, To: pos + 1})
			t = hsTrack{}
		}
	}
	return t, ranges, nil
}

// FindCommentsHaskell locates Haskell- and Elm-style comments in input.
func FindCommentsHaskell(input string) ([]lexrt.Range, error) {
	return lexrt.Run(input, hsParseState{kind: hsNormal}, hsTrack{}, hsTransition, hsEffect)
}
