package lang

import "github.com/zenfmt/zenfmt/internal/lexrt"

// Nix: # to end of line and /* */ (non-nesting) are both comment forms.
// "..." strings and ''...'' indented strings suppress comment
// recognition; indented strings can themselves contain ${...}
// interpolations, which this lexer does not special-case, matching the
// original's treatment of them as plain string body.
//
// Grounded on _examples/original_source/core/stripper/nix.rs.

type nixKind int

const (
	nixNormal nixKind = iota
	nixHash
	nixFirstSlash
	nixBlockComment
	nixBlockCommentStar
	nixDouble
	nixDoubleEsc
	nixIndented
	nixIndentedOpenQuote
	nixIndentedCloseQuote
)

type nixAction int

const (
	nixNothing nixAction = iota
	nixStartHash
	nixEndHash
	nixPotentialBlock
	nixConfirmBlockStart
	nixDismiss
	nixConfirmBlockEnd
)

type nixTrack struct {
	inHash       bool
	inBlock      bool
	start        int
	potential    int
	hasPotential bool
}

func nixTransition(from nixKind, r rune, ok bool) (nixKind, nixAction) {
	if !ok {
		switch from {
		case nixHash:
			return nixNormal, nixEndHash
		case nixFirstSlash:
			return nixNormal, nixDismiss
		default:
			return nixNormal, nixNothing
		}
	}
	switch from {
	case nixNormal:
		switch r {
		case '#':
			return nixHash, nixStartHash
		case '/':
			return nixFirstSlash, nixPotentialBlock
		case '"':
			return nixDouble, nixNothing
		case '\'':
			return nixIndentedOpenQuote, nixNothing
		default:
			return nixNormal, nixNothing
		}
	case nixHash:
		if r == '\n' {
			return nixNormal, nixEndHash
		}
		return nixHash, nixNothing
	case nixFirstSlash:
		if r == '*' {
			return nixBlockComment, nixConfirmBlockStart
		}
		return nixNormal, nixDismiss
	case nixBlockComment:
		if r == '*' {
			return nixBlockCommentStar, nixNothing
		}
		return nixBlockComment, nixNothing
	case nixBlockCommentStar:
		switch r {
		case '/':
			return nixNormal, nixConfirmBlockEnd
		case '*':
			return nixBlockCommentStar, nixNothing
		default:
			return nixBlockComment, nixNothing
		}
	case nixDouble:
		switch r {
		case '"':
			return nixNormal, nixNothing
		case '\\':
			return nixDoubleEsc, nixNothing
		default:
			return nixDouble, nixNothing
		}
	case nixDoubleEsc:
		return nixDouble, nixNothing
	case nixIndentedOpenQuote:
		if r == '\'' {
			return nixIndented, nixNothing
		}
		return nixNormal, nixNothing
	case nixIndented:
		if r == '\'' {
			return nixIndentedCloseQuote, nixNothing
		}
		return nixIndented, nixNothing
	case nixIndentedCloseQuote:
		if r == '\'' {
			return nixNormal, nixNothing
		}
		return nixIndented, nixNothing
	default:
		return nixNormal, nixNothing
	}
}

func nixEffect(action nixAction, t nixTrack, pos int, ranges []lexrt.Range) (nixTrack, []lexrt.Range, error) {
	switch action {
	case nixNothing:
	case nixStartHash:
		t.inHash = true
		t.start = pos
	case nixEndHash:
		if t.inHash {
			ranges = append(ranges, lexrt.Range{From: t.start, To: pos})
			t.inHash = false
		}
	case nixPotentialBlock:
		t.potential = pos
		t.hasPotential = true
	case nixConfirmBlockStart:
		if t.hasPotential {
			t.inBlock = true
			t.start = t.potential
			t.hasPotential = false
		}
	case nixDismiss:
		t.hasPotential = false
	case nixConfirmBlockEnd:
		if t.inBlock {
			ranges = append(ranges, lexrt.Range{From: t.start, To: pos + 1})
			t.inBlock = false
		}
	}
	return t, ranges, nil
}

// FindCommentsNix locates Nix comments in input.
func FindCommentsNix(input string) ([]lexrt.Range, error) {
	return lexrt.Run(input, nixNormal, nixTrack{}, nixTransition, nixEffect)
}
