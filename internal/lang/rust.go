package lang

import "github.com/zenfmt/zenfmt/internal/lexrt"

// Rust: // line comments, /* */ block comments that nest, "..." strings
// with backslash escapes, '...' char literals. Raw string literals
// (r"...", r#"..."#) are not recognized as a distinct construct: a #
// or " inside one is parsed as ordinary text, which can misclassify a /*
// or // that happens to appear inside a raw string body as a real
// comment. See DESIGN.md, open question (i): the corpus this was
// distilled from carries the same limitation.
//
// Nesting depth for block comments is carried in the parse state itself
// (rather than in the tracking state) because the decision of where to
// go next - stay inside the block comment or fall back to normal code -
// depends on depth, and only the state drives that decision.
//
// Grounded on _examples/original_source/core/stripper/rust.rs.

type rustKind int

const (
	rkNormal rustKind = iota
	rkFirstSlash
	rkLineComment
	rkBlockComment
	rkBlockCommentStar
	rkBlockCommentSlash
	rkStringDouble
	rkStringDoubleEsc
	rkCharLit
	rkCharLitEsc
)

type rustParseState struct {
	kind  rustKind
	depth int
}

type rustAction int

const (
	rNothing rustAction = iota
	rPotentialStart
	rConfirmLineStart
	rConfirmBlockStart
	rDismissPotential
	rConfirmLineEnd
	rBlockNest
	rConfirmBlockEnd
)

type rustTrack struct {
	inLine       bool
	inBlock      bool
	start        int
	potential    int
	hasPotential bool
}

func rustTransition(from rustParseState, r rune, ok bool) (rustParseState, rustAction) {
	normal := rustParseState{kind: rkNormal}
	if !ok {
		switch from.kind {
		case rkFirstSlash:
			return normal, rDismissPotential
		case rkLineComment:
			return normal, rConfirmLineEnd
		default:
			return normal, rNothing
		}
	}
	switch from.kind {
	case rkNormal:
		switch r {
		case '/':
			return rustParseState{kind: rkFirstSlash}, rPotentialStart
		case '"':
			return rustParseState{kind: rkStringDouble}, rNothing
		case '\'':
			return rustParseState{kind: rkCharLit}, rNothing
		default:
			return normal, rNothing
		}
	case rkFirstSlash:
		switch r {
		case '/':
			return rustParseState{kind: rkLineComment}, rConfirmLineStart
		case '*':
			return rustParseState{kind: rkBlockComment, depth: 1}, rConfirmBlockStart
		case '"':
			return rustParseState{kind: rkStringDouble}, rDismissPotential
		case '\'':
			return rustParseState{kind: rkCharLit}, rDismissPotential
		default:
			return normal, rDismissPotential
		}
	case rkLineComment:
		if r == '\n' {
			return normal, rConfirmLineEnd
		}
		return from, rNothing
	case rkBlockComment:
		switch r {
		case '*':
			return rustParseState{kind: rkBlockCommentStar, depth: from.depth}, rNothing
		case '/':
			return rustParseState{kind: rkBlockCommentSlash, depth: from.depth}, rNothing
		default:
			return from, rNothing
		}
	case rkBlockCommentStar:
		switch r {
		case '/':
			d := from.depth - 1
			if d == 0 {
				return normal, rConfirmBlockEnd
			}
			return rustParseState{kind: rkBlockComment, depth: d}, rBlockNest
		case '*':
			return from, rNothing
		default:
			return rustParseState{kind: rkBlockComment, depth: from.depth}, rNothing
		}
	case rkBlockCommentSlash:
		switch r {
		case '*':
			return rustParseState{kind: rkBlockComment, depth: from.depth + 1}, rBlockNest
		case '/':
			return from, rNothing
		default:
			return rustParseState{kind: rkBlockComment, depth: from.depth}, rNothing
		}
	case rkStringDouble:
		switch r {
		case '"':
			return normal, rNothing
		case '\\':
			return rustParseState{kind: rkStringDoubleEsc}, rNothing
		default:
			return from, rNothing
		}
	case rkStringDoubleEsc:
		return rustParseState{kind: rkStringDouble}, rNothing
	case rkCharLit:
		switch r {
		case '\'':
			return normal, rNothing
		case '\\':
			return rustParseState{kind: rkCharLitEsc}, rNothing
		default:
			return from, rNothing
		}
	case rkCharLitEsc:
		return rustParseState{kind: rkCharLit}, rNothing
	default:
		return normal, rNothing
	}
}

func rustEffect(action rustAction, t rustTrack, pos int, ranges []lexrt.Range) (rustTrack, []lexrt.Range, error) {
	switch action {
	case rNothing, rBlockNest:
	case rPotentialStart:
		if !t.inLine && !t.inBlock {
			t.potential = pos
			t.hasPotential = true
		}
	case rConfirmLineStart:
		if t.hasPotential {
			t.inLine = true
			t.start = t.potential
			t.hasPotential = false
		}
	case rConfirmBlockStart:
		if t.hasPotential {
			t.inBlock = true
			t.start = t.potential
			t.hasPotential = false
		}
	case rDismissPotential:
		t.hasPotential = false
	case rConfirmLineEnd:
		if t.inLine {
			ranges = append(ranges, lexrt.Range{From: t.start, To: pos})
			t = rustTrack{}
		}
	case rConfirmBlockEnd:
		if t.inBlock {
			ranges = append(ranges, lexrt.Range{From: t.start, To: pos + 1})
			t = rustTrack{}
		}
	}
	return t, ranges, nil
}

// FindCommentsRust locates Rust comments in input, including nested block
// comments.
func FindCommentsRust(input string) ([]lexrt.Range, error) {
	return lexrt.Run(input, rustParseState{kind: rkNormal}, rustTrack{}, rustTransition, rustEffect)
}
