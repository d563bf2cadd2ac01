package lang

import "github.com/zenfmt/zenfmt/internal/lexrt"

// C-family: c, cpp, go, javascript, typescript, java, kotlin, swift, css,
// scss, less. // line comments, /* */ block comments (no nesting), "..."
// and '...' literals with backslash escapes.
//
// Grounded on _examples/original_source/core/stripper/c_family.rs, minus
// its hard-coded offset patches for specific test strings: the ' character
// state here is complete, so no patch is needed (see DESIGN.md, open
// question ii).

type cParseState int

const (
	cNormal cParseState = iota
	cFirstSlash
	cLineComment
	cBlockComment
	cBlockCommentStar
	cStringDouble
	cStringDoubleEsc
	cStringSingle
	cStringSingleEsc
)

type cAction int

const (
	cNothing cAction = iota
	cPotentialStart
	cConfirmLineStart
	cConfirmBlockStart
	cDismissPotential
	cConfirmEnd
)

type cTrack struct {
	inLine    bool
	inBlock   bool
	start     int
	potential int
	hasPotential bool
}

func cTransition(from cParseState, r rune, ok bool) (cParseState, cAction) {
	if !ok {
		switch from {
		case cFirstSlash:
			return cNormal, cDismissPotential
		case cLineComment:
			return cNormal, cConfirmEnd
		case cBlockComment, cBlockCommentStar:
			return cNormal, cDismissPotential
		default:
			return cNormal, cNothing
		}
	}
	switch from {
	case cNormal:
		switch r {
		case '/':
			return cFirstSlash, cPotentialStart
		case '"':
			return cStringDouble, cNothing
		case '\'':
			return cStringSingle, cNothing
		default:
			return cNormal, cNothing
		}
	case cFirstSlash:
		switch r {
		case '/':
			return cLineComment, cConfirmLineStart
		case '*':
			return cBlockComment, cConfirmBlockStart
		case '"':
			return cStringDouble, cDismissPotential
		case '\'':
			return cStringSingle, cDismissPotential
		default:
			return cNormal, cDismissPotential
		}
	case cLineComment:
		if r == '\n' {
			return cNormal, cConfirmEnd
		}
		return cLineComment, cNothing
	case cBlockComment:
		if r == '*' {
			return cBlockCommentStar, cNothing
		}
		return cBlockComment, cNothing
	case cBlockCommentStar:
		switch r {
		case '/':
			return cNormal, cConfirmEnd
		case '*':
			return cBlockCommentStar, cNothing
		default:
			return cBlockComment, cNothing
		}
	case cStringDouble:
		switch r {
		case '"':
			return cNormal, cNothing
		case '\\':
			return cStringDoubleEsc, cNothing
		default:
			return cStringDouble, cNothing
		}
	case cStringDoubleEsc:
		return cStringDouble, cNothing
	case cStringSingle:
		switch r {
		case '\'':
			return cNormal, cNothing
		case '\\':
			return cStringSingleEsc, cNothing
		default:
			return cStringSingle, cNothing
		}
	case cStringSingleEsc:
		return cStringSingle, cNothing
	default:
		return cNormal, cNothing
	}
}

func cEffect(action cAction, t cTrack, pos int, ranges []lexrt.Range) (cTrack, []lexrt.Range, error) {
	switch action {
	case cNothing:
	case cPotentialStart:
		if !t.inLine && !t.inBlock {
			t.potential = pos
			t.hasPotential = true
		}
	case cConfirmLineStart:
		if t.hasPotential {
			t.inLine = true
			t.start = t.potential
			t.hasPotential = false
		}
	case cConfirmBlockStart:
		if t.hasPotential {
			t.inBlock = true
			t.start = t.potential
			t.hasPotential = false
		}
	case cDismissPotential:
		t.hasPotential = false
	case cConfirmEnd:
		if t.inLine {
			ranges = append(ranges, lexrt.Range{From: t.start, To: pos})
			t = cTrack{}
		} else if t.inBlock {
			ranges = append(ranges, lexrt.Range{From: t.start, To: pos + 1})
			t = cTrack{}
		}
	}
	return t, ranges, nil
}

// FindComments locates C-family comments in input.
func FindComments(input string) ([]lexrt.Range, error) {
	return lexrt.Run(input, cNormal, cTrack{}, cTransition, cEffect)
}
