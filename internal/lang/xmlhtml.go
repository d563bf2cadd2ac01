package lang

import "github.com/zenfmt/zenfmt/internal/lexrt"

// XML and HTML share one comment form: <!-- -->. There is no string
// literal to suppress it with, since attribute-quoted text is not
// distinguished from surrounding markup at this lexing level.
//
// Grounded on _examples/original_source/core/stripper/xml_html.rs.

type xmlKind int

const (
	xmlNormal xmlKind = iota
	xmlBang1
	xmlBang2
	xmlOpenDash1
	xmlComment
	xmlCloseDash1
	xmlCloseDash2
)

type xmlAction int

const (
	xmlNothing xmlAction = iota
	xmlPotentialStart
	xmlConfirmStart
	xmlDismiss
	xmlConfirmEnd
)

type xmlTrack struct {
	inComment    bool
	start        int
	potential    int
	hasPotential bool
}

func xmlTransition(from xmlKind, r rune, ok bool) (xmlKind, xmlAction) {
	if !ok {
		switch from {
		case xmlBang1, xmlBang2, xmlOpenDash1:
			return xmlNormal, xmlDismiss
		default:
			return xmlNormal, xmlNothing
		}
	}
	switch from {
	case xmlNormal:
		if r == '<' {
			return xmlBang1, xmlPotentialStart
		}
		return xmlNormal, xmlNothing
	case xmlBang1:
		if r == '!' {
			return xmlBang2, xmlNothing
		}
		return xmlNormal, xmlDismiss
	case xmlBang2:
		if r == '-' {
			return xmlOpenDash1, xmlNothing
		}
		return xmlNormal, xmlDismiss
	case xmlOpenDash1:
		if r == '-' {
			return xmlComment, xmlConfirmStart
		}
		return xmlNormal, xmlDismiss
	case xmlComment:
		if r == '-' {
			return xmlCloseDash1, xmlNothing
		}
		return xmlComment, xmlNothing
	case xmlCloseDash1:
		switch r {
		case '-':
			return xmlCloseDash2, xmlNothing
		default:
			return xmlComment, xmlNothing
		}
	case xmlCloseDash2:
		switch r {
		case '>':
			return xmlNormal, xmlConfirmEnd
		case '-':
			return xmlCloseDash2, xmlNothing
		default:
			return xmlComment, xmlNothing
		}
	default:
		return xmlNormal, xmlNothing
	}
}

func xmlEffect(action xmlAction, t xmlTrack, pos int, ranges []lexrt.Range) (xmlTrack, []lexrt.Range, error) {
	switch action {
	case xmlNothing:
	case xmlPotentialStart:
		if !t.inComment {
			t.potential = pos
			t.hasPotential = true
		}
	case xmlConfirmStart:
		if t.hasPotential {
			t.inComment = true
			t.start = t.potential
			t.hasPotential = false
		}
	case xmlDismiss:
		t.hasPotential = false
	case xmlConfirmEnd:
		if t.inComment {
			ranges = append(ranges, lexrt.Range{From: t.start, To: pos + 1})
			t = xmlTrack{}
		}
	}
	return t, ranges, nil
}

// FindCommentsXMLHTML locates XML/HTML <!-- --> comments in input.
func FindCommentsXMLHTML(input string) ([]lexrt.Range, error) {
	return lexrt.Run(input, xmlNormal, xmlTrack{}, xmlTransition, xmlEffect)
}
