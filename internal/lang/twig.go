package lang

import "github.com/zenfmt/zenfmt/internal/lexrt"

// Twig templates use {# #} for comments; there is no alternate line
// form and no string-literal suppression, since {# can legally appear
// inside the HTML markup that surrounds Twig tags.
//
// Grounded on _examples/original_source/core/stripper/twig.rs.

type twigKind int

const (
	twigNormal twigKind = iota
	twigFirstBrace
	twigComment
	twigCommentHash
)

type twigAction int

const (
	twigNothing twigAction = iota
	twigPotentialStart
	twigConfirmStart
	twigDismiss
	twigConfirmEnd
)

type twigTrack struct {
	inComment    bool
	start        int
	potential    int
	hasPotential bool
}

func twigTransition(from twigKind, r rune, ok bool) (twigKind, twigAction) {
	if !ok {
		switch from {
		case twigFirstBrace:
			return twigNormal, twigDismiss
		default:
			return twigNormal, twigNothing
		}
	}
	switch from {
	case twigNormal:
		if r == '{' {
			return twigFirstBrace, twigPotentialStart
		}
		return twigNormal, twigNothing
	case twigFirstBrace:
		if r == '#' {
			return twigComment, twigConfirmStart
		}
		return twigNormal, twigDismiss
	case twigComment:
		if r == '#' {
			return twigCommentHash, twigNothing
		}
		return twigComment, twigNothing
	case twigCommentHash:
		switch r {
		case '}':
			return twigNormal, twigConfirmEnd
		case '#':
			return twigCommentHash, twigNothing
		default:
			return twigComment, twigNothing
		}
	default:
		return twigNormal, twigNothing
	}
}

func twigEffect(action twigAction, t twigTrack, pos int, ranges []lexrt.Range) (twigTrack, []lexrt.Range, error) {
	switch action {
	case twigNothing:
	case twigPotentialStart:
		if !t.inComment {
			t.potential = pos
			t.hasPotential = true
		}
	case twigConfirmStart:
		if t.hasPotential {
			t.inComment = true
			t.start = t.potential
			t.hasPotential = false
		}
	case twigDismiss:
		t.hasPotential = false
	case twigConfirmEnd:
		if t.inComment {
			ranges = append(ranges, lexrt.Range{From: t.start, To: pos + 1})
			t = twigTrack{}
		}
	}
	return t, ranges, nil
}

// FindCommentsTwig locates Twig {# #} comments in input.
func FindCommentsTwig(input string) ([]lexrt.Range, error) {
	return lexrt.Run(input, twigNormal, twigTrack{}, twigTransition, twigEffect)
}
