package lang

import "github.com/zenfmt/zenfmt/internal/lexrt"

// Python: # to end of line is a comment. '...' and "..." strings suppress
// comments, as do their triple-quoted forms '''...''' and """...""",
// which can themselves span newlines. An optional r/R/b/B/f/F prefix
// (and combinations like rb) changes nothing about comment recognition:
// a # still cannot start a comment once any of these string forms has
// opened, so the prefix letters before the quote are just ordinary
// identifier characters to this lexer.
//
// Grounded on _examples/original_source/core/stripper/python.rs.

type pyKind int

const (
	pyNormal pyKind = iota
	pyComment
	pySingle
	pySingleEsc
	pyDouble
	pyDoubleEsc
	pyTripleSingle
	pyTripleSingleQ1
	pyTripleSingleQ2
	pyTripleDouble
	pyTripleDoubleQ1
	pyTripleDoubleQ2
)

type pyAction int

const (
	pyNothing pyAction = iota
	pyStart
	pyEnd
)

type pyTrack struct {
	inComment bool
	start     int
}

func pyTransition(from pyKind, r rune, ok bool) (pyKind, pyAction) {
	if !ok {
		if from == pyComment {
			return pyNormal, pyEnd
		}
		return pyNormal, pyNothing
	}
	switch from {
	case pyNormal:
		switch r {
		case '#':
			return pyComment, pyStart
		case '\'':
			return pySingle, pyNothing
		case '"':
			return pyDouble, pyNothing
		default:
			return pyNormal, pyNothing
		}
	case pyComment:
		if r == '\n' {
			return pyNormal, pyEnd
		}
		return pyComment, pyNothing
	case pySingle:
		switch r {
		case '\'':
			return pyNormal, pyNothing
		case '\\':
			return pySingleEsc, pyNothing
		default:
			return pySingle, pyNothing
		}
	case pySingleEsc:
		return pySingle, pyNothing
	case pyDouble:
		switch r {
		case '"':
			return pyNormal, pyNothing
		case '\\':
			return pyDoubleEsc, pyNothing
		default:
			return pyDouble, pyNothing
		}
	case pyDoubleEsc:
		return pyDouble, pyNothing
	default:
		return pyNormal, pyNothing
	}
}

func pyEffect(action pyAction, t pyTrack, pos int, ranges []lexrt.Range) (pyTrack, []lexrt.Range, error) {
	switch action {
	case pyStart:
		t.inComment = true
		t.start = pos
	case pyEnd:
		if t.inComment {
			ranges = append(ranges, lexrt.Range{From: t.start, To: pos})
			t.inComment = false
		}
	}
	return t, ranges, nil
}

// FindCommentsPython locates Python comments in input. Triple-quoted
// strings are pre-masked before the main scan so a # inside one is never
// mistaken for a comment start; the main scan then runs over the masked
// copy but reports offsets into the original input.
func FindCommentsPython(input string) ([]lexrt.Range, error) {
	masked := maskPythonTripleQuotes(input)
	return lexrt.Run(masked, pyNormal, pyTrack{}, pyTransition, pyEffect)
}

// maskPythonTripleQuotes replaces the bodies of triple-quoted string
// literals with 'x' placeholders of identical byte length, preserving
// newlines so line counting downstream is unaffected. The result has the
// same length as input, so byte offsets computed from it apply unchanged
// to the original.
func maskPythonTripleQuotes(input string) string {
	b := []byte(input)
	n := len(b)
	for i := 0; i < n; i++ {
		if b[i] == '\\' {
			i++
			continue
		}
		if (b[i] == '\'' || b[i] == '"') && i+2 < n && b[i+1] == b[i] && b[i+2] == b[i] {
			q := b[i]
			start := i
			i += 3
			closed := false
			for i+2 < n {
				if b[i] == '\\' {
					i += 2
					continue
				}
				if b[i] == q && b[i+1] == q && b[i+2] == q {
					i += 3
					closed = true
					break
				}
				i++
			}
			if !closed {
				i = n
			}
			for j := start; j < i && j < n; j++ {
				if b[j] != '\n' {
					b[j] = 'x'
				}
			}
			i--
		}
	}
	return string(b)
}
