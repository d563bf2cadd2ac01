package lang

import "github.com/zenfmt/zenfmt/internal/lexrt"

// YAML: # to end of line is a comment, unless it occurs inside a
// single- or double-quoted scalar. Double-quoted scalars support
// backslash escapes; single-quoted scalars escape a literal quote only
// by doubling it ('').
//
// Grounded on _examples/original_source/core/stripper/yaml.rs.

type yamlKind int

const (
	yamlNormal yamlKind = iota
	yamlComment
	yamlSingle
	yamlDouble
	yamlDoubleEsc
)

type yamlAction int

const (
	yamlNothing yamlAction = iota
	yamlStart
	yamlEnd
)

type yamlTrack struct {
	inComment bool
	start     int
}

func yamlTransition(from yamlKind, r rune, ok bool) (yamlKind, yamlAction) {
	if !ok {
		if from == yamlComment {
			return yamlNormal, yamlEnd
		}
		return yamlNormal, yamlNothing
	}
	switch from {
	case yamlNormal:
		switch r {
		case '#':
			return yamlComment, yamlStart
		case '\'':
			return yamlSingle, yamlNothing
		case '"':
			return yamlDouble, yamlNothing
		default:
			return yamlNormal, yamlNothing
		}
	case yamlComment:
		if r == '\n' {
			return yamlNormal, yamlEnd
		}
		return yamlComment, yamlNothing
	case yamlSingle:
		if r == '\'' {
			return yamlNormal, yamlNothing
		}
		return yamlSingle, yamlNothing
	case yamlDouble:
		switch r {
		case '"':
			return yamlNormal, yamlNothing
		case '\\':
			return yamlDoubleEsc, yamlNothing
		default:
			return yamlDouble, yamlNothing
		}
	case yamlDoubleEsc:
		return yamlDouble, yamlNothing
	default:
		return yamlNormal, yamlNothing
	}
}

func yamlEffect(action yamlAction, t yamlTrack, pos int, ranges []lexrt.Range) (yamlTrack, []lexrt.Range, error) {
	switch action {
	case yamlStart:
		t.inComment = true
		t.start = pos
	case yamlEnd:
		if t.inComment {
			ranges = append(ranges, lexrt.Range{From: t.start, To: pos})
			t.inComment = false
		}
	}
	return t, ranges, nil
}

// FindCommentsYAML locates YAML comments in input.
func FindCommentsYAML(input string) ([]lexrt.Range, error) {
	return lexrt.Run(input, yamlNormal, yamlTrack{}, yamlTransition, yamlEffect)
}
