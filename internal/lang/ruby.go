package lang

import (
	"sort"
	"strings"

	"github.com/zenfmt/zenfmt/internal/lexrt"
)

// Ruby: # to end of line is a comment. '...' and "..." strings suppress
// comments (with backslash escapes for double-quoted strings; single
// quotes only escape \' and \\). =begin/=end block comments, which must
// each start a line, are handled as a separate line-oriented pre-pass
// since they have no relation to the character-level state machine.
//
// Grounded on _examples/original_source/core/stripper/ruby.rs.

type rbKind int

const (
	rbNormal rbKind = iota
	rbComment
	rbSingle
	rbSingleEsc
	rbDouble
	rbDoubleEsc
)

type rbAction int

const (
	rbNothing rbAction = iota
	rbStart
	rbEnd
)

type rbTrack struct {
	inComment bool
	start     int
}

func rbTransition(from rbKind, r rune, ok bool) (rbKind, rbAction) {
	if !ok {
		if from == rbComment {
			return rbNormal, rbEnd
		}
		return rbNormal, rbNothing
	}
	switch from {
	case rbNormal:
		switch r {
		case '#':
			return rbComment, rbStart
		case '\'':
			return rbSingle, rbNothing
		case '"':
			return rbDouble, rbNothing
		default:
			return rbNormal, rbNothing
		}
	case rbComment:
		if r == '\n' {
			return rbNormal, rbEnd
		}
		return rbComment, rbNothing
	case rbSingle:
		switch r {
		case '\'':
			return rbNormal, rbNothing
		case '\\':
			return rbSingleEsc, rbNothing
		default:
			return rbSingle, rbNothing
		}
	case rbSingleEsc:
		return rbSingle, rbNothing
	case rbDouble:
		switch r {
		case '"':
			return rbNormal, rbNothing
		case '\\':
			return rbDoubleEsc, rbNothing
		default:
			return rbDouble, rbNothing
		}
	case rbDoubleEsc:
		return rbDouble, rbNothing
	default:
		return rbNormal, rbNothing
	}
}

func rbEffect(action rbAction, t rbTrack, pos int, ranges []lexrt.Range) (rbTrack, []lexrt.Range, error) {
	switch action {
	case rbStart:
		t.inComment = true
		t.start = pos
	case rbEnd:
		if t.inComment {
			ranges = append(ranges, lexrt.Range{From: t.start, To: pos})
			t.inComment = false
		}
	}
	return t, ranges, nil
}

// FindCommentsRuby locates Ruby comments in input, merging =begin/=end
// block comments with # line comments found outside of them.
func FindCommentsRuby(input string) ([]lexrt.Range, error) {
	blocks := findBeginEndBlocks(input)
	lineRanges, err := lexrt.Run(input, rbNormal, rbTrack{}, rbTransition, rbEffect)
	if err != nil {
		return nil, err
	}
	merged := make([]lexrt.Range, 0, len(blocks)+len(lineRanges))
	merged = append(merged, blocks...)
	for _, r := range lineRanges {
		if !withinAny(r, blocks) {
			merged = append(merged, r)
		}
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].From < merged[j].From })
	return merged, nil
}

func findBeginEndBlocks(input string) []lexrt.Range {
	var out []lexrt.Range
	pos := 0
outer:
	for pos < len(input) {
		line, nextPos := nextLine(input, pos)
		if line == "=begin" || strings.HasPrefix(line, "=begin ") {
			start := pos
			p := nextPos
			for p < len(input) {
				l, np := nextLine(input, p)
				if l == "=end" || strings.HasPrefix(l, "=end ") {
					out = append(out, lexrt.Range{From: start, To: np})
					pos = np
					continue outer
				}
				p = np
			}
			out = append(out, lexrt.Range{From: start, To: len(input)})
			return out
		}
		pos = nextPos
	}
	return out
}

// nextLine returns the line starting at pos (without its trailing
// newline) and the offset just past that newline, or len(input) if pos
// begins the final, unterminated line.
func nextLine(input string, pos int) (line string, nextPos int) {
	if i := strings.IndexByte(input[pos:], '\n'); i >= 0 {
		return input[pos : pos+i], pos + i + 1
	}
	return input[pos:], len(input)
}

func withinAny(r lexrt.Range, blocks []lexrt.Range) bool {
	for _, b := range blocks {
		if r.From >= b.From && r.To <= b.To {
			return true
		}
	}
	return false
}
