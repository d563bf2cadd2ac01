package lang

import (
	"strings"

	"github.com/zenfmt/zenfmt/internal/lexrt"
)

// Lua: -- to end of line is a comment, unless immediately followed by a
// long bracket [[, [=[, [==[, etc., in which case the comment runs to
// the matching long bracket ]] / ]=] / ]==] at the same level. Long
// bracket level-matching has no natural home in the byte-at-a-time state
// machine (it requires remembering a variable-length run of '=' signs
// and then searching for the exact matching closer), so it is resolved
// with direct string scanning, the same way the original handles it.
//
// '...' and "..." short strings suppress comment recognition. [[ ]]
// long strings (not preceded by --) are not recognized: their contents
// are scanned like any other text, so a -- inside one is reported as the
// start of a comment, and a quote inside one opens a short string.
//
// Grounded on _examples/original_source/core/stripper/lua.rs.

type luaKind int

const (
	luaNormal luaKind = iota
	luaFirstDash
	luaLineComment
	luaSingle
	luaSingleEsc
	luaDouble
	luaDoubleEsc
)

type luaAction int

const (
	luaNothing luaAction = iota
	luaPotentialDash
	luaConfirmLine
	luaDismiss
	luaConfirmEnd
)

type luaTrack struct {
	inLine       bool
	start        int
	potential    int
	hasPotential bool
}

func luaTransition(from luaKind, r rune, ok bool) (luaKind, luaAction) {
	if !ok {
		switch from {
		case luaFirstDash:
			return luaNormal, luaDismiss
		case luaLineComment:
			return luaNormal, luaConfirmEnd
		default:
			return luaNormal, luaNothing
		}
	}
	switch from {
	case luaNormal:
		switch r {
		case '-':
			return luaFirstDash, luaPotentialDash
		case '\'':
			return luaSingle, luaNothing
		case '"':
			return luaDouble, luaNothing
		default:
			return luaNormal, luaNothing
		}
	case luaFirstDash:
		switch r {
		case '-':
			return luaLineComment, luaConfirmLine
		case '\'':
			return luaSingle, luaDismiss
		case '"':
			return luaDouble, luaDismiss
		default:
			return luaNormal, luaDismiss
		}
	case luaLineComment:
		if r == '\n' {
			return luaNormal, luaConfirmEnd
		}
		return luaLineComment, luaNothing
	case luaSingle:
		switch r {
		case '\'':
			return luaNormal, luaNothing
		case '\\':
			return luaSingleEsc, luaNothing
		default:
			return luaSingle, luaNothing
		}
	case luaSingleEsc:
		return luaSingle, luaNothing
	case luaDouble:
		switch r {
		case '"':
			return luaNormal, luaNothing
		case '\\':
			return luaDoubleEsc, luaNothing
		default:
			return luaDouble, luaNothing
		}
	case luaDoubleEsc:
		return luaDouble, luaNothing
	default:
		return luaNormal, luaNothing
	}
}

func luaEffect(action luaAction, t luaTrack, pos int, ranges []lexrt.Range) (luaTrack, []lexrt.Range, error) {
	switch action {
	case luaNothing:
	case luaPotentialDash:
		if !t.inLine {
			t.potential = pos
			t.hasPotential = true
		}
	case luaConfirmLine:
		if t.hasPotential {
			t.inLine = true
			t.start = t.potential
			t.hasPotential = false
		}
	case luaDismiss:
		t.hasPotential = false
	case luaConfirmEnd:
		if t.inLine {
			ranges = append(ranges, lexrt.Range{From: t.start, To: pos})
			t = luaTrack{}
		}
	}
	return t, ranges, nil
}

// FindCommentsLua locates Lua comments in input, upgrading a -- line
// comment to a long-bracket comment when a matching opener immediately
// follows the dashes.
func FindCommentsLua(input string) ([]lexrt.Range, error) {
	lineRanges, err := lexrt.Run(input, luaNormal, luaTrack{}, luaTransition, luaEffect)
	if err != nil {
		return nil, err
	}
	out := make([]lexrt.Range, 0, len(lineRanges))
	coveredTo := 0
	for _, r := range lineRanges {
		if r.From < coveredTo {
			continue // spurious match inside an already-extended long-bracket comment
		}
		bodyStart := r.From + 2
		if level, ok := longBracketOpen(input, bodyStart); ok {
			closer := "]" + strings.Repeat("=", level) + "]"
			end := len(input)
			if i := strings.Index(input[bodyStart:], closer); i >= 0 {
				end = bodyStart + i + len(closer)
			}
			out = append(out, lexrt.Range{From: r.From, To: end})
			coveredTo = end
			continue
		}
		out = append(out, r)
		coveredTo = r.To
	}
	return out, nil
}

// longBracketOpen checks for a [=*[ long-bracket opener starting at pos,
// returning its level (the number of '=' signs) if found.
func longBracketOpen(input string, pos int) (level int, ok bool) {
	if pos >= len(input) || input[pos] != '[' {
		return 0, false
	}
	i := pos + 1
	for i < len(input) && input[i] == '=' {
		i++
	}
	if i < len(input) && input[i] == '[' {
		return i - pos - 1, true
	}
	return 0, false
}
