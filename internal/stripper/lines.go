package stripper

import (
	"strings"

	"github.com/juju/errors"
	"github.com/zenfmt/zenfmt/internal/langtag"
	"github.com/zenfmt/zenfmt/internal/lexrt"
)

// Finder locates comment ranges for one language; each internal/lang
// FindComments* function satisfies this signature.
type Finder func(input string) ([]lexrt.Range, error)

// frozenStringLiteralMagicComment is the exact line Ruby scripts use to
// opt a file into frozen string literals. Unlike an ordinary comment it
// changes runtime behavior, so it must survive comment-only-line
// stripping byte-identical.
const frozenStringLiteralMagicComment = "# frozen_string_literal: true"

// StripLines removes every comment from input, in two passes: first it
// drops whole lines that are comments once surrounding whitespace is
// trimmed (blank lines around a removed comment block are kept), then
// it re-lexes what
// remains to strip trailing inline comments off the code lines that
// survived the first pass.
//
// Two kinds of line are kept verbatim regardless of comment-range
// coverage, in both passes: any line whose trimmed content starts with
// "#!" (a shebang, for every language, not just shell and fish), and,
// for Ruby specifically, the exact frozen_string_literal magic comment.
//
// Grounded on _examples/original_source/core/processor.rs's
// strip_comments_smart.
func StripLines(input string, lang langtag.Lang, find Finder) (string, error) {
	ranges, err := find(input)
	if err != nil {
		return "", errors.Trace(err)
	}
	if err := CheckRanges(input, ranges); err != nil {
		return "", errors.Trace(err)
	}

	reduced, protected := dropCommentOnlyLines(input, ranges, lang)

	ranges2, err := find(reduced)
	if err != nil {
		return "", errors.Trace(err)
	}
	if err := CheckRanges(reduced, ranges2); err != nil {
		return "", errors.Trace(err)
	}
	return Remove(reduced, excludeProtected(ranges2, protected))
}

// dropCommentOnlyLines removes every line whose non-whitespace content
// is entirely covered by a single comment range, newline included,
// except for lines protected by isProtectedLine. It returns the
// filtered text along with the byte ranges, within that filtered text,
// that the protected lines occupy, so a second re-lex over the
// filtered text doesn't strip them as ordinary trailing comments.
func dropCommentOnlyLines(input string, ranges []lexrt.Range, lang langtag.Lang) (string, []lexrt.Range) {
	var b strings.Builder
	b.Grow(len(input))

	var protected []lexrt.Range

	pos := 0
	ri := 0
	for pos < len(input) {
		lineEnd := strings.IndexByte(input[pos:], '\n')
		var line string
		var next int
		hasNL := lineEnd >= 0
		if hasNL {
			line = input[pos : pos+lineEnd]
			next = pos + lineEnd + 1
		} else {
			line = input[pos:]
			next = len(input)
		}

		trimmedStart := pos + leadingWhitespace(line)
		contentEnd := trimmedStart + len(strings.TrimRight(input[trimmedStart:pos+len(line)], " \t\r"))

		for ri < len(ranges) && ranges[ri].To <= trimmedStart {
			ri++
		}

		isProtected := isProtectedLine(input[trimmedStart:contentEnd], lang)
		keep := isProtected
		if !keep {
			commentOnly := trimmedStart == contentEnd // blank line is not comment-only, falls through below
			if trimmedStart < contentEnd && ri < len(ranges) {
				r := ranges[ri]
				if r.From <= trimmedStart && r.To >= contentEnd {
					commentOnly = true
				}
			} else {
				commentOnly = false
			}
			keep = !commentOnly
		}

		if keep {
			lineStart := b.Len()
			b.WriteString(line)
			if isProtected {
				protected = append(protected, lexrt.Range{From: lineStart, To: b.Len()})
			}
			if hasNL {
				b.WriteByte('\n')
			}
		}
		pos = next
	}
	return b.String(), protected
}

// isProtectedLine reports whether trimmed (a line's content with
// leading and trailing whitespace already stripped off) must survive comment
// stripping untouched: a shebang line in any language, or Ruby's exact
// frozen_string_literal magic comment.
func isProtectedLine(trimmed string, lang langtag.Lang) bool {
	if strings.HasPrefix(trimmed, "#!") {
		return true
	}
	return lang == "ruby" && trimmed == frozenStringLiteralMagicComment
}

// excludeProtected drops any range in ranges that falls entirely
// within one of the protected spans, so a second lexer pass over
// already-filtered text can't strip a preserved shebang or magic
// comment as if it were an ordinary trailing comment.
func excludeProtected(ranges []lexrt.Range, protected []lexrt.Range) []lexrt.Range {
	if len(protected) == 0 || len(ranges) == 0 {
		return ranges
	}
	out := make([]lexrt.Range, 0, len(ranges))
	pi := 0
	for _, r := range ranges {
		for pi < len(protected) && protected[pi].To <= r.From {
			pi++
		}
		if pi < len(protected) && protected[pi].From <= r.From && r.To <= protected[pi].To {
			continue
		}
		out = append(out, r)
	}
	return out
}

func leadingWhitespace(line string) int {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t' || line[i] == '\r') {
		i++
	}
	return i
}
