// Package normalize implements the two line-oriented cleanups that run
// independently of any language-specific comment lexer: trimming
// trailing whitespace and collapsing runs of blank lines.
package normalize

import "strings"

// TrimTrailingWhitespace removes spaces, tabs, and carriage returns from
// the end of every line, leaving the newlines themselves (and their
// count) untouched.
//
// Grounded on _examples/original_source/core/processor.rs's
// remove_trailing_whitespace.
func TrimTrailingWhitespace(input string) string {
	lines := strings.Split(input, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.Join(lines, "\n")
}

// CollapseBlankLines replaces every run of two or more consecutive blank
// lines (a line is blank once trailing whitespace is trimmed) with a
// single blank line. maxConsecutive, when positive, instead allows up to
// that many consecutive blank lines before collapsing.
//
// Grounded on _examples/original_source/core/processor.rs's
// collapse_blank_lines.
func CollapseBlankLines(input string, maxConsecutive int) string {
	if maxConsecutive <= 0 {
		maxConsecutive = 1
	}
	lines := strings.Split(input, "\n")
	out := make([]string, 0, len(lines))
	blankRun := 0
	for _, line := range lines {
		if strings.TrimRight(line, " \t\r") == "" {
			blankRun++
			if blankRun > maxConsecutive {
				continue
			}
		} else {
			blankRun = 0
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
