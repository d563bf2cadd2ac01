package stripper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zenfmt/zenfmt/internal/lang"
	"github.com/zenfmt/zenfmt/internal/langtag"
)

const testLangC langtag.Lang = "c"

func TestStripLinesRemovesCommentOnlyLines(t *testing.T) {
	input := "int x = 1;\n// a standalone comment\nint y = 2;\n"
	out, err := StripLines(input, testLangC, lang.FindComments)
	require.NoError(t, err)
	assert.Equal(t, "int x = 1;\nint y = 2;\n", out)
}

func TestStripLinesRemovesTrailingInlineComment(t *testing.T) {
	input := "int x = 1; // trailing\nint y = 2;\n"
	out, err := StripLines(input, testLangC, lang.FindComments)
	require.NoError(t, err)
	assert.Equal(t, "int x = 1; \nint y = 2;\n", out)
}

func TestStripLinesRemovesIndentedCommentOnlyLine(t *testing.T) {
	input := "if (x) {\n    // explains the branch\n    doThing();\n}\n"
	out, err := StripLines(input, testLangC, lang.FindComments)
	require.NoError(t, err)
	assert.Equal(t, "if (x) {\n    doThing();\n}\n", out)
}

func TestStripLinesNoComments(t *testing.T) {
	input := "int x = 1;\nint y = 2;\n"
	out, err := StripLines(input, testLangC, lang.FindComments)
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestStripLinesBlockCommentSpanningLines(t *testing.T) {
	input := "int x;\n/* a\n   block\n   comment */\nint y;\n"
	out, err := StripLines(input, testLangC, lang.FindComments)
	require.NoError(t, err)
	assert.Equal(t, "int x;\nint y;\n", out)
}

func TestStripLinesPreservesShebangForAnyLanguage(t *testing.T) {
	input := "#!/usr/bin/env python\n# just a comment\nx = 1\n"
	out, err := StripLines(input, langtag.Lang("python"), lang.FindCommentsPython)
	require.NoError(t, err)
	assert.Equal(t, "#!/usr/bin/env python\nx = 1\n", out)
}

func TestStripLinesPreservesShebangOnlyFile(t *testing.T) {
	input := "#!/bin/sh\necho hi\n"
	out, err := StripLines(input, langtag.Lang("shell"), lang.FindCommentsShell)
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestStripLinesPreservesRubyFrozenStringLiteralComment(t *testing.T) {
	input := "# frozen_string_literal: true\n# an ordinary comment\nputs 1\n"
	out, err := StripLines(input, langtag.Lang("ruby"), lang.FindCommentsRuby)
	require.NoError(t, err)
	assert.Equal(t, "# frozen_string_literal: true\nputs 1\n", out)
}

func TestStripLinesDoesNotPreserveFrozenStringLiteralForNonRuby(t *testing.T) {
	input := "# frozen_string_literal: true\nx = 1\n"
	out, err := StripLines(input, langtag.Lang("python"), lang.FindCommentsPython)
	require.NoError(t, err)
	assert.Equal(t, "x = 1\n", out)
}
