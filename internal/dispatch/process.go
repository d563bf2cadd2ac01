package dispatch

import (
	"context"
	"os"

	"github.com/juju/errors"

	"github.com/zenfmt/zenfmt/internal/format"
	"github.com/zenfmt/zenfmt/internal/logging"
	"github.com/zenfmt/zenfmt/internal/normalize"
	"github.com/zenfmt/zenfmt/internal/stripper"
	"github.com/zenfmt/zenfmt/internal/zerrors"
)

// Mode selects which cleanup operation Process runs over a file.
type Mode int

const (
	ModeFormat Mode = iota
	ModeStrip
	ModeStripWhitespace
	ModeStripNewlines
	ModeAll
)

// MaxConsecutiveBlankLines bounds how many blank lines ModeStripNewlines
// leaves between other lines.
var MaxConsecutiveBlankLines = 1

// Result records the outcome of processing one file.
type Result struct {
	Path     string
	Lang     Lang
	Before   string
	Modified bool
	Skipped  bool
	Err      error
}

// Process runs mode against the file at path, writing it back only if
// its content changed. It implements the five pipelines of
// _examples/original_source/core/processor.rs's process_single_file.
// ModeAll formats path in place, strips comments from the result and,
// if anything changed, writes the stripped text to path and formats path
// in place again. That second pass runs on path itself, not on a
// separate temp file, so when it fails path is left holding the
// stripped, unformatted text.
func Process(ctx context.Context, path string, mode Mode) Result {
	res := Result{Path: path}

	l, ok := LanguageFor(path)
	if !ok {
		res.Skipped = true
		return res
	}
	res.Lang = l

	switch mode {
	case ModeFormat, ModeAll:
		if !CanFormat(l) {
			res.Skipped = true
			return res
		}
	case ModeStrip:
		if !CanStrip(l) {
			res.Skipped = true
			return res
		}
	}

	original, err := os.ReadFile(path)
	if err != nil {
		res.Err = zerrors.Wrap(path, "read", err)
		return res
	}
	originalContent := string(original)
	res.Before = originalContent
	current := originalContent
	modified := false

	switch mode {
	case ModeFormat:
		if err := format.Run(ctx, l, path); err != nil {
			res.Err = zerrors.Wrap(path, "format", err)
			return res
		}
		after, err := os.ReadFile(path)
		if err != nil {
			res.Err = zerrors.Wrap(path, "re-read after format", err)
			return res
		}
		res.Modified = string(after) != originalContent
		return res

	case ModeStrip:
		stripped, err := stripCommentsSmart(l, current)
		if err != nil {
			res.Err = zerrors.Wrap(path, "strip", err)
			return res
		}
		if stripped != current {
			current, modified = stripped, true
		}

	case ModeStripWhitespace:
		stripped := normalize.TrimTrailingWhitespace(current)
		if stripped != current {
			current, modified = stripped, true
		}

	case ModeStripNewlines:
		collapsed := normalize.CollapseBlankLines(current, MaxConsecutiveBlankLines)
		if collapsed != current {
			current, modified = collapsed, true
		}

	case ModeAll:
		if err := format.Run(ctx, l, path); err != nil {
			res.Err = zerrors.Wrap(path, "format pass 1", err)
			return res
		}
		afterFmt1, err := os.ReadFile(path)
		if err != nil {
			res.Err = zerrors.Wrap(path, "re-read after format 1", err)
			return res
		}
		current = string(afterFmt1)
		modified = current != originalContent

		if !CanStrip(l) {
			res.Modified = modified
			return res
		}
		stripped, err := stripCommentsSmart(l, current)
		if err != nil {
			res.Err = zerrors.Wrap(path, "strip for --all", err)
			return res
		}
		if stripped != current {
			current, modified = stripped, true
		}

		if modified {
			if err := format.AtomicWrite(path, []byte(current)); err != nil {
				res.Err = zerrors.Wrap(path, "write before format 2", err)
				return res
			}
			if err := format.Run(ctx, l, path); err != nil {
				res.Err = zerrors.Wrap(path, "format pass 2", err)
				return res
			}
			afterFmt2, err := os.ReadFile(path)
			if err != nil {
				res.Err = zerrors.Wrap(path, "read after format 2", err)
				return res
			}
			current = string(afterFmt2)
		}
	}

	if modified {
		if err := format.AtomicWrite(path, []byte(current)); err != nil {
			res.Err = zerrors.Wrap(path, "write final result", err)
			return res
		}
		logging.Logger.Infof("rewrote %s", path)
	}
	res.Modified = modified
	return res
}

func stripCommentsSmart(l Lang, input string) (string, error) {
	finder, ok := FinderFor(l)
	if !ok {
		return input, nil
	}
	out, err := stripper.StripLines(input, l, finder)
	if err != nil {
		return "", errors.Trace(err)
	}
	return out, nil
}
