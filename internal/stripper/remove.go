// Package stripper implements comment removal on top of the ranges a
// internal/lang lexer locates: deleting whole ranges outright (Remove)
// and collapsing comment-only source lines while re-lexing trailing
// inline comments off the lines that survive (StripLines).
package stripper

import (
	"sort"

	"github.com/juju/errors"
	"github.com/zenfmt/zenfmt/internal/lexrt"
)

// checkBounds validates that every range falls within [0, len(input)]
// with From <= To, independent of range order.
//
// Grounded on _examples/original_source/core/stripper/common.rs's
// check_matches_bounds.
func checkBounds(input string, ranges []lexrt.Range) error {
	n := len(input)
	for i, r := range ranges {
		if r.From < 0 || r.To > n || r.From > r.To {
			return errors.Errorf("comment range %d: [%d,%d) out of bounds for input of length %d", i, r.From, r.To, n)
		}
	}
	return nil
}

// checkSortedOverlap validates that ranges, already sorted ascending by
// From, do not overlap.
//
// Grounded on _examples/original_source/core/stripper/common.rs's
// check_sorted_matches_overlap.
func checkSortedOverlap(ranges []lexrt.Range) error {
	lastTo := 0
	for i, r := range ranges {
		if r.From < lastTo {
			return errors.Errorf("comment range %d overlaps the range before it", i)
		}
		lastTo = r.To
	}
	return nil
}

// CheckRanges validates that ranges fall within [0, len(input)] and,
// once sorted ascending by From, do not overlap. It does not require
// ranges to already be in sorted order: it sorts a copy before the
// overlap check, mirroring remove_matches's bounds-check-then-sort-
// then-overlap-check sequence.
//
// Grounded on _examples/original_source/core/stripper/common.rs's
// check_matches_bounds and check_sorted_matches_overlap.
func CheckRanges(input string, ranges []lexrt.Range) error {
	if err := checkBounds(input, ranges); err != nil {
		return errors.Trace(err)
	}
	sorted := sortedCopy(ranges)
	return errors.Trace(checkSortedOverlap(sorted))
}

func sortedCopy(ranges []lexrt.Range) []lexrt.Range {
	out := make([]lexrt.Range, len(ranges))
	copy(out, ranges)
	sort.Slice(out, func(i, j int) bool { return out[i].From < out[j].From })
	return out
}

// Remove deletes every byte range in ranges from input, returning the
// result. ranges need not be pre-sorted: Remove checks bounds, sorts a
// copy ascending by From, verifies the sorted list doesn't overlap, and
// only then walks it back to front so that removing one range never
// invalidates the byte offsets of the ranges before it.
//
// Grounded on _examples/original_source/core/stripper/common.rs's
// remove_matches.
func Remove(input string, ranges []lexrt.Range) (string, error) {
	if len(ranges) == 0 {
		return input, nil
	}
	if err := checkBounds(input, ranges); err != nil {
		return "", errors.Trace(err)
	}
	sorted := sortedCopy(ranges)
	if err := checkSortedOverlap(sorted); err != nil {
		return "", errors.Trace(err)
	}
	out := []byte(input)
	for i := len(sorted) - 1; i >= 0; i-- {
		r := sorted[i]
		out = append(out[:r.From], out[r.To:]...)
	}
	return string(out), nil
}
