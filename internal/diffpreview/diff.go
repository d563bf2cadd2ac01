// Package diffpreview renders a unified-style preview of what a run
// would change, for the --diff flag, using kylelemons/godebug's text
// diff, carried over from openconfig-goyang's use of the same package
// for diagnostic output.
package diffpreview

import "github.com/kylelemons/godebug/diff"

// Render returns a line-oriented diff between before and after, or an
// empty string if they are identical.
func Render(path, before, after string) string {
	if before == after {
		return ""
	}
	d := diff.Diff(before, after)
	return "--- " + path + "\n+++ " + path + " (after processing)\n" + d
}
