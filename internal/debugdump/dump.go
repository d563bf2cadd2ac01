// Package debugdump pretty-prints internal state for --debug-ranges,
// using alecthomas/repr the way lukeod-gosmi uses it to print parsed
// SMI structures during development.
package debugdump

import (
	"github.com/alecthomas/repr"

	"github.com/zenfmt/zenfmt/internal/lexrt"
	"github.com/zenfmt/zenfmt/internal/srcpos"
)

// Ranges returns a repr-formatted dump of a file's comment ranges,
// annotated with the line:column each range starts and ends at and the
// source text it covers, so a developer can eyeball whether the lexer
// drew the boundaries it should have.
func Ranges(path string, input string, ranges []lexrt.Range) string {
	type annotated struct {
		From, To     int
		FromPosition string
		ToPosition   string
		Text         string
	}
	file := srcpos.NewFile(input)
	out := make([]annotated, len(ranges))
	for i, r := range ranges {
		out[i] = annotated{
			From:         r.From,
			To:           r.To,
			FromPosition: file.Position(r.From).String(),
			ToPosition:   file.Position(r.To).String(),
			Text:         input[r.From:r.To],
		}
	}
	return path + "\n" + repr.String(out, repr.Indent("  "))
}
