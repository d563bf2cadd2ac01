// Package logging configures the process-wide juju/loggo logger used
// throughout zenfmt, matching the way _examples/flosch-pongo2's sibling
// tools in the example pack set up a single named root logger rather
// than threading *log.Logger values through every call.
package logging

import (
	"os"

	"github.com/juju/loggo"
)

// Logger is the package-wide logger, named after the module so output
// can be filtered independently of other loggo-using dependencies in
// the same process.
var Logger = loggo.GetLogger("zenfmt")

// Configure sets the minimum severity written to stderr and replaces
// loggo's default writer with a plain stderr writer. debug raises the level to
// TRACE so --debug-ranges output and per-file decisions are visible.
func Configure(debug bool) error {
	level := loggo.INFO
	if debug {
		level = loggo.TRACE
	}
	loggo.GetLogger("").SetLogLevel(level)

	writer := loggo.NewSimpleWriter(os.Stderr, &plainFormatter{})
	_, err := loggo.ReplaceDefaultWriter(writer)
	return err
}

type plainFormatter struct{}

func (plainFormatter) Format(entry loggo.Entry) string {
	return entry.Level.String() + ": " + entry.Message
}
