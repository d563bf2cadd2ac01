// Package zerrors wraps juju/errors with the per-file error record used
// to report a batch run's outcome without aborting the whole batch.
package zerrors

import (
	"fmt"

	"github.com/juju/errors"
)

// FileError records a single file's processing failure, the way
// _examples/original_source/core/processor.rs's ProcessedFileResult
// pairs a path with an optional error string.
type FileError struct {
	Path  string
	Stage string
	Err   error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s failed for %s: %s", e.Stage, e.Path, e.Err)
}

// Unwrap lets errors.Cause and errors.Is see through FileError.
func (e *FileError) Unwrap() error { return e.Err }

// Wrap annotates err with the path and processing stage that produced
// it, or returns nil if err is nil.
func Wrap(path, stage string, err error) error {
	if err == nil {
		return nil
	}
	return errors.Trace(&FileError{Path: path, Stage: stage, Err: err})
}

// New is re-exported for callers that want a juju/errors-style plain
// error without a file association (argument validation, for instance).
func New(msg string) error { return errors.New(msg) }

// Errorf is re-exported for the same reason as New.
func Errorf(format string, args ...interface{}) error { return errors.Errorf(format, args...) }
