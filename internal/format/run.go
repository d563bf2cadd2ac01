package format

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/juju/errors"

	"github.com/zenfmt/zenfmt/internal/dispatch"
	"github.com/zenfmt/zenfmt/internal/logging"
)

// Run executes the formatter registered for lang against path, either
// editing the file in place (the common case) or, for stdin-based
// tools, reading the file, piping it through the tool, and atomically
// replacing the file with the tool's stdout.
//
// Grounded on _examples/original_source/core/command_runner.rs's
// run_formatter and run_formatter_stdin_stdout.
func Run(ctx context.Context, lang dispatch.Lang, path string) error {
	tool, ok := ToolFor(lang)
	if !ok {
		return nil
	}
	logging.Logger.Tracef("running %s on %s", tool.Name, path)

	if !tool.Stdin {
		return runInPlace(ctx, tool, path)
	}
	return runStdinStdout(ctx, tool, path)
}

func runInPlace(ctx context.Context, tool Tool, path string) error {
	cmd := exec.CommandContext(ctx, tool.Name, tool.Args(path)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return errors.Annotatef(err, "%s: %s", tool.Name, stderr.String())
	}
	return nil
}

func runStdinStdout(ctx context.Context, tool Tool, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Trace(err)
	}

	args := tool.Args(path)
	if tool.Name == "prettierd" {
		args = append(args, path)
	}
	cmd := exec.CommandContext(ctx, tool.Name, args...)
	cmd.Stdin = bytes.NewReader(content)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return errors.Annotatef(err, "%s: %s", tool.Name, stderr.String())
	}

	return AtomicWrite(path, stdout.Bytes())
}

// AtomicWrite writes data to a sibling temp file in path's directory,
// then renames it over path, so a reader never observes a half-written
// file and a crash mid-write never corrupts the original.
//
// Grounded on _examples/original_source/core/processor.rs's temp-file
// handling for OperationMode::All's second format pass.
func AtomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".zenfmt-*"+filepath.Ext(path))
	if err != nil {
		return errors.Trace(err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Trace(err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Trace(err)
	}
	if info, err := os.Stat(path); err == nil {
		os.Chmod(tmpPath, info.Mode())
	}
	return errors.Trace(os.Rename(tmpPath, path))
}
