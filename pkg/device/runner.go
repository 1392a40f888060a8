package device

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"syscall"
)

// CmdResult holds the result of a finished command.
type CmdResult struct {
	ExitCode int
	Stderr   string
}

type RunOpts struct {
	Dir    string
	Stdout io.Writer
}

// Runner runs an external command to completion. A process that exits
// non-zero is reported through CmdResult.ExitCode with a nil error; the error
// is reserved for commands that could not be run at all.
type Runner interface {
	Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error)
}

// ExecRunner is the os/exec implementation of Runner.
type ExecRunner struct{}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

func (r *ExecRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = opts.Dir
	cmd.Stdout = opts.Stdout

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := CmdResult{Stderr: stderr.String()}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitCode(exitErr)
		return result, nil
	}
	return result, err
}

// exitCode reports a child killed by a signal as 128+signal, the way shells do.
func exitCode(exitErr *exec.ExitError) int {
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}
	return exitErr.ExitCode()
}
