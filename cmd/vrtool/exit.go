package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"vrtool/pkg/device"
	"vrtool/pkg/project"
)

const (
	exitFailure           = 1
	exitDestinationExists = 2
)

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	var cmdErr *device.CommandError
	switch {
	case err == nil:
		return 0
	case errors.Is(err, project.ErrDestinationExists):
		return exitDestinationExists
	case errors.As(err, &cmdErr):
		return cmdErr.ExitCode
	default:
		return exitFailure
	}
}

// errorType is the short label telemetry stores for a failed command.
func errorType(err error) string {
	var cmdErr *device.CommandError
	switch {
	case errors.Is(err, project.ErrDestinationExists):
		return "destination_exists"
	case errors.As(err, &cmdErr):
		return "bridge_failed"
	default:
		return "error"
	}
}

// reportError writes err to w and returns the exit status to use.
func reportError(w io.Writer, err error) int {
	fmt.Fprintf(w, "Error: %v\n", err)

	var cmdErr *device.CommandError
	if errors.As(err, &cmdErr) && strings.TrimSpace(cmdErr.Stderr) != "" {
		fmt.Fprintf(w, "%s\n", strings.TrimSpace(cmdErr.Stderr))
	}
	return exitCode(err)
}
