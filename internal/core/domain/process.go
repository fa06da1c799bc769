package domain

import (
	"fmt"
	"strings"
)

// ProcessOutput is the captured output of a finished process.
type ProcessOutput struct {
	Stdout string
	Stderr string
}

// ProcessError is returned when a spawned process cannot start or exits non-zero.
// It carries everything the process wrote so callers can inspect or recover from it.
type ProcessError struct {
	// CommandLine is the shell-quoted command as it was invoked.
	CommandLine string

	// ExitCode is the process exit code, or -1 when the process did not run to completion.
	ExitCode int

	Stdout string
	Stderr string

	// Err is the underlying execution error.
	Err error
}

// Message returns the failure description without the captured streams.
func (e *ProcessError) Message() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("%s did not complete", e.CommandLine)
	}
	return fmt.Sprintf("%s exited with code %d", e.CommandLine, e.ExitCode)
}

func (e *ProcessError) Error() string {
	msg := e.Message()
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

// Unwrap returns the underlying execution error.
func (e *ProcessError) Unwrap() error {
	return e.Err
}
