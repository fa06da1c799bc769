// Package process provides the process runner adapter.
package process

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/packager/internal/core/domain"
	"go.trai.ch/packager/internal/core/ports"
	"mvdan.cc/sh/v3/syntax"
)

// waitDelay bounds how long a cancelled command may keep its output pipes open,
// for example through a grandchild that inherited them.
const waitDelay = 2 * time.Second

// Runner implements ports.ProcessRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// Spawn runs name with args in dir and captures its output.
//
// When ctx carries a telemetry vertex, stdout and stderr are also streamed into it.
// The process inherits the environment of the current process.
func (r *Runner) Spawn(ctx context.Context, name string, args []string, dir string) (domain.ProcessOutput, error) {
	commandLine := CommandLine(name, args)
	if dir != "" {
		r.logger.Info(commandLine + " (in " + dir + ")")
	} else {
		r.logger.Info(commandLine)
	}

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // command is built by the packager
	cmd.Dir = dir
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if v, ok := ports.VertexFromContext(ctx); ok {
		cmd.Stdout = io.MultiWriter(&stdout, v.Stdout())
		cmd.Stderr = io.MultiWriter(&stderr, v.Stderr())
	}

	err := cmd.Run()
	out := domain.ProcessOutput{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		return out, &domain.ProcessError{
			CommandLine: commandLine,
			ExitCode:    exitCode,
			Stdout:      out.Stdout,
			Stderr:      out.Stderr,
			Err:         err,
		}
	}

	return out, nil
}

// CommandLine renders name and args as a single shell-quoted command line.
func CommandLine(name string, args []string) string {
	words := make([]string, 0, len(args)+1)
	for _, word := range append([]string{name}, args...) {
		words = append(words, quote(word))
	}
	return strings.Join(words, " ")
}

func quote(word string) string {
	quoted, err := syntax.Quote(word, syntax.LangBash)
	if err != nil {
		return strconv.Quote(word)
	}
	return quoted
}
