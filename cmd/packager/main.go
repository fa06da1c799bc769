// Package main is the entry point for the packager tool.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/packager/cmd/packager/commands"
	"go.trai.ch/packager/internal/app"
	_ "go.trai.ch/packager/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)
	if l, ok := components.Logger.(interface{ SetJSON(bool) }); ok {
		cli.SetJSONLogsHook(l.SetJSON)
	}
	if t, ok := components.Telemetry.(interface{ SetOutput(io.Writer) }); ok {
		t.SetOutput(stderr)
	}

	// 3. Execution
	err = cli.Execute(ctx)
	if components.Telemetry != nil {
		if closeErr := components.Telemetry.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	if err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
