// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/packager/internal/core/domain"
)

// ProcessRunner spawns external commands and captures their output.
//
//go:generate go run go.uber.org/mock/mockgen -source=process.go -destination=mocks/mock_process.go -package=mocks
type ProcessRunner interface {
	// Spawn runs name with args in dir and waits for it to exit.
	//
	// A non-zero exit, or a failure to start, is reported as *domain.ProcessError
	// carrying whatever the process wrote to stdout and stderr.
	Spawn(ctx context.Context, name string, args []string, dir string) (domain.ProcessOutput, error)
}
