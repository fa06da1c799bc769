package ports

import (
	"context"

	"go.trai.ch/packager/internal/core/domain"
)

// Packager adapts a JavaScript package manager's command line.
//
//go:generate go run go.uber.org/mock/mockgen -source=packager.go -destination=mocks/mock_packager.go -package=mocks
type Packager interface {
	// LockfileName is the name of the lockfile the package manager produces.
	LockfileName() string

	// CopyPackageSectionNames lists the package manifest sections, beyond
	// dependencies, that must be copied into a derived manifest.
	CopyPackageSectionNames() []string

	// MustCopyModules reports whether installed module directories must be
	// copied physically instead of relying on the package manager's install.
	MustCopyModules() bool

	// ProdDependencies lists the installed production dependencies of dir up to depth.
	ProdDependencies(ctx context.Context, dir string, depth int) (domain.DependencyResult, error)

	// Install installs the dependencies declared in dir.
	Install(ctx context.Context, dir string, opts domain.PackagerOptions) error

	// Prune removes installed packages that are no longer declared in dir.
	Prune(ctx context.Context, dir string, opts domain.PackagerOptions) error

	// RunScripts runs the named package scripts in order, stopping at the first failure.
	RunScripts(ctx context.Context, dir string, scriptNames []string) error

	// RebaseLockfile rewrites relative file references in lockfile so they
	// resolve from a directory pathToPackageRoot away from the original project.
	RebaseLockfile(pathToPackageRoot, lockfile string) string
}

// PackagerFactory creates packagers configured for a project.
type PackagerFactory interface {
	// NewPackager returns a Packager honouring the list error allow-list of cfg.
	NewPackager(cfg *domain.Config) Packager
}
