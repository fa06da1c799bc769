// Package pnpm implements the packager adapter for the pnpm command line.
package pnpm

import (
	"context"
	"runtime"
	"slices"

	"go.trai.ch/packager/internal/core/domain"
	"go.trai.ch/packager/internal/core/ports"
	"go.trai.ch/packager/internal/engine/series" //nolint:depguard // scripts run through the ordered runner
)

const (
	lockfileName = "shrinkwrap.yaml"

	flagNonInteractive = "--non-interactive"
	flagIgnoreScripts  = "--ignore-scripts"
)

// Packager implements ports.Packager by shelling out to pnpm.
type Packager struct {
	runner ports.ProcessRunner
	steps  *series.Runner
	logger ports.Logger

	command           string
	ignoredListErrors []string
}

// Option configures a Packager.
type Option func(*Packager)

// WithPlatform resolves the pnpm executable for goos instead of the running platform.
func WithPlatform(goos string) Option {
	return func(p *Packager) {
		p.command = ResolveExecutableName(goos)
	}
}

// WithIgnoredListErrors sets the stderr line prefixes that do not fail a dependency listing.
func WithIgnoredListErrors(prefixes ...string) Option {
	return func(p *Packager) {
		p.ignoredListErrors = append([]string(nil), prefixes...)
	}
}

// New creates a new Packager.
func New(runner ports.ProcessRunner, steps *series.Runner, logger ports.Logger, opts ...Option) *Packager {
	p := &Packager{
		runner:  runner,
		steps:   steps,
		logger:  logger,
		command: ResolveExecutableName(runtime.GOOS),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Command returns the pnpm executable name used for every invocation.
func (p *Packager) Command() string {
	return p.command
}

// LockfileName returns the name of the lockfile pnpm produces.
func (p *Packager) LockfileName() string {
	return lockfileName
}

// CopyPackageSectionNames returns the manifest sections copied into a derived manifest.
func (p *Packager) CopyPackageSectionNames() []string {
	return []string{"resolutions"}
}

// MustCopyModules reports false: pnpm install is self-sufficient.
func (p *Packager) MustCopyModules() bool {
	return false
}

// Install runs a non-interactive pnpm install in dir as a single recorded step.
func (p *Packager) Install(ctx context.Context, dir string, opts domain.PackagerOptions) error {
	args := []string{"install", flagNonInteractive}
	if opts.IgnoreScripts {
		args = append(args, flagIgnoreScripts)
	}

	return p.steps.Run(ctx, []series.Step{{
		Name: "install",
		Run: func(ctx context.Context) error {
			_, err := p.runner.Spawn(ctx, p.command, args, dir)
			return err
		},
	}})
}

// Prune installs again: pnpm install removes anything no longer declared.
func (p *Packager) Prune(ctx context.Context, dir string, opts domain.PackagerOptions) error {
	return p.Install(ctx, dir, opts)
}

// RunScripts runs each script with pnpm run, one at a time and in order.
// The first failing script stops the sequence and its error is returned.
func (p *Packager) RunScripts(ctx context.Context, dir string, scriptNames []string) error {
	steps := make([]series.Step, 0, len(scriptNames))
	for _, name := range scriptNames {
		steps = append(steps, series.Step{
			Name: "run " + name,
			Run: func(ctx context.Context) error {
				_, err := p.runner.Spawn(ctx, p.command, []string{"run", name}, dir)
				return err
			},
		})
	}
	return p.steps.Run(ctx, steps)
}

// RebaseLockfile rewrites relative file references in lockfile against pathToPackageRoot.
func (p *Packager) RebaseLockfile(pathToPackageRoot, lockfile string) string {
	return RebaseLockfile(pathToPackageRoot, lockfile)
}

// Factory implements ports.PackagerFactory for pnpm.
type Factory struct {
	runner ports.ProcessRunner
	steps  *series.Runner
	logger ports.Logger
	opts   []Option
}

// NewFactory creates a new Factory. opts apply to every created Packager.
func NewFactory(runner ports.ProcessRunner, steps *series.Runner, logger ports.Logger, opts ...Option) *Factory {
	return &Factory{
		runner: runner,
		steps:  steps,
		logger: logger,
		opts:   opts,
	}
}

// NewPackager returns a Packager that ignores the list errors configured in cfg.
func (f *Factory) NewPackager(cfg *domain.Config) ports.Packager {
	opts := slices.Clone(f.opts)
	if cfg != nil {
		opts = append(opts, WithIgnoredListErrors(cfg.IgnoredListErrors...))
	}
	return New(f.runner, f.steps, f.logger, opts...)
}
