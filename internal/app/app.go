// Package app implements the application layer for packager.
package app

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/packager/internal/core/domain"
	"go.trai.ch/packager/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	packagers    ports.PackagerFactory
	logger       ports.Logger
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, packagers ports.PackagerFactory, logger ports.Logger) *App {
	return &App{
		configLoader: loader,
		packagers:    packagers,
		logger:       logger,
	}
}

// Project locates a project and its configuration file.
type Project struct {
	// Dir is the project directory.
	Dir string
	// ConfigFile is relative to Dir unless absolute. Empty means
	// domain.DefaultConfigFilename.
	ConfigFile string
}

func (p Project) configPath() string {
	name := p.ConfigFile
	if name == "" {
		name = domain.DefaultConfigFilename
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.Dir, name)
}

// InstallOptions overrides the configured packager options for install and prune.
type InstallOptions struct {
	IgnoreScripts bool
}

// RebaseOptions describes a lockfile relocation.
type RebaseOptions struct {
	// From is the directory holding the original lockfile.
	From string
	// To is the directory the rebased lockfile is written to.
	To string
	// Root is the path from To back to the original project.
	Root string
	// ConfigFile is the configuration file of the original project, relative
	// to From unless absolute.
	ConfigFile string
}

// Info is the static capability set of the packager.
type Info struct {
	LockfileName            string   `json:"lockfileName"`
	CopyPackageSectionNames []string `json:"copyPackageSectionNames"`
	MustCopyModules         bool     `json:"mustCopyModules"`
}

// Dependencies lists the production dependencies installed in dir.
func (a *App) Dependencies(ctx context.Context, project Project, depth int) (domain.DependencyResult, error) {
	_, packager, err := a.open(project)
	if err != nil {
		return domain.DependencyResult{}, err
	}

	result, err := packager.ProdDependencies(ctx, project.Dir, depth)
	if err != nil {
		return domain.DependencyResult{}, errors.Join(domain.ErrDependencyListFailed, err)
	}
	return result, nil
}

// Install installs the dependencies of the project.
func (a *App) Install(ctx context.Context, project Project, opts InstallOptions) error {
	cfg, packager, err := a.open(project)
	if err != nil {
		return err
	}

	if err := packager.Install(ctx, project.Dir, mergeOptions(cfg.Options, opts)); err != nil {
		return errors.Join(domain.ErrInstallFailed, err)
	}

	a.logger.Info("dependencies installed")
	return nil
}

// Prune removes the dependencies the project no longer declares.
func (a *App) Prune(ctx context.Context, project Project, opts InstallOptions) error {
	cfg, packager, err := a.open(project)
	if err != nil {
		return err
	}

	if err := packager.Prune(ctx, project.Dir, mergeOptions(cfg.Options, opts)); err != nil {
		return errors.Join(domain.ErrPruneFailed, err)
	}

	a.logger.Info("dependencies pruned")
	return nil
}

// RunScripts runs scriptNames in the project, or the configured scripts when none are given.
func (a *App) RunScripts(ctx context.Context, project Project, scriptNames []string) error {
	cfg, packager, err := a.open(project)
	if err != nil {
		return err
	}

	if len(scriptNames) == 0 {
		scriptNames = cfg.Scripts
	}
	if len(scriptNames) == 0 {
		return domain.ErrNoScriptsSpecified
	}

	if err := packager.RunScripts(ctx, project.Dir, scriptNames); err != nil {
		return errors.Join(domain.ErrScriptFailed, err)
	}
	return nil
}

// RebaseLockfile copies the lockfile of opts.From to opts.To, rebasing its file
// references onto opts.Root.
func (a *App) RebaseLockfile(opts RebaseOptions) error {
	_, packager, err := a.open(Project{Dir: opts.From, ConfigFile: opts.ConfigFile})
	if err != nil {
		return err
	}

	name := packager.LockfileName()
	src := filepath.Join(opts.From, name)
	data, err := os.ReadFile(src) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(err, domain.ErrLockfileNotFound.Error()), "path", src)
		}
		return errors.Join(domain.ErrRebaseFailed, zerr.With(zerr.Wrap(err, "failed to read lockfile"), "path", src))
	}

	rebased := packager.RebaseLockfile(opts.Root, string(data))

	dst := filepath.Join(opts.To, name)
	if err := os.MkdirAll(opts.To, 0o750); err != nil {
		return errors.Join(domain.ErrRebaseFailed, zerr.With(zerr.Wrap(err, "failed to create directory"), "path", opts.To))
	}
	//nolint:gosec // lockfiles are shared project files
	if err := os.WriteFile(dst, []byte(rebased), 0o644); err != nil {
		return errors.Join(domain.ErrRebaseFailed, zerr.With(zerr.Wrap(err, "failed to write lockfile"), "path", dst))
	}

	a.logger.Info("rebased " + src + " into " + dst)
	return nil
}

// Info returns the static capabilities of the packager.
func (a *App) Info() Info {
	packager := a.packagers.NewPackager(domain.DefaultConfig())
	return Info{
		LockfileName:            packager.LockfileName(),
		CopyPackageSectionNames: packager.CopyPackageSectionNames(),
		MustCopyModules:         packager.MustCopyModules(),
	}
}

func (a *App) open(project Project) (*domain.Config, ports.Packager, error) {
	cfg, err := a.configLoader.Load(project.configPath())
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, a.packagers.NewPackager(cfg), nil
}

func mergeOptions(configured domain.PackagerOptions, overrides InstallOptions) domain.PackagerOptions {
	if overrides.IgnoreScripts {
		configured.IgnoreScripts = true
	}
	return configured
}
