package domain

import "go.trai.ch/zerr"

var (
	// ErrListOutputInvalid is returned when the output of the list command cannot be parsed.
	ErrListOutputInvalid = zerr.New("invalid dependency list output")

	// ErrConfigInvalid is returned when the packager configuration file cannot be read or decoded.
	ErrConfigInvalid = zerr.New("invalid packager configuration")

	// ErrLockfileNotFound is returned when no lockfile exists in the source directory of a rebase.
	ErrLockfileNotFound = zerr.New("lockfile not found")

	// ErrNoScriptsSpecified is returned when a script run is requested without any script names.
	ErrNoScriptsSpecified = zerr.New("no scripts specified")

	// ErrDependencyListFailed is returned when the production dependencies cannot be listed.
	ErrDependencyListFailed = zerr.New("dependency listing failed")

	// ErrInstallFailed is returned when installing dependencies fails.
	ErrInstallFailed = zerr.New("install failed")

	// ErrPruneFailed is returned when pruning dependencies fails.
	ErrPruneFailed = zerr.New("prune failed")

	// ErrScriptFailed is returned when a package script fails.
	ErrScriptFailed = zerr.New("script execution failed")

	// ErrRebaseFailed is returned when a lockfile cannot be rebased.
	ErrRebaseFailed = zerr.New("lockfile rebase failed")
)
