package domain

// DefaultConfigFilename is the configuration file looked up in the project directory.
const DefaultConfigFilename = "packager.yaml"

// PackagerOptions holds the packager-specific options recognised by install and prune.
type PackagerOptions struct {
	// IgnoreScripts suppresses lifecycle script execution during install.
	IgnoreScripts bool

	// FlatTree is accepted for compatibility and has no effect.
	FlatTree bool
}

// Config is the packager configuration read from the project directory.
type Config struct {
	// Options are passed to install and prune.
	Options PackagerOptions

	// Scripts are the default scripts executed by a run without explicit names.
	Scripts []string

	// IgnoredListErrors are stderr line prefixes that do not fail a dependency listing.
	IgnoredListErrors []string
}

// DefaultConfig returns the configuration used when no configuration file exists.
func DefaultConfig() *Config {
	return &Config{
		Scripts:           []string{},
		IgnoredListErrors: []string{},
	}
}
