// Package config provides the configuration loader for packager.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"go.trai.ch/packager/internal/core/domain"
	"go.trai.ch/packager/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	logger ports.Logger
}

// NewLoader creates a new FileConfigLoader.
func NewLoader(logger ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{
		logger: logger,
	}
}

// Load reads the configuration file at path. A missing file yields domain.DefaultConfig.
func (l *FileConfigLoader) Load(path string) (*domain.Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Info("no configuration found at " + path + ", using defaults")
		return domain.DefaultConfig(), nil
	}
	return cfg, err
}

// Load reads a configuration file from the given path and returns a domain.Config.
// A missing file is reported as an error wrapping fs.ErrNotExist.
func Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, invalid(err, path)
	}

	var file Packagerfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, invalid(err, path)
	}

	for _, script := range file.Scripts {
		if strings.TrimSpace(script) == "" {
			return nil, invalid(zerr.New("script name must not be empty"), path)
		}
	}

	cfg := domain.DefaultConfig()
	cfg.Options = domain.PackagerOptions{
		IgnoreScripts: file.Options.IgnoreScripts,
		FlatTree:      file.Options.FlatTree,
	}
	if file.Scripts != nil {
		cfg.Scripts = file.Scripts
	}
	if file.IgnoredListErrors != nil {
		cfg.IgnoredListErrors = file.IgnoredListErrors
	}
	return cfg, nil
}

func invalid(err error, path string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "path", path)
}
