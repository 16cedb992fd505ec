// Package config loads the optional per-repository dotman.toml,
// layered as defaults, then file, then DOTMAN_ environment overrides.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/paths"
)

// Config is the per-repository configuration
type Config struct {
	Git GitConfig `koanf:"git"`
}

// GitConfig controls how the external VCS is invoked
type GitConfig struct {
	Binary        string `koanf:"binary"`
	Remote        string `koanf:"remote"`
	Branch        string `koanf:"branch"`
	CommitMessage string `koanf:"commit_message"`
}

// EnvPrefix is the prefix for environment overrides, e.g.
// DOTMAN_GIT_BINARY=/usr/local/bin/git.
const EnvPrefix = "DOTMAN_"

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"git.binary":         "git",
		"git.remote":         "origin",
		"git.branch":         "main",
		"git.commit_message": "dotman: update tracked files",
	}
}

// Load reads the configuration for the repository at configDir. A
// missing dotman.toml is not an error; defaults apply.
func Load(configDir string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default config")
	}

	path := paths.ConfigFilePath(configDir)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		// Only the first underscore separates the section from the
		// key, so DOTMAN_GIT_COMMIT_MESSAGE maps to git.commit_message.
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load config from environment")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal config")
	}

	return &cfg, nil
}
