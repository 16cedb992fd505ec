// Package commands implements one orchestration function per dotman
// command: resolve the repository directory, take the index lock,
// load, mutate through the tracker, persist, and where requested
// delegate to the VCS gateway.
package commands

import (
	"github.com/arthur-debert/dotman/pkg/config"
	"github.com/arthur-debert/dotman/pkg/git"
	"github.com/arthur-debert/dotman/pkg/paths"
)

// Env bundles the resolved home directory, repository directory,
// configuration and VCS gateway for one command invocation. It
// replaces any ambient global state; every command receives it
// explicitly.
type Env struct {
	Home      string
	ConfigDir string
	Config    *config.Config
	Git       git.Client
}

// NewEnv resolves the environment for a command invocation
func NewEnv() (*Env, error) {
	configDir, err := paths.ConfigDir()
	if err != nil {
		return nil, err
	}

	home, err := paths.CanonicalHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, err
	}

	return &Env{
		Home:      home,
		ConfigDir: configDir,
		Config:    cfg,
		Git:       git.NewShellClient(configDir, cfg.Git.Binary),
	}, nil
}
