package paths

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotman/pkg/errors"
)

// Environment variable names
const (
	// EnvDotmanDir overrides the repository directory, used verbatim
	EnvDotmanDir = "DOTMAN_DIR"

	// EnvXDGDataHome is the XDG base data directory variable
	EnvXDGDataHome = "XDG_DATA_HOME"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
// IMPORTANT: These constants define dotman's repository structure and
// are NOT user-configurable. They must remain consistent across all
// dotman installations so that a repository cloned on one machine is
// usable on another.
const (
	// DotmanDirName is the directory name for dotman-specific files
	DotmanDirName = "dotman"

	// IndexFileName is the name of the serialized index file
	IndexFileName = "index.txt"

	// LockFileName is the name of the lock file guarding the index
	LockFileName = "index.lock"

	// FilesDirName is the subtree mirroring tracked files
	FilesDirName = "files"

	// ConfigFileName is the optional per-repository config file
	ConfigFileName = "dotman.toml"
)

// ConfigDir determines the repository directory. Priority order:
//  1. DOTMAN_DIR, used verbatim
//  2. XDG_DATA_HOME joined with "dotman"
//  3. $HOME/.config/dotman
//
// Only environment values are consulted; no filesystem access occurs.
func ConfigDir() (string, error) {
	if dir := os.Getenv(EnvDotmanDir); dir != "" {
		return dir, nil
	}

	if dataHome := os.Getenv(EnvXDGDataHome); dataHome != "" {
		return filepath.Join(dataHome, DotmanDirName), nil
	}

	home, err := HomeDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrConfigDirLookup, "cannot locate repository directory")
	}
	return filepath.Join(home, ".config", DotmanDirName), nil
}

// HomeDir returns the user's home directory from the environment,
// falling back to os.UserHomeDir. Its absence is a fatal
// configuration error for dotman.
func HomeDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", errors.New(errors.ErrNoHomeDir, "home directory is not set")
	}
	return home, nil
}

// CanonicalHomeDir returns the home directory with symlinks resolved.
// Tracked records always store paths relative to this canonical form
// so that containment checks and repo mirroring agree.
func CanonicalHomeDir() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	canon, err := filepath.EvalSymlinks(home)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve home directory %s", home)
	}
	return canon, nil
}

// IndexPath returns the path of the index file within configDir
func IndexPath(configDir string) string {
	return filepath.Join(configDir, IndexFileName)
}

// LockPath returns the path of the index lock file within configDir
func LockPath(configDir string) string {
	return filepath.Join(configDir, LockFileName)
}

// FilesRoot returns the root of the mirrored files/ subtree
func FilesRoot(configDir string) string {
	return filepath.Join(configDir, FilesDirName)
}

// ConfigFilePath returns the path of the optional repo config file
func ConfigFilePath(configDir string) string {
	return filepath.Join(configDir, ConfigFileName)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	home, err := HomeDir()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return home
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(home, path[2:])
	}

	// ~something (not the user's home)
	return path
}
