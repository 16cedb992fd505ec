package commands

import (
	"os"

	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/index"
	"github.com/arthur-debert/dotman/pkg/logging"
	"github.com/arthur-debert/dotman/pkg/paths"
)

// Init creates the repository directory with its files/ subtree and
// an empty index, initializes the VCS repository, and registers the
// remote when a URL is given. Re-running on an existing repository
// keeps the existing index.
func Init(env *Env, remoteURL string) error {
	logger := logging.GetLogger("commands")

	if err := os.MkdirAll(paths.FilesRoot(env.ConfigDir), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", paths.FilesRoot(env.ConfigDir))
	}

	if _, err := os.Stat(paths.IndexPath(env.ConfigDir)); os.IsNotExist(err) {
		if err := index.Save(env.ConfigDir, index.New()); err != nil {
			return err
		}
	}

	if err := env.Git.Init(); err != nil {
		return err
	}
	if err := env.Git.SetDefaultBranch(env.Config.Git.Branch); err != nil {
		return err
	}
	if remoteURL != "" {
		if err := env.Git.AddRemote(env.Config.Git.Remote, remoteURL); err != nil {
			return err
		}
	}

	logger.Info().Str("configDir", env.ConfigDir).Str("remote", remoteURL).Msg("Repository initialized")
	return nil
}
