package commands

import (
	"os"

	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/index"
	"github.com/arthur-debert/dotman/pkg/logging"
	"github.com/arthur-debert/dotman/pkg/paths"
)

// Push stages everything, commits with the configured message, and
// pushes to the configured remote and branch. Any non-zero exit of
// the external tool is terminal.
func Push(env *Env) error {
	if err := env.Git.StageAll(); err != nil {
		return err
	}
	if err := env.Git.Commit(env.Config.Git.CommitMessage); err != nil {
		return err
	}
	return env.Git.Push(env.Config.Git.Remote, env.Config.Git.Branch)
}

// Pull discards the local index file and delegates to the external
// pull, so the post-pull index reflects only what is physically
// present in the synchronized tree. Destructive: local index changes
// that were never committed are lost. Runs under the index lock.
func Pull(env *Env) error {
	logger := logging.GetLogger("commands")

	release, err := index.Lock(env.ConfigDir)
	if err != nil {
		return err
	}
	defer release()

	indexPath := paths.IndexPath(env.ConfigDir)
	if err := os.Remove(indexPath); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to discard %s", indexPath)
	}
	logger.Debug().Str("path", indexPath).Msg("Discarded local index before pull")

	return env.Git.Pull()
}

// Sync is pull followed by push
func Sync(env *Env) error {
	if err := Pull(env); err != nil {
		return err
	}
	return Push(env)
}
