// Package tracker implements the symlink state machine that
// reconciles on-disk reality with the index: adding a file mirrors it
// into the repository's files/ subtree as a symlink back to the
// original, removing undoes exactly what add (or the user) left
// behind, and listing classifies each record without side effects.
package tracker

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/index"
	"github.com/arthur-debert/dotman/pkg/logging"
	"github.com/arthur-debert/dotman/pkg/paths"
)

// Tracker bundles the resolved home directory, the repository
// directory and the loaded index for one command invocation. No
// ambient global state: every operation goes through a Tracker.
type Tracker struct {
	home      string
	configDir string
	idx       *index.Index
}

// New creates a tracker. home must be canonical (symlinks resolved),
// see paths.CanonicalHomeDir.
func New(home, configDir string, idx *index.Index) *Tracker {
	return &Tracker{home: home, configDir: configDir, idx: idx}
}

// Index returns the index owned by this tracker
func (t *Tracker) Index() *index.Index {
	return t.idx
}

// Add starts tracking userPath: the path is canonicalized and checked
// against the home boundary, mirrored under files/, and linked from
// the repository side back to the original. The original file is not
// moved. On any failure the index and filesystem are left unchanged.
func (t *Tracker) Add(userPath string) (index.Record, error) {
	logger := logging.GetLogger("tracker")

	original, err := paths.ResolveInHome(userPath, t.home)
	if err != nil {
		return index.Record{}, err
	}

	if t.idx.Contains(original) {
		return index.Record{}, errors.Newf(errors.ErrAlreadyTracked, "%s is already tracked", original)
	}

	repo, err := paths.RepoPath(paths.FilesRoot(t.configDir), t.home, original)
	if err != nil {
		return index.Record{}, err
	}

	if err := os.MkdirAll(filepath.Dir(repo), 0755); err != nil {
		return index.Record{}, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(repo))
	}

	if err := t.linkRepoToOriginal(repo, original); err != nil {
		return index.Record{}, err
	}

	rec := index.Record{Original: original, Repo: repo}
	if err := t.idx.Append(rec); err != nil {
		return index.Record{}, err
	}

	logger.Info().Str("original", original).Str("repo", repo).Msg("File tracked")
	return rec, nil
}

// linkRepoToOriginal creates the repo-side symlink. A stale entry at
// the repo path is replaced; a link already pointing at the original
// is kept as is.
func (t *Tracker) linkRepoToOriginal(repo, original string) error {
	if target, err := os.Readlink(repo); err == nil && target == original {
		return nil
	}

	if _, err := os.Lstat(repo); err == nil {
		if err := os.Remove(repo); err != nil {
			return errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to replace stale entry %s", repo)
		}
	}

	if err := os.Symlink(original, repo); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to link %s", repo)
	}
	return nil
}

// Remove stops tracking userPath. The original location is touched
// only when it is currently a symlink back to the repository entry;
// anything else there is left alone. The repo-side entry is deleted,
// tolerating its prior absence, and the record is removed preserving
// index order.
func (t *Tracker) Remove(userPath string) (index.Record, error) {
	logger := logging.GetLogger("tracker")

	original, err := t.resolveForRemove(userPath)
	if err != nil {
		return index.Record{}, err
	}

	rec, ok := t.idx.Find(original)
	if !ok {
		return index.Record{}, errors.Newf(errors.ErrNotTracked, "%s is not tracked", original)
	}

	if target, err := os.Readlink(rec.Original); err == nil && target == rec.Repo {
		if err := os.Remove(rec.Original); err != nil {
			return index.Record{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to remove link %s", rec.Original)
		}
		logger.Debug().Str("original", rec.Original).Msg("Removed original-side link")
	}

	if err := os.Remove(rec.Repo); err != nil && !os.IsNotExist(err) {
		return index.Record{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to remove repository entry %s", rec.Repo)
	}

	t.idx.Remove(original)
	logger.Info().Str("original", original).Msg("File untracked")
	return rec, nil
}

// resolveForRemove canonicalizes like Add but keeps the final path
// component literal: the tracked original may itself be a symlink into
// the repository, and following it would carry the path outside home.
// When the parent directory no longer exists on disk it falls back to
// the lexical absolute path so out-of-band-deleted files can still be
// untracked.
func (t *Tracker) resolveForRemove(userPath string) (string, error) {
	original, err := paths.ResolveInHomeNoFollow(userPath, t.home)
	if err == nil {
		return original, nil
	}
	if errors.IsErrorCode(err, errors.ErrNotInHome) {
		return "", err
	}
	return paths.ResolveLexical(userPath, t.home)
}
