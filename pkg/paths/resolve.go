package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotman/pkg/errors"
)

// ResolveLexical resolves userPath without touching the filesystem:
// ~ is expanded, . and .. are collapsed, and a relative result is
// joined onto home.
func ResolveLexical(userPath, home string) (string, error) {
	if userPath == "" {
		return "", errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}
	if strings.Contains(userPath, "\x00") {
		return "", errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	cleaned := filepath.Clean(ExpandHome(userPath))
	if !filepath.IsAbs(cleaned) {
		cleaned = filepath.Join(home, cleaned)
	}
	return cleaned, nil
}

// ResolveInHome converts userPath to its canonical absolute form and
// enforces the home containment invariant. Canonicalization resolves
// symlinks against the real filesystem, so it fails if the target does
// not exist, and a symlink pointing outside home cannot escape the
// safety boundary. home must itself be canonical (see CanonicalHomeDir).
func ResolveInHome(userPath, home string) (string, error) {
	lexical, err := ResolveLexical(userPath, home)
	if err != nil {
		return "", err
	}

	canonical, err := filepath.EvalSymlinks(lexical)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve %s", lexical)
	}

	if !IsWithin(home, canonical) {
		return "", errors.Newf(errors.ErrNotInHome, "%s is outside the home directory", canonical).
			WithDetail("path", canonical).
			WithDetail("home", home)
	}

	return canonical, nil
}

// ResolveInHomeNoFollow resolves userPath like ResolveInHome but
// without following a symlink at the final path component: the parent
// directory is canonicalized and the basename re-joined. Removal uses
// this so that an original location currently holding a link into the
// repository still resolves to its home-side path instead of
// canonicalizing through the link and out of the home boundary.
func ResolveInHomeNoFollow(userPath, home string) (string, error) {
	lexical, err := ResolveLexical(userPath, home)
	if err != nil {
		return "", err
	}

	dir := filepath.Dir(lexical)
	canonDir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve %s", dir)
	}

	resolved := filepath.Join(canonDir, filepath.Base(lexical))
	if !IsWithin(home, resolved) {
		return "", errors.Newf(errors.ErrNotInHome, "%s is outside the home directory", resolved).
			WithDetail("path", resolved).
			WithDetail("home", home)
	}

	return resolved, nil
}

// IsWithin reports whether path lies strictly inside root: it must
// start with root followed immediately by a separator. root itself
// does not count.
func IsWithin(root, path string) bool {
	return strings.HasPrefix(path, root+string(filepath.Separator))
}

// RepoPath mirrors originalAbs (which must lie under home) into the
// files/ subtree: filesRoot + "/" + (originalAbs relative to home).
func RepoPath(filesRoot, home, originalAbs string) (string, error) {
	rel, err := filepath.Rel(home, originalAbs)
	if err != nil || rel == "." || rel == "" || strings.HasPrefix(rel, "..") {
		return "", errors.Newf(errors.ErrInvalidRel, "cannot mirror %s under the repository", originalAbs)
	}
	return filepath.Join(filesRoot, rel), nil
}
