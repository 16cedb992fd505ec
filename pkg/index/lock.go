package index

import (
	"os"

	"github.com/gofrs/flock"

	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/paths"
)

// Lock acquires an exclusive advisory lock guarding the index for the
// duration of a load-mutate-save sequence. The returned release
// function must be called on every exit path; two invocations racing
// on the same repository serialize here instead of clobbering each
// other's index writes.
func Lock(configDir string) (release func(), err error) {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrLockFailed, "failed to create %s", configDir)
	}

	fl := flock.New(paths.LockPath(configDir))
	if err := fl.Lock(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrLockFailed, "failed to lock index in %s", configDir)
	}

	return func() { _ = fl.Unlock() }, nil
}
