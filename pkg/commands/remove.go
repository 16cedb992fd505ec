package commands

import (
	"github.com/arthur-debert/dotman/pkg/index"
	"github.com/arthur-debert/dotman/pkg/tracker"
)

// Remove untracks a file: load-mutate-save under the index lock
func Remove(env *Env, userPath string) (index.Record, error) {
	release, err := index.Lock(env.ConfigDir)
	if err != nil {
		return index.Record{}, err
	}
	defer release()

	idx, err := index.Load(env.ConfigDir)
	if err != nil {
		return index.Record{}, err
	}

	tr := tracker.New(env.Home, env.ConfigDir, idx)
	rec, err := tr.Remove(userPath)
	if err != nil {
		return index.Record{}, err
	}

	if err := index.Save(env.ConfigDir, idx); err != nil {
		return index.Record{}, err
	}
	return rec, nil
}
