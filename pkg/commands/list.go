package commands

import (
	"github.com/arthur-debert/dotman/pkg/index"
	"github.com/arthur-debert/dotman/pkg/tracker"
)

// List classifies every tracked record. Read-only: no lock, no
// filesystem mutation.
func List(env *Env) ([]tracker.Status, error) {
	idx, err := index.Load(env.ConfigDir)
	if err != nil {
		return nil, err
	}

	tr := tracker.New(env.Home, env.ConfigDir, idx)
	return tr.Statuses(), nil
}
