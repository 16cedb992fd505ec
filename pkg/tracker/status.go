package tracker

import (
	"os"

	"github.com/arthur-debert/dotman/pkg/index"
)

// LinkState classifies one tracked record by inspecting the
// filesystem. The state is never stored; it is recomputed on every
// inspection.
type LinkState int

const (
	// StateOK means the repo-side entry is a symlink targeting the original
	StateOK LinkState = iota

	// StateBadLink means the repo-side symlink targets something else
	StateBadLink

	// StateNotLinked means the repo-side entry exists but is not a symlink
	StateNotLinked

	// StateBrokenLink means the repo-side entry cannot be read as a
	// link. A repo entry deleted out from under the index reports
	// this state too rather than a state of its own.
	StateBrokenLink

	// StateMissing means the original file was deleted out-of-band
	StateMissing
)

// String returns the display tag for the state
func (s LinkState) String() string {
	switch s {
	case StateOK:
		return "OK"
	case StateBadLink:
		return "Bad link"
	case StateNotLinked:
		return "Not a link"
	case StateBrokenLink:
		return "Broken link"
	case StateMissing:
		return "Missing"
	default:
		return "Unknown"
	}
}

// Status pairs a record with its current on-disk classification
type Status struct {
	Record index.Record
	State  LinkState
}

// Classify inspects a single record's on-disk status. A deleted
// original wins over any repo-side state.
func (t *Tracker) Classify(rec index.Record) LinkState {
	if _, err := os.Lstat(rec.Original); err != nil && os.IsNotExist(err) {
		return StateMissing
	}

	fi, err := os.Lstat(rec.Repo)
	if err != nil {
		// Covers both an unreadable entry and one deleted entirely.
		return StateBrokenLink
	}
	if fi.Mode()&os.ModeSymlink == 0 {
		return StateNotLinked
	}

	target, err := os.Readlink(rec.Repo)
	if err != nil {
		return StateBrokenLink
	}
	if target != rec.Original {
		return StateBadLink
	}
	return StateOK
}

// Statuses classifies every record in index order. It performs no
// filesystem mutation.
func (t *Tracker) Statuses() []Status {
	statuses := make([]Status, 0, t.idx.Len())
	for _, rec := range t.idx.Records() {
		statuses = append(statuses, Status{Record: rec, State: t.Classify(rec)})
	}
	return statuses
}
