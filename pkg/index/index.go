// Package index implements the durable record of tracked dotfiles:
// an ordered, tab-delimited mapping from each file's original
// location under $HOME to its mirrored location in the repository.
package index

import (
	"github.com/arthur-debert/dotman/pkg/errors"
)

// Record is one tracked dotfile. Original is the canonical absolute
// path in the user's home tree; Repo is the mirrored path under the
// repository's files/ subtree.
type Record struct {
	Original string
	Repo     string
}

// Index is an ordered sequence of records, unique by Original.
// Insertion order is preserved; it affects only display and rewrite.
type Index struct {
	records []Record
}

// New returns an empty index
func New() *Index {
	return &Index{}
}

// Records returns the records in insertion order. The returned slice
// must not be mutated by the caller.
func (i *Index) Records() []Record {
	return i.records
}

// Len returns the number of tracked records
func (i *Index) Len() int {
	return len(i.records)
}

// Find returns the record for the given original path, if present
func (i *Index) Find(original string) (Record, bool) {
	for _, r := range i.records {
		if r.Original == original {
			return r, true
		}
	}
	return Record{}, false
}

// Contains reports whether a record exists for the original path
func (i *Index) Contains(original string) bool {
	_, ok := i.Find(original)
	return ok
}

// Append adds a record, enforcing the uniqueness invariant on
// Original.
func (i *Index) Append(r Record) error {
	if i.Contains(r.Original) {
		return errors.Newf(errors.ErrAlreadyTracked, "%s is already tracked", r.Original)
	}
	i.records = append(i.records, r)
	return nil
}

// Remove deletes the record for the original path, preserving the
// order of the remaining records. It reports whether a record was
// removed.
func (i *Index) Remove(original string) bool {
	for n, r := range i.records {
		if r.Original == original {
			i.records = append(i.records[:n], i.records[n+1:]...)
			return true
		}
	}
	return false
}
