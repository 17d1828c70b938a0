// Package state persists raw questionnaire answers between runs.
package state

import "github.com/groblegark/orcinus/internal/form"

// Store loads and saves raw answer snapshots. Persisted answers are
// best-effort: a store that cannot produce a previous snapshot returns an
// empty one, and the form falls back to its schema defaults.
type Store interface {
	// Load returns the persisted snapshot, or an empty one when nothing
	// usable is stored.
	Load() (form.Snapshot, error)

	// Save writes the snapshot, replacing any previous one.
	Save(form.Snapshot) error
}
