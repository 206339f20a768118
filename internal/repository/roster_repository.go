package repository

import (
	"sync"

	"github.com/rakhadjo/internhub/internal/models"
)

// RosterRepository holds the tracker roster in process memory. Writes are
// copy-on-write: every mutation rebuilds the backing slice, so a snapshot
// handed to a reader is never aliased to live state. The mutex guarantees
// readers observe a complete post-mutation roster.
type RosterRepository struct {
	mu      sync.RWMutex
	interns []models.Intern
}

// NewRosterRepository returns an empty roster.
func NewRosterRepository() *RosterRepository {
	return &RosterRepository{}
}

// Snapshot returns a copy of the full roster in insertion order.
func (r *RosterRepository) Snapshot() []models.Intern {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Intern, len(r.interns))
	copy(out, r.interns)
	return out
}

// Count returns the number of records held.
func (r *RosterRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.interns)
}

// FindByID returns the record with the given ID, if present.
func (r *RosterRepository) FindByID(id string) (models.Intern, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, in := range r.interns {
		if in.ID == id {
			return in, true
		}
	}
	return models.Intern{}, false
}

// Insert appends a record to the roster.
func (r *RosterRepository) Insert(in models.Intern) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make([]models.Intern, len(r.interns), len(r.interns)+1)
	copy(next, r.interns)
	r.interns = append(next, in)
}

// InsertBatch appends records in order.
func (r *RosterRepository) InsertBatch(batch []models.Intern) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make([]models.Intern, len(r.interns), len(r.interns)+len(batch))
	copy(next, r.interns)
	r.interns = append(next, batch...)
}

// Update replaces the record whose ID matches with fn's result. The record is
// passed to fn by value; returning it mutated replaces the stored copy whole.
// Reports whether a record matched.
func (r *RosterRepository) Update(id string, fn func(models.Intern) models.Intern) (models.Intern, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, in := range r.interns {
		if in.ID != id {
			continue
		}
		next := make([]models.Intern, len(r.interns))
		copy(next, r.interns)
		next[i] = fn(in)
		r.interns = next
		return next[i], true
	}
	return models.Intern{}, false
}
