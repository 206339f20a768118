package repository

import (
	"sync"

	"github.com/rakhadjo/internhub/internal/models"
)

// CandidateRepository holds the candidate roster in process memory with the
// same copy-on-write discipline as RosterRepository.
type CandidateRepository struct {
	mu         sync.RWMutex
	candidates []models.Candidate
}

// NewCandidateRepository returns an empty candidate store.
func NewCandidateRepository() *CandidateRepository {
	return &CandidateRepository{}
}

// Snapshot returns a copy of all candidates in insertion order.
func (r *CandidateRepository) Snapshot() []models.Candidate {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Candidate, len(r.candidates))
	copy(out, r.candidates)
	return out
}

// Count returns the number of records held.
func (r *CandidateRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.candidates)
}

// FindByID returns the candidate with the given ID, if present.
func (r *CandidateRepository) FindByID(id string) (models.Candidate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.candidates {
		if c.ID == id {
			return c, true
		}
	}
	return models.Candidate{}, false
}

// Insert appends a candidate.
func (r *CandidateRepository) Insert(c models.Candidate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make([]models.Candidate, len(r.candidates), len(r.candidates)+1)
	copy(next, r.candidates)
	r.candidates = append(next, c)
}

// Update replaces the candidate whose ID matches with fn's result. Reports
// whether a record matched.
func (r *CandidateRepository) Update(id string, fn func(models.Candidate) models.Candidate) (models.Candidate, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.candidates {
		if c.ID != id {
			continue
		}
		next := make([]models.Candidate, len(r.candidates))
		copy(next, r.candidates)
		next[i] = fn(c)
		r.candidates = next
		return next[i], true
	}
	return models.Candidate{}, false
}
