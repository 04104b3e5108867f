package preference

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore implements Store using in-memory storage.
// Suitable for tests and single-instance deployments; preferences
// do not survive process restarts.
type MemoryStore struct {
	mu    sync.RWMutex
	prefs map[uuid.UUID]Preference
}

// NewMemoryStore creates an empty in-memory preference store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		prefs: make(map[uuid.UUID]Preference),
	}
}

// Get retrieves the preference for a subject.
func (s *MemoryStore) Get(ctx context.Context, subjectID uuid.UUID) (*Preference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pref, ok := s.prefs[subjectID]
	if !ok {
		return nil, ErrNotFound
	}
	// Copy so callers cannot mutate stored state.
	return &pref, nil
}

// Save inserts or updates the subject's preference. CreatedAt is preserved
// on update; UpdatedAt is always set to the current time.
func (s *MemoryStore) Save(ctx context.Context, pref *Preference) error {
	if pref == nil || pref.SubjectID == uuid.Nil {
		return ErrMissingSubject
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	stored := *pref
	stored.UpdatedAt = now
	if existing, ok := s.prefs[pref.SubjectID]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}

	s.prefs[pref.SubjectID] = stored
	pref.CreatedAt = stored.CreatedAt
	pref.UpdatedAt = stored.UpdatedAt
	return nil
}

// Delete removes the subject's preference. Missing preferences are ignored.
func (s *MemoryStore) Delete(ctx context.Context, subjectID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.prefs, subjectID)
	return nil
}
