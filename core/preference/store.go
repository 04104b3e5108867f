package preference

import (
	"context"

	"github.com/google/uuid"
)

// Store defines the persistence interface for language preferences.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get retrieves the preference for a subject.
	// Returns ErrNotFound if the subject has no stored preference.
	Get(ctx context.Context, subjectID uuid.UUID) (*Preference, error)

	// Save inserts or updates the subject's preference.
	Save(ctx context.Context, pref *Preference) error

	// Delete removes the subject's preference.
	// Deleting a preference that does not exist is not an error.
	Delete(ctx context.Context, subjectID uuid.UUID) error
}
