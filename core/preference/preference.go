package preference

import (
	"time"

	"github.com/google/uuid"
)

// Preference is a subject's stored language choice. The subject is whatever
// the application keys preferences by: a user ID, a device ID, a workspace ID.
type Preference struct {
	SubjectID uuid.UUID
	Language  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
