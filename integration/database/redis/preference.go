package redis

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/lingo/core/preference"
)

// preferenceKeyPrefix namespaces preference hashes so they can coexist with
// other application data in a shared Redis instance.
const preferenceKeyPrefix = "lingo:pref:"

// Hash field names for stored preferences.
const (
	fieldLanguage  = "language"
	fieldCreatedAt = "created_at"
	fieldUpdatedAt = "updated_at"
)

// PreferenceStore persists language preferences as Redis hashes, one per
// subject under the lingo:pref: key prefix. Preferences have no TTL; they
// live until explicitly deleted.
type PreferenceStore struct {
	client *redis.Client
}

var _ preference.Store = (*PreferenceStore)(nil)

// NewPreferenceStore creates a preference store backed by the given client.
func NewPreferenceStore(client *redis.Client) *PreferenceStore {
	if client == nil {
		panic("redis client is not provided")
	}
	return &PreferenceStore{client: client}
}

func preferenceKey(subjectID uuid.UUID) string {
	return preferenceKeyPrefix + subjectID.String()
}

// Get retrieves the preference for a subject.
func (s *PreferenceStore) Get(ctx context.Context, subjectID uuid.UUID) (*preference.Preference, error) {
	fields, err := s.client.HGetAll(ctx, preferenceKey(subjectID)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, preference.ErrNotFound
	}

	pref := &preference.Preference{
		SubjectID: subjectID,
		Language:  fields[fieldLanguage],
	}
	if ts, err := time.Parse(time.RFC3339Nano, fields[fieldCreatedAt]); err == nil {
		pref.CreatedAt = ts
	}
	if ts, err := time.Parse(time.RFC3339Nano, fields[fieldUpdatedAt]); err == nil {
		pref.UpdatedAt = ts
	}
	return pref, nil
}

// Save upserts the subject's preference. CreatedAt is preserved on update;
// UpdatedAt always reflects the write. Both fields are written atomically
// with the language via a transactional pipeline.
func (s *PreferenceStore) Save(ctx context.Context, pref *preference.Preference) error {
	if pref == nil || pref.SubjectID == uuid.Nil {
		return preference.ErrMissingSubject
	}

	key := preferenceKey(pref.SubjectID)
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSetNX(ctx, key, fieldCreatedAt, now)
		pipe.HSet(ctx, key, fieldLanguage, pref.Language, fieldUpdatedAt, now)
		return nil
	})
	if err != nil {
		return errors.Join(preference.ErrSavePreference, err)
	}
	return nil
}

// Delete removes the subject's preference. Missing keys are ignored.
func (s *PreferenceStore) Delete(ctx context.Context, subjectID uuid.UUID) error {
	if err := s.client.Del(ctx, preferenceKey(subjectID)).Err(); err != nil {
		return errors.Join(preference.ErrDeletePreference, err)
	}
	return nil
}
