package pg

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/lingo/core/preference"
)

// PreferenceStore persists language preferences in the language_preferences
// table. Apply the embedded migrations with MigratePreferences before use.
type PreferenceStore struct {
	pool *pgxpool.Pool
}

var _ preference.Store = (*PreferenceStore)(nil)

// NewPreferenceStore creates a preference store backed by the given pool.
func NewPreferenceStore(pool *pgxpool.Pool) *PreferenceStore {
	if pool == nil {
		panic("postgres pool is not provided")
	}
	return &PreferenceStore{pool: pool}
}

// dbtx is the query surface shared by pgxpool.Pool and pgx.Tx, letting the
// store participate in a caller's transaction via WithTx.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (s *PreferenceStore) db(ctx context.Context) dbtx {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return s.pool
}

// Get retrieves the preference for a subject.
func (s *PreferenceStore) Get(ctx context.Context, subjectID uuid.UUID) (*preference.Preference, error) {
	const q = `SELECT subject_id, language, created_at, updated_at
		FROM language_preferences WHERE subject_id = $1`

	var pref preference.Preference
	err := s.db(ctx).QueryRow(ctx, q, subjectID).
		Scan(&pref.SubjectID, &pref.Language, &pref.CreatedAt, &pref.UpdatedAt)
	if err != nil {
		if IsNotFoundError(err) {
			return nil, preference.ErrNotFound
		}
		return nil, err
	}
	return &pref, nil
}

// Save upserts the subject's preference. CreatedAt is preserved on update;
// UpdatedAt always reflects the write.
func (s *PreferenceStore) Save(ctx context.Context, pref *preference.Preference) error {
	if pref == nil || pref.SubjectID == uuid.Nil {
		return preference.ErrMissingSubject
	}

	const q = `INSERT INTO language_preferences (subject_id, language)
		VALUES ($1, $2)
		ON CONFLICT (subject_id) DO UPDATE
		SET language = EXCLUDED.language, updated_at = now()`

	if _, err := s.db(ctx).Exec(ctx, q, pref.SubjectID, pref.Language); err != nil {
		return errors.Join(preference.ErrSavePreference, err)
	}
	return nil
}

// Delete removes the subject's preference. Missing rows are ignored.
func (s *PreferenceStore) Delete(ctx context.Context, subjectID uuid.UUID) error {
	const q = `DELETE FROM language_preferences WHERE subject_id = $1`

	if _, err := s.db(ctx).Exec(ctx, q, subjectID); err != nil {
		return errors.Join(preference.ErrDeletePreference, err)
	}
	return nil
}
