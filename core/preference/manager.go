package preference

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/dmitrymomot/lingo/core/i18n"
	"github.com/dmitrymomot/lingo/core/logger"
)

// Manager validates language choices against an I18n instance and degrades
// reads the same way key resolution does: a missing, failed, or unsupported
// stored preference yields the default language instead of an error.
type Manager struct {
	store Store
	i18n  *i18n.I18n

	// Optional diagnostics logger; nil keeps lookups silent.
	log *slog.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger attaches a logger for preference diagnostics: failed lookups
// and stored languages that are no longer supported.
func WithLogger(log *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if log != nil {
			m.log = log.With(logger.Component("preference"))
		}
	}
}

// NewManager creates a preference manager backed by the given store.
// Panics if store or service is nil, mirroring i18n.NewTranslator: a manager
// without either cannot do anything useful.
func NewManager(store Store, service *i18n.I18n, opts ...ManagerOption) *Manager {
	if store == nil {
		panic("preference store is not provided")
	}
	if service == nil {
		panic("localization service is not provided")
	}

	m := &Manager{
		store: store,
		i18n:  service,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Language returns the subject's stored language, or the default language
// when no usable preference exists. It never fails: store errors, unknown
// subjects, and stored languages outside the supported set all degrade to
// the default so rendering can always proceed.
func (m *Manager) Language(ctx context.Context, subjectID uuid.UUID) string {
	if lang, ok := m.Lookup(ctx, subjectID); ok {
		return lang
	}
	return m.i18n.DefaultLanguage()
}

// Lookup returns the subject's stored language and whether a usable one
// exists. Unlike Language it distinguishes "no preference" from "prefers the
// default", so detection chains can fall through to other sources.
func (m *Manager) Lookup(ctx context.Context, subjectID uuid.UUID) (string, bool) {
	if subjectID == uuid.Nil {
		return "", false
	}

	pref, err := m.store.Get(ctx, subjectID)
	if err != nil {
		if m.log != nil && !errors.Is(err, ErrNotFound) {
			m.log.Warn("failed to load language preference",
				logger.SubjectID(subjectID.String()), logger.Error(err))
		}
		return "", false
	}

	if !slices.Contains(m.i18n.Languages(), pref.Language) {
		if m.log != nil {
			m.log.Debug("stored language no longer supported",
				logger.SubjectID(subjectID.String()), logger.Language(pref.Language))
		}
		return "", false
	}

	return pref.Language, true
}

// SetLanguage stores the subject's language choice. The language must be in
// the I18n instance's supported set; anything else is rejected with
// ErrUnsupportedLanguage so callers cannot persist choices that resolution
// would silently ignore.
func (m *Manager) SetLanguage(ctx context.Context, subjectID uuid.UUID, lang string) error {
	if subjectID == uuid.Nil {
		return ErrMissingSubject
	}
	if !slices.Contains(m.i18n.Languages(), lang) {
		return fmt.Errorf("%w: %s", ErrUnsupportedLanguage, lang)
	}

	pref := &Preference{
		SubjectID: subjectID,
		Language:  lang,
	}
	if err := m.store.Save(ctx, pref); err != nil {
		return errors.Join(ErrSavePreference, err)
	}
	return nil
}

// Clear removes the subject's stored preference, returning lookups for that
// subject to the default language. Clearing an absent preference is a no-op.
func (m *Manager) Clear(ctx context.Context, subjectID uuid.UUID) error {
	if subjectID == uuid.Nil {
		return ErrMissingSubject
	}
	if err := m.store.Delete(ctx, subjectID); err != nil && !errors.Is(err, ErrNotFound) {
		return errors.Join(ErrDeletePreference, err)
	}
	return nil
}
