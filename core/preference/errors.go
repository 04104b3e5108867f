package preference

import "errors"

var (
	// ErrNotFound indicates the subject has no stored language preference.
	ErrNotFound = errors.New("language preference not found")
	// ErrMissingSubject indicates the preference has no subject ID.
	ErrMissingSubject = errors.New("subject ID is required")
	// ErrUnsupportedLanguage indicates the language is outside the supported set.
	ErrUnsupportedLanguage = errors.New("language is not supported")
	// ErrSavePreference indicates the store failed to persist a preference.
	ErrSavePreference = errors.New("failed to save language preference")
	// ErrDeletePreference indicates the store failed to remove a preference.
	ErrDeletePreference = errors.New("failed to delete language preference")
)
