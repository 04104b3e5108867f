// Package preference persists per-subject language choices and validates
// them against the application's supported language set.
//
// A subject is whatever the application keys language preferences by: a user
// ID, a device ID, a workspace ID. Stored preferences feed language detection
// in HTTP middleware so returning users keep their chosen language across
// sessions and devices.
//
// # Core Components
//
// The package provides three main types:
//
//   - Preference: A subject's stored language choice with timestamps
//   - Store: Interface for preference persistence (memory, Postgres, Redis)
//   - Manager: Validates choices against an i18n.I18n instance's languages
//
// # Basic Usage
//
// Create a manager over any Store implementation:
//
//	import (
//		"github.com/dmitrymomot/lingo/core/i18n"
//		"github.com/dmitrymomot/lingo/core/preference"
//	)
//
//	service, err := i18n.New(
//		i18n.WithTranslations("en", "common", map[string]any{"close": "Close"}),
//		i18n.WithTranslations("ko", "common", map[string]any{"close": "닫기"}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	manager := preference.NewManager(preference.NewMemoryStore(), service)
//
// Store a choice and read it back:
//
//	if err := manager.SetLanguage(ctx, userID, "ko"); err != nil {
//		// preference.ErrUnsupportedLanguage if "ko" is not a known language
//	}
//
//	lang := manager.Language(ctx, userID) // "ko"
//
// # Degradation
//
// Reads never fail. Manager.Language returns the default language when the
// subject has no stored preference, when the store errors, or when the stored
// language has since been removed from the supported set. Manager.Lookup
// additionally reports whether a usable choice existed, for detection chains
// that fall through to other sources. Writes are strict: Manager.SetLanguage
// rejects languages the I18n instance does not know, so a preference can
// never point at a catalog that does not exist.
//
// # Persistence
//
// NewMemoryStore suits tests and single-instance deployments. For durable
// storage use the Postgres and Redis implementations:
//
//	store := pg.NewPreferenceStore(pool)       // integration/database/pg
//	store := redis.NewPreferenceStore(client)  // integration/database/redis
//
// All Store implementations are safe for concurrent use.
package preference
