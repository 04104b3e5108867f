// Package i18n resolves dotted translation keys against immutable
// per-language catalogs, with a fixed fallback chain and {{name}} placeholder
// substitution.
//
// Catalogs are nested string trees organized by language and namespace. A
// translation key carries its namespace as the first dot-separated segment,
// so "common.buttons.save" looks up buttons.save inside the common namespace.
// All configuration happens at construction time, making instances immutable
// and safe for concurrent use without locking.
//
// # Basic Usage
//
// Create an I18n instance with translations and resolve keys:
//
//	import "github.com/dmitrymomot/lingo/core/i18n"
//
//	translations, err := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithTranslations("en", "common", map[string]any{
//			"close":   "Close",
//			"new":     "New",
//			"welcome": "Welcome, {{name}}!",
//		}),
//		i18n.WithTranslations("ko", "common", map[string]any{
//			"close": "닫기",
//		}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	translations.T("ko", "common.close")
//	// Output: "닫기"
//
//	translations.T("en", "common.welcome", i18n.M{"name": "Juno"})
//	// Output: "Welcome, Juno!"
//
// # Key Resolution
//
// A key splits on its first dot into a namespace and a remainder path. The
// remainder walks the namespace's nested tree segment by segment: every
// intermediate segment must name a nested group and the final segment must
// land on a message. A path that stops early, runs past a message, or names
// a missing child counts as absent.
//
//	i18n.WithTranslations("en", "editor", map[string]any{
//		"toolbar": map[string]any{
//			"bold":   "Bold",
//			"italic": "Italic",
//		},
//	})
//
//	translations.T("en", "editor.toolbar.bold")  // "Bold"
//	translations.T("en", "editor.toolbar")       // "editor.toolbar" (group, not a message)
//	translations.T("en", "editor.toolbar.bold.x") // "editor.toolbar.bold.x" (past a message)
//
// A key without any dot is malformed and comes back unchanged.
//
// # Language Fallback
//
// When a key is absent from the requested language, resolution retries the
// default language. A key absent from both comes back unchanged, so a broken
// UI shows "common.close" instead of an empty label:
//
//	translations.T("ko", "common.new")       // "New" (ko lacks it, en has it)
//	translations.T("ko", "common.missing")   // "common.missing"
//	translations.T("xx", "common.close")     // "Close" (unknown language, default serves)
//
// Unknown languages are not errors: resolution proceeds straight to the
// default-language catalog, and the diagnostics logger (if any) notes the
// unknown language.
//
// # Placeholders
//
// Message templates substitute {{name}} tokens from the parameter map. The
// template is scanned once, left to right; values are never re-expanded, a
// token without a matching parameter stays verbatim, and an absent map
// returns the template as-is:
//
//	translations.T("en", "common.welcome")                          // "Welcome, {{name}}!"
//	translations.T("en", "common.welcome", i18n.M{"other": "x"})    // "Welcome, {{name}}!"
//	translations.T("en", "common.welcome", i18n.M{"name": "Juno"})  // "Welcome, Juno!"
//
// # Catalog Loading
//
// Catalogs load from any fs.FS with one file per language and namespace,
// {lang}/{namespace}.json or {lang}/{namespace}.yaml:
//
//	//go:embed locales
//	var locales embed.FS
//
//	sub, _ := fs.Sub(locales, "locales")
//	translations, err := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithJSONDir(sub),
//	)
//
// Files that fail to parse abort construction; stray files outside the
// two-level layout are ignored.
//
// # Diagnostics
//
// Resolution never fails, so problems surface through optional diagnostics
// instead of return values. Attach a logger during development to see
// malformed keys, unknown languages, fallbacks, and misses, each with its own
// message; attach a missing-key handler to collect keys that resolve nowhere:
//
//	translations, err := i18n.New(
//		i18n.WithLogger(slog.Default()),
//		i18n.WithMissingKeyHandler(func(lang, namespace, key string) {
//			missing = append(missing, key)
//		}),
//	)
//
// Neither hook changes what T returns.
//
// # Bulk Access
//
// Translations returns a deep copy of a language's catalogs keyed by
// namespace, for settings screens or export tooling:
//
//	view := translations.Translations("ko")
//	// map[string]map[string]any{"common": {"close": "닫기"}}
//
// # Bound Translator
//
// The Translator type fixes the language once, which suits request handling
// where the language is detected per request but used many times:
//
//	t := i18n.NewTranslator(translations, "ko")
//	t.T("common.close")                     // "닫기"
//	t.T("common.welcome", i18n.M{"name": "Juno"})
//	t.Language()                            // "ko"
//
// # Thread Safety
//
// The I18n struct is immutable after creation and safe for concurrent use
// without synchronization:
//
//	var translations *i18n.I18n // initialized once at startup
//
//	go func() { _ = translations.T("en", "common.close") }() // Safe
//	go func() { _ = translations.T("ko", "common.close") }() // Safe
package i18n
