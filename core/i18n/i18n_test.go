package i18n_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo/core/i18n"
)

func TestNew(t *testing.T) {
	t.Run("creates instance with defaults", func(t *testing.T) {
		translations, err := i18n.New()
		require.NoError(t, err)
		assert.NotNil(t, translations)
		assert.Equal(t, "en", translations.DefaultLanguage())
	})

	t.Run("sets custom default language", func(t *testing.T) {
		translations, err := i18n.New(
			i18n.WithDefaultLanguage("ko"),
		)
		require.NoError(t, err)
		assert.Equal(t, "ko", translations.DefaultLanguage())
	})

	t.Run("returns error for empty default language", func(t *testing.T) {
		_, err := i18n.New(
			i18n.WithDefaultLanguage(""),
		)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "language cannot be empty")
	})

	t.Run("loads translations", func(t *testing.T) {
		translations, err := i18n.New(
			i18n.WithTranslations("en", "common", map[string]any{
				"close": "Close",
			}),
		)
		require.NoError(t, err)
		assert.Equal(t, "Close", translations.T("en", "common.close"))
	})

	t.Run("returns error for empty language in translations", func(t *testing.T) {
		_, err := i18n.New(
			i18n.WithTranslations("", "common", map[string]any{
				"close": "Close",
			}),
		)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "language cannot be empty")
	})

	t.Run("returns error for empty namespace in translations", func(t *testing.T) {
		_, err := i18n.New(
			i18n.WithTranslations("en", "", map[string]any{
				"close": "Close",
			}),
		)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "namespace cannot be empty")
	})

	t.Run("allows empty translations map", func(t *testing.T) {
		translations, err := i18n.New(
			i18n.WithTranslations("en", "common", map[string]any{}),
		)
		require.NoError(t, err)
		assert.NotNil(t, translations)
	})

	t.Run("returns error for nil logger", func(t *testing.T) {
		_, err := i18n.New(
			i18n.WithLogger(nil),
		)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "logger cannot be nil")
	})

	t.Run("merges repeated namespace registrations", func(t *testing.T) {
		translations, err := i18n.New(
			i18n.WithTranslations("en", "common", map[string]any{
				"close": "Close",
			}),
			i18n.WithTranslations("en", "common", map[string]any{
				"new": "New",
			}),
		)
		require.NoError(t, err)
		assert.Equal(t, "Close", translations.T("en", "common.close"))
		assert.Equal(t, "New", translations.T("en", "common.new"))
	})

	t.Run("later registrations win on conflict", func(t *testing.T) {
		translations, err := i18n.New(
			i18n.WithTranslations("en", "common", map[string]any{
				"close": "Shut",
			}),
			i18n.WithTranslations("en", "common", map[string]any{
				"close": "Close",
			}),
		)
		require.NoError(t, err)
		assert.Equal(t, "Close", translations.T("en", "common.close"))
	})

	t.Run("stringifies non-string leaves", func(t *testing.T) {
		translations, err := i18n.New(
			i18n.WithTranslations("en", "meta", map[string]any{
				"version": 42,
				"beta":    true,
			}),
		)
		require.NoError(t, err)
		assert.Equal(t, "42", translations.T("en", "meta.version"))
		assert.Equal(t, "true", translations.T("en", "meta.beta"))
	})
}

func setupCatalog() *i18n.I18n {
	translations, _ := i18n.New(
		i18n.WithDefaultLanguage("en"),
		i18n.WithTranslations("en", "common", map[string]any{
			"close":      "Close",
			"new":        "New",
			"welcome":    "Welcome, {{name}}!",
			"goodbye":    "Goodbye, {{name}}! See you {{when}}.",
			"minutesAgo": "{{count}} minutes ago",
			"buttons": map[string]any{
				"save":   "Save",
				"cancel": "Cancel",
			},
		}),
		i18n.WithTranslations("en", "editor", map[string]any{
			"untitled": "Untitled document",
			"toolbar": map[string]any{
				"bold": "Bold",
				"insert": map[string]any{
					"image": "Insert image",
					"table": "Insert table",
				},
			},
		}),
		i18n.WithTranslations("ko", "common", map[string]any{
			"close":   "닫기",
			"welcome": "{{name}}님, 환영합니다!",
			"buttons": map[string]any{
				"save": "저장",
			},
		}),
		i18n.WithTranslations("ja", "common", map[string]any{
			"close": "閉じる",
		}),
	)
	return translations
}

func TestT(t *testing.T) {
	t.Run("returns translation for requested language", func(t *testing.T) {
		translations := setupCatalog()
		assert.Equal(t, "닫기", translations.T("ko", "common.close"))
	})

	t.Run("returns translation for default language", func(t *testing.T) {
		translations := setupCatalog()
		assert.Equal(t, "Close", translations.T("en", "common.close"))
	})

	t.Run("returns nested translation", func(t *testing.T) {
		translations := setupCatalog()
		assert.Equal(t, "Save", translations.T("en", "common.buttons.save"))
	})

	t.Run("returns deeply nested translation", func(t *testing.T) {
		translations := setupCatalog()
		assert.Equal(t, "Insert image", translations.T("en", "editor.toolbar.insert.image"))
	})

	t.Run("falls back to default language", func(t *testing.T) {
		translations := setupCatalog()
		// "new" is not translated in Korean
		assert.Equal(t, "New", translations.T("ko", "common.new"))
	})

	t.Run("falls back for nested keys too", func(t *testing.T) {
		translations := setupCatalog()
		// Korean has buttons.save but not buttons.cancel
		assert.Equal(t, "저장", translations.T("ko", "common.buttons.save"))
		assert.Equal(t, "Cancel", translations.T("ko", "common.buttons.cancel"))
	})

	t.Run("returns key when translation missing everywhere", func(t *testing.T) {
		translations := setupCatalog()
		assert.Equal(t, "common.does_not_exist", translations.T("ko", "common.does_not_exist"))
	})

	t.Run("returns key when namespace does not exist", func(t *testing.T) {
		translations := setupCatalog()
		assert.Equal(t, "billing.plan", translations.T("en", "billing.plan"))
	})

	t.Run("returns malformed key unchanged", func(t *testing.T) {
		translations := setupCatalog()
		assert.Equal(t, "nodot", translations.T("en", "nodot"))
	})

	t.Run("returns key when path stops on a group", func(t *testing.T) {
		translations := setupCatalog()
		assert.Equal(t, "common.buttons", translations.T("en", "common.buttons"))
	})

	t.Run("returns key when path continues past a message", func(t *testing.T) {
		translations := setupCatalog()
		assert.Equal(t, "common.close.extra", translations.T("en", "common.close.extra"))
	})

	t.Run("treats unknown language as absent", func(t *testing.T) {
		translations := setupCatalog()
		assert.Equal(t, "Close", translations.T("fr", "common.close"))
	})

	t.Run("returns key for unknown language and unknown key", func(t *testing.T) {
		translations := setupCatalog()
		assert.Equal(t, "common.nope", translations.T("fr", "common.nope"))
	})

	t.Run("substitutes placeholder", func(t *testing.T) {
		translations := setupCatalog()
		assert.Equal(t, "Welcome, John!", translations.T("en", "common.welcome", i18n.M{"name": "John"}))
	})

	t.Run("substitutes placeholders in non-default language", func(t *testing.T) {
		translations := setupCatalog()
		assert.Equal(t, "지수님, 환영합니다!", translations.T("ko", "common.welcome", i18n.M{"name": "지수"}))
	})

	t.Run("substitutes numeric values", func(t *testing.T) {
		translations := setupCatalog()
		assert.Equal(t, "5 minutes ago", translations.T("en", "common.minutesAgo", i18n.M{"count": 5}))
	})

	t.Run("merges multiple placeholder maps", func(t *testing.T) {
		translations := setupCatalog()
		result := translations.T("en", "common.goodbye",
			i18n.M{"name": "Bob"},
			i18n.M{"when": "later"},
		)
		assert.Equal(t, "Goodbye, Bob! See you later.", result)
	})

	t.Run("later placeholder maps override earlier ones", func(t *testing.T) {
		translations := setupCatalog()
		result := translations.T("en", "common.welcome",
			i18n.M{"name": "Initial"},
			i18n.M{"name": "Override"},
		)
		assert.Equal(t, "Welcome, Override!", result)
	})

	t.Run("leaves unmatched placeholders unchanged", func(t *testing.T) {
		translations := setupCatalog()
		assert.Equal(t, "Welcome, {{name}}!", translations.T("en", "common.welcome", i18n.M{"other": "value"}))
	})

	t.Run("handles empty placeholder maps", func(t *testing.T) {
		translations := setupCatalog()
		assert.Equal(t, "Welcome, {{name}}!", translations.T("en", "common.welcome"))
	})

	t.Run("handles nil placeholder maps", func(t *testing.T) {
		translations := setupCatalog()
		assert.Equal(t, "Welcome, {{name}}!", translations.T("en", "common.welcome", nil))
	})

	t.Run("returns missing key without interpolating it", func(t *testing.T) {
		translations := setupCatalog()
		assert.Equal(t, "common.{{name}}", translations.T("en", "common.{{name}}", i18n.M{"name": "x"}))
	})

	t.Run("resolves identically on repeated calls", func(t *testing.T) {
		translations := setupCatalog()
		first := translations.T("ko", "common.new")
		second := translations.T("ko", "common.new")
		assert.Equal(t, first, second)
	})
}

func TestTranslations(t *testing.T) {
	t.Run("returns per-namespace view", func(t *testing.T) {
		translations := setupCatalog()
		view := translations.Translations("en")
		require.Contains(t, view, "common")
		require.Contains(t, view, "editor")
		assert.Equal(t, "Close", view["common"]["close"])

		toolbar, ok := view["editor"]["toolbar"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Bold", toolbar["bold"])
	})

	t.Run("returns requested language view", func(t *testing.T) {
		translations := setupCatalog()
		view := translations.Translations("ko")
		require.Contains(t, view, "common")
		assert.Equal(t, "닫기", view["common"]["close"])
	})

	t.Run("returns default view for unknown language", func(t *testing.T) {
		translations := setupCatalog()
		view := translations.Translations("zz")
		require.Contains(t, view, "common")
		assert.Equal(t, "Close", view["common"]["close"])
	})

	t.Run("mutating the view does not affect the catalog", func(t *testing.T) {
		translations := setupCatalog()
		view := translations.Translations("en")
		view["common"]["close"] = "HACKED"
		delete(view, "editor")
		assert.Equal(t, "Close", translations.T("en", "common.close"))
		assert.Equal(t, "Bold", translations.T("en", "editor.toolbar.bold"))
	})

	t.Run("every key in the default view resolves to a non-empty message", func(t *testing.T) {
		translations := setupCatalog()

		var keys []string
		var walk func(prefix string, tree map[string]any)
		walk = func(prefix string, tree map[string]any) {
			for name, value := range tree {
				full := prefix + "." + name
				switch child := value.(type) {
				case string:
					keys = append(keys, full)
				case map[string]any:
					walk(full, child)
				}
			}
		}
		for namespace, tree := range translations.Translations("en") {
			walk(namespace, tree)
		}

		require.NotEmpty(t, keys)
		for _, key := range keys {
			assert.NotEmpty(t, translations.T("en", key), "key %s resolved empty", key)
		}
	})
}

func TestLanguages(t *testing.T) {
	t.Run("default language comes first, rest sorted", func(t *testing.T) {
		translations := setupCatalog()
		assert.Equal(t, []string{"en", "ja", "ko"}, translations.Languages())
	})

	t.Run("includes declared languages without catalogs", func(t *testing.T) {
		translations, err := i18n.New(
			i18n.WithDefaultLanguage("en"),
			i18n.WithLanguages("de"),
			i18n.WithTranslations("ko", "common", map[string]any{"close": "닫기"}),
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"en", "de", "ko"}, translations.Languages())
	})

	t.Run("contains only the default when nothing else is configured", func(t *testing.T) {
		translations, err := i18n.New()
		require.NoError(t, err)
		assert.Equal(t, []string{"en"}, translations.Languages())
	})
}

func TestDiagnostics(t *testing.T) {
	setup := func() (*i18n.I18n, *bytes.Buffer) {
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		translations, _ := i18n.New(
			i18n.WithDefaultLanguage("en"),
			i18n.WithLogger(log),
			i18n.WithTranslations("en", "common", map[string]any{
				"close": "Close",
				"new":   "New",
			}),
			i18n.WithTranslations("ko", "common", map[string]any{
				"close": "닫기",
			}),
		)
		return translations, &buf
	}

	t.Run("logs malformed keys", func(t *testing.T) {
		translations, buf := setup()
		result := translations.T("en", "nodot")
		assert.Equal(t, "nodot", result)
		assert.Contains(t, buf.String(), "malformed translation key")
	})

	t.Run("distinguishes unknown language from unknown key", func(t *testing.T) {
		translations, buf := setup()

		translations.T("fr", "common.close")
		assert.Contains(t, buf.String(), "unknown language requested")
		assert.NotContains(t, buf.String(), "translation missing")

		buf.Reset()
		translations.T("ko", "common.gone")
		assert.Contains(t, buf.String(), "translation missing")
		assert.NotContains(t, buf.String(), "unknown language requested")
	})

	t.Run("logs fallback at debug level", func(t *testing.T) {
		translations, buf := setup()
		assert.Equal(t, "New", translations.T("ko", "common.new"))
		assert.Contains(t, buf.String(), "translation fell back to default language")
	})

	t.Run("stays silent on direct hits", func(t *testing.T) {
		translations, buf := setup()
		translations.T("ko", "common.close")
		assert.Empty(t, buf.String())
	})

	t.Run("calls missing key handler with parsed namespace", func(t *testing.T) {
		type miss struct{ lang, namespace, key string }
		var misses []miss

		translations, err := i18n.New(
			i18n.WithTranslations("en", "common", map[string]any{"close": "Close"}),
			i18n.WithMissingKeyHandler(func(lang, namespace, key string) {
				misses = append(misses, miss{lang, namespace, key})
			}),
		)
		require.NoError(t, err)

		translations.T("ko", "common.gone")
		translations.T("en", "nodot")

		require.Len(t, misses, 2)
		assert.Equal(t, miss{"ko", "common", "common.gone"}, misses[0])
		assert.Equal(t, miss{"en", "", "nodot"}, misses[1])
	})

	t.Run("handler is not called on fallback hits", func(t *testing.T) {
		var called bool
		translations, err := i18n.New(
			i18n.WithTranslations("en", "common", map[string]any{"new": "New"}),
			i18n.WithTranslations("ko", "common", map[string]any{"close": "닫기"}),
			i18n.WithMissingKeyHandler(func(lang, namespace, key string) {
				called = true
			}),
		)
		require.NoError(t, err)

		assert.Equal(t, "New", translations.T("ko", "common.new"))
		assert.False(t, called)
	})

	t.Run("diagnostics never change the result", func(t *testing.T) {
		translations, _ := setup()
		assert.Equal(t, "common.gone", translations.T("ko", "common.gone"))
		assert.Equal(t, "nodot", translations.T("en", "nodot"))
	})
}

func TestConcurrency(t *testing.T) {
	t.Run("concurrent reads are safe", func(t *testing.T) {
		translations := setupCatalog()

		done := make(chan bool, 100)
		for i := 0; i < 100; i++ {
			go func(n int) {
				defer func() { done <- true }()

				switch n % 3 {
				case 0:
					result := translations.T("en", "common.close")
					assert.Equal(t, "Close", result)
				case 1:
					result := translations.T("ko", "common.new")
					assert.Equal(t, "New", result)
				case 2:
					view := translations.Translations("ko")
					assert.Equal(t, "닫기", view["common"]["close"])
				}
			}(i)
		}

		for i := 0; i < 100; i++ {
			<-done
		}
	})
}
