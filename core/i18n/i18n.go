package i18n

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/dmitrymomot/lingo/core/logger"
)

// DefaultLang is the default language code used when no default language is specified.
const DefaultLang = "en"

// I18n resolves dotted translation keys against per-language catalogs.
// It is immutable after creation, making it safe for concurrent use.
type I18n struct {
	// Per-language translation trees; the top level of each tree holds namespaces.
	catalogs map[string]branch

	// Default/fallback language.
	defaultLang string

	// Pre-computed list of supported languages (default first, rest sorted).
	languages []string

	// Membership set over languages, for unknown-language detection.
	supported map[string]struct{}

	// Optional handler called when a key resolves nowhere.
	missingKeyHandler func(lang, namespace, key string)

	// Optional diagnostics logger; nil keeps resolution silent.
	log *slog.Logger
}

// Option configures the I18n instance during construction.
type Option func(*I18n) error

// New creates a new I18n instance with the given options.
// All configuration happens during construction, making the instance
// immutable and thread-safe from creation.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		catalogs:    make(map[string]branch),
		defaultLang: DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if i.defaultLang == "" {
		return nil, fmt.Errorf("default language cannot be empty")
	}

	i.languages = i.buildLanguagesList()
	i.supported = make(map[string]struct{}, len(i.languages))
	for _, lang := range i.languages {
		i.supported[lang] = struct{}{}
	}

	return i, nil
}

// WithDefaultLanguage sets the default/fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return fmt.Errorf("language cannot be empty")
		}
		i.defaultLang = lang
		return nil
	}
}

// WithLanguages declares supported languages beyond those that have catalogs.
// The final language list always contains the default language first; the
// rest are sorted alphabetically.
func WithLanguages(langs ...string) Option {
	return func(i *I18n) error {
		i.languages = append(i.languages, langs...)
		return nil
	}
}

// WithMissingKeyHandler sets a handler function that will be called when a
// translation key is not found in any language (including the default
// fallback). This is useful for collecting missing translations during
// development. The handler receives the requested language, the parsed
// namespace (empty for malformed keys), and the full dotted key.
func WithMissingKeyHandler(handler func(lang, namespace, key string)) Option {
	return func(i *I18n) error {
		i.missingKeyHandler = handler
		return nil
	}
}

// WithLogger attaches a logger for resolution diagnostics: malformed keys,
// unknown languages, default-language fallbacks, and misses. Diagnostics are
// advisory and never change what T returns.
func WithLogger(log *slog.Logger) Option {
	return func(i *I18n) error {
		if log == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		i.log = log.With(logger.Component("i18n"))
		return nil
	}
}

// WithTranslations loads translations for a specific language and namespace.
// The translations map may nest arbitrarily: string values become message
// templates, nested maps become subtrees, and other scalars are stringified.
// Registering the same namespace again merges the trees, later registrations
// winning on conflict.
func WithTranslations(lang, namespace string, translations map[string]any) Option {
	return func(i *I18n) error {
		if lang == "" {
			return fmt.Errorf("language cannot be empty")
		}
		if namespace == "" {
			return fmt.Errorf("namespace cannot be empty")
		}
		if len(translations) == 0 {
			return nil // Empty translations are allowed
		}
		i.graft(lang, namespace, translations)
		return nil
	}
}

// graft attaches a namespace subtree to a language catalog, merging with any
// previously registered content for that namespace.
func (i *I18n) graft(lang, namespace string, translations map[string]any) {
	root := i.catalogs[lang]
	if root == nil {
		root = make(branch)
		i.catalogs[lang] = root
	}
	sub := newBranch(translations)
	if existing, ok := root[namespace].(branch); ok {
		root[namespace] = merge(existing, sub)
		return
	}
	root[namespace] = sub
}

// T resolves a dotted translation key for the given language and applies
// placeholder substitution to the result. The key carries its namespace as
// the first dot-separated segment: "common.buttons.save".
//
// Resolution degrades instead of failing: a key absent from the requested
// language is retried against the default language, and a key absent
// everywhere (or malformed, or asked of an unknown language) comes back
// unchanged so callers render the key itself rather than an empty string.
// The returned key is never interpolated.
func (i *I18n) T(lang, key string, placeholders ...M) string {
	namespace, rest, found := strings.Cut(key, ".")
	if !found {
		if i.log != nil {
			i.log.Warn("malformed translation key",
				logger.Language(lang), logger.TranslationKey(key))
		}
		if i.missingKeyHandler != nil {
			i.missingKeyHandler(lang, "", key)
		}
		return key
	}
	path := append([]string{namespace}, strings.Split(rest, ".")...)

	if _, known := i.supported[lang]; !known && i.log != nil {
		i.log.Warn("unknown language requested",
			logger.Language(lang), logger.TranslationKey(key))
	}

	if root, ok := i.catalogs[lang]; ok {
		if template, ok := root.resolve(path); ok {
			return replacePlaceholdersWithMerge(template, placeholders...)
		}
	}

	if lang != i.defaultLang {
		if root, ok := i.catalogs[i.defaultLang]; ok {
			if template, ok := root.resolve(path); ok {
				if i.log != nil {
					i.log.Debug("translation fell back to default language",
						logger.Language(lang), logger.TranslationKey(key))
				}
				return replacePlaceholdersWithMerge(template, placeholders...)
			}
		}
	}

	if i.missingKeyHandler != nil {
		i.missingKeyHandler(lang, namespace, key)
	}
	if i.log != nil {
		i.log.Warn("translation missing",
			logger.Language(lang), logger.Namespace(namespace), logger.TranslationKey(key))
	}

	return key
}

// Translations returns a deep copy of the per-namespace catalog view for the
// given language, suitable for bulk export or settings screens. An unknown
// language yields the default language's view. Mutating the returned maps
// does not affect the catalog.
func (i *I18n) Translations(lang string) map[string]map[string]any {
	root, ok := i.catalogs[lang]
	if !ok {
		if _, known := i.supported[lang]; !known && i.log != nil {
			i.log.Warn("unknown language requested", logger.Language(lang))
		}
		root = i.catalogs[i.defaultLang]
	}

	view := make(map[string]map[string]any, len(root))
	for namespace, sub := range root {
		if b, ok := sub.(branch); ok {
			view[namespace] = b.toMap()
		}
	}
	return view
}

// Languages returns all supported languages. The default language is always
// first, followed by the other languages sorted alphabetically. The returned
// slice is a copy; mutating it does not affect the instance.
func (i *I18n) Languages() []string {
	return slices.Clone(i.languages)
}

// DefaultLanguage returns the default language code configured for the
// instance. If no default language was explicitly set, returns DefaultLang.
func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

// buildLanguagesList computes the supported language set from the default
// language, languages declared via WithLanguages, and every language that
// has a catalog.
func (i *I18n) buildLanguagesList() []string {
	set := make(map[string]struct{}, len(i.languages)+len(i.catalogs))
	for _, lang := range i.languages {
		if lang != "" {
			set[lang] = struct{}{}
		}
	}
	for lang := range i.catalogs {
		set[lang] = struct{}{}
	}
	delete(set, i.defaultLang)

	others := make([]string, 0, len(set))
	for lang := range set {
		others = append(others, lang)
	}
	slices.Sort(others)

	return append([]string{i.defaultLang}, others...)
}
