package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/lingo/core/i18n"
	"github.com/dmitrymomot/lingo/core/logger"
	"github.com/dmitrymomot/lingo/core/preference"
)

// i18nTranslatorContextKey is used as a key for storing the translator in request context.
type i18nTranslatorContextKey struct{}

// Default request sources for the detected language.
const (
	DefaultQueryParam = "lang"
	DefaultCookieName = "lang"
)

// I18nConfig configures the i18n middleware.
type I18nConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// I18n is the localization service to resolve languages against (required)
	I18n *i18n.I18n
	// QueryParam is the query parameter checked first for an explicit language
	// Default: "lang"
	QueryParam string
	// CookieName is the cookie checked after the query parameter
	// Default: "lang"
	CookieName string
	// Preferences optionally supplies stored per-subject language choices,
	// consulted after the cookie. Requires SubjectID.
	Preferences *preference.Manager
	// SubjectID extracts the preference subject from the request, typically
	// from an authenticated session. Ignored when Preferences is nil.
	SubjectID func(r *http.Request) (uuid.UUID, bool)
	// LanguageExtractor replaces the whole detection chain when set.
	// An empty result falls back to the default language.
	LanguageExtractor func(r *http.Request) string
	// Logger enables detection diagnostics at debug level
	Logger *slog.Logger
}

// I18n creates an i18n middleware with default configuration. It detects the
// request language from the lang query parameter, the lang cookie, and the
// Accept-Language header, then stores a bound translator in the request
// context for handlers to retrieve with GetTranslator.
func I18n(service *i18n.I18n) func(http.Handler) http.Handler {
	return I18nWithConfig(I18nConfig{I18n: service})
}

// I18nWithConfig creates an i18n middleware with custom configuration.
//
// Detection checks sources in order and takes the first usable value:
// query parameter, cookie, stored preference (when configured), then
// Accept-Language matching. Query and cookie values must name a supported
// language exactly; Accept-Language goes through golang.org/x/text matching
// so regional variants like ko-KR land on the ko catalog. When every source
// misses, the default language wins.
func I18nWithConfig(cfg I18nConfig) func(http.Handler) http.Handler {
	if cfg.I18n == nil {
		panic("i18n middleware: i18n instance is required")
	}

	if cfg.QueryParam == "" {
		cfg.QueryParam = DefaultQueryParam
	}
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}
	if cfg.Logger != nil {
		cfg.Logger = cfg.Logger.With(logger.Component("middleware.i18n"))
	}

	// The supported set is fixed once the service is built, so the matcher
	// is constructed once per middleware, not per request.
	codes, matcher := buildMatcher(cfg.I18n.Languages())

	detect := func(r *http.Request) (string, string) {
		if lang := r.URL.Query().Get(cfg.QueryParam); lang != "" && slices.Contains(codes, lang) {
			return lang, "query"
		}

		if cookie, err := r.Cookie(cfg.CookieName); err == nil &&
			cookie.Value != "" && slices.Contains(codes, cookie.Value) {
			return cookie.Value, "cookie"
		}

		if cfg.Preferences != nil && cfg.SubjectID != nil {
			if subjectID, ok := cfg.SubjectID(r); ok {
				if lang, ok := cfg.Preferences.Lookup(r.Context(), subjectID); ok {
					return lang, "preference"
				}
			}
		}

		if header := r.Header.Get("Accept-Language"); header != "" {
			if lang, ok := matchAcceptLanguage(matcher, codes, header); ok {
				return lang, "accept-language"
			}
		}

		return cfg.I18n.DefaultLanguage(), "default"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			var lang, source string
			if cfg.LanguageExtractor != nil {
				lang, source = cfg.LanguageExtractor(r), "extractor"
				if lang == "" {
					lang, source = cfg.I18n.DefaultLanguage(), "default"
				}
			} else {
				lang, source = detect(r)
			}

			if cfg.Logger != nil {
				cfg.Logger.Debug("request language detected",
					logger.Language(lang), slog.String("source", source))
			}

			translator := i18n.NewTranslator(cfg.I18n, lang)
			ctx := context.WithValue(r.Context(), i18nTranslatorContextKey{}, translator)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetTranslator retrieves the translator from the context.
// Returns the translator and a boolean indicating whether it was found.
func GetTranslator(ctx context.Context) (*i18n.Translator, bool) {
	translator, ok := ctx.Value(i18nTranslatorContextKey{}).(*i18n.Translator)
	return translator, ok
}

// SetLanguageCookie writes the language cookie the middleware reads, letting
// language switcher endpoints persist a visitor's choice without auth. The
// cookie stays readable from client-side code, so HttpOnly is not set.
func SetLanguageCookie(w http.ResponseWriter, name, lang string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    lang,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// buildMatcher compiles the supported languages into an x/text matcher.
// Codes that fail to parse are skipped so one bad code cannot break
// detection; the returned slice holds the codes that made it in, aligned
// with the matcher's internal indexes.
func buildMatcher(languages []string) ([]string, language.Matcher) {
	codes := make([]string, 0, len(languages))
	tags := make([]language.Tag, 0, len(languages))
	for _, code := range languages {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		codes = append(codes, code)
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		tags = append(tags, language.English)
		codes = append(codes, "en")
	}
	return codes, language.NewMatcher(tags)
}

// matchAcceptLanguage resolves an Accept-Language header against the
// supported set. Reports false when the header is unparseable or nothing
// matches with any confidence, so detection can fall through to the default.
func matchAcceptLanguage(matcher language.Matcher, codes []string, header string) (string, bool) {
	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return "", false
	}
	if _, index, conf := matcher.Match(desired...); conf > language.No {
		return codes[index], true
	}
	return "", false
}
