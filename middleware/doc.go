// Package middleware provides net/http middleware that detects the request
// language and exposes a request-scoped translator to handlers.
//
// The middleware follows a consistent pattern: a default constructor for
// common use cases, a WithConfig constructor for advanced configuration, a
// Skip hook to bypass specific requests, and a context helper for retrieving
// stored values.
//
// # Language Detection
//
// Detection checks request sources in order and takes the first usable value:
//
//   - Query parameter (?lang=ko) for explicit, shareable overrides
//   - Cookie (lang=ko) for persisted visitor choices
//   - Stored preference, when a preference.Manager is configured
//   - Accept-Language header, matched via golang.org/x/text/language
//   - The service's default language
//
// Query and cookie values must name a supported language exactly.
// Accept-Language values go through real language matching, so a browser
// sending ko-KR,ko;q=0.9 lands on the ko catalog.
//
// # Basic Usage
//
//	import (
//		"net/http"
//
//		"github.com/dmitrymomot/lingo/core/i18n"
//		"github.com/dmitrymomot/lingo/middleware"
//	)
//
//	func main() {
//		service, _ := i18n.New(
//			i18n.WithTranslations("en", "common", map[string]any{"greeting": "Hello, {{name}}!"}),
//			i18n.WithTranslations("ko", "common", map[string]any{"greeting": "안녕하세요, {{name}}님!"}),
//		)
//
//		mux := http.NewServeMux()
//		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
//			t, _ := middleware.GetTranslator(r.Context())
//			w.Write([]byte(t.T("common.greeting", i18n.M{"name": "Jisoo"})))
//		})
//
//		http.ListenAndServe(":8080", middleware.I18n(service)(mux))
//	}
//
// # Persisted Choices
//
// Wire a preference.Manager to honor per-user stored languages for
// authenticated traffic:
//
//	handler := middleware.I18nWithConfig(middleware.I18nConfig{
//		I18n:        service,
//		Preferences: prefManager,
//		SubjectID: func(r *http.Request) (uuid.UUID, bool) {
//			return sessionUserID(r)
//		},
//	})(mux)
//
// Anonymous visitors keep a choice via the cookie instead:
//
//	mux.HandleFunc("POST /language", func(w http.ResponseWriter, r *http.Request) {
//		middleware.SetLanguageCookie(w, middleware.DefaultCookieName, r.FormValue("lang"), 365*24*time.Hour)
//		w.WriteHeader(http.StatusNoContent)
//	})
package middleware
