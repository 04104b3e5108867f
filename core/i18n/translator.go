package i18n

// Translator provides a simplified translation interface with a fixed
// language context. It wraps an I18n instance and eliminates the need to
// pass the language to every call, which suits per-request use where the
// language is determined once.
type Translator struct {
	i18n     *I18n
	language string
}

// NewTranslator creates a new Translator bound to the given language.
// An empty language binds the instance's default language.
func NewTranslator(i18n *I18n, language string) *Translator {
	if i18n == nil {
		panic("localization service is not provided")
	}
	if language == "" {
		language = i18n.DefaultLanguage()
	}
	return &Translator{
		i18n:     i18n,
		language: language,
	}
}

// T resolves a dotted translation key using the translator's bound language.
// Placeholders in the translation are replaced with values from the provided maps.
func (t *Translator) T(key string, placeholders ...M) string {
	return t.i18n.T(t.language, key, placeholders...)
}

// Language returns the language the translator is bound to.
func (t *Translator) Language() string {
	return t.language
}

// Translations returns the per-namespace catalog view for the bound language.
func (t *Translator) Translations() map[string]map[string]any {
	return t.i18n.Translations(t.language)
}
