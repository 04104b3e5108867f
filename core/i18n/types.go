package i18n

// M is a convenience type for parameter maps passed to translations.
// It maps placeholder names to the values substituted for them.
type M map[string]any
