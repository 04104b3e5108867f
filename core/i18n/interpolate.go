package i18n

import (
	"fmt"
	"maps"
	"regexp"
)

// placeholderPattern matches {{name}} tokens. Matching is exact: no
// whitespace trimming, so "{{ name }}" stays as-is in the output.
var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// ReplacePlaceholders replaces {{name}} placeholders in the template with
// values from the provided map. The template is scanned exactly once, left
// to right, so substituted values are never re-expanded. Placeholders
// without a matching value remain unchanged, and an empty map returns the
// template as-is.
//
// Example:
//
//	template: "Hello, {{name}}! You have {{count}} messages."
//	placeholders: M{"name": "John", "count": 5}
//	returns: "Hello, John! You have 5 messages."
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) == 0 {
		return template
	}

	return placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		name := token[2 : len(token)-2]
		value, ok := placeholders[name]
		if !ok {
			return token
		}
		return fmt.Sprintf("%v", value)
	})
}

// replacePlaceholdersWithMerge merges the placeholder maps, later maps
// winning on duplicate names, and applies the result to the template.
func replacePlaceholdersWithMerge(template string, placeholders ...M) string {
	if len(placeholders) == 0 {
		return template
	}

	merged := make(M)
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}

	return ReplacePlaceholders(template, merged)
}
