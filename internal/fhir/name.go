package fhir

import (
	"strings"
	"unicode"
)

// PascalCase derives a FHIR name identifier from a human-readable title.
// The title is split on whitespace and non-alphanumeric boundaries; each
// token is capitalized (rest lowercased) and the tokens are concatenated
// with no separator. Empty tokens are discarded.
func PascalCase(title string) string {
	words := strings.FieldsFunc(title, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var sb strings.Builder
	for _, word := range words {
		runes := []rune(word)
		sb.WriteString(strings.ToUpper(string(runes[0:1])))
		sb.WriteString(strings.ToLower(string(runes[1:])))
	}
	return sb.String()
}
