package annotations

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/healthforge/sqlfhir/pkg/sqlfhir"
)

// annotationRegex matches a single @key value annotation line.
// Separator is a colon, an equals sign, or plain whitespace; the value
// extends to the end of the line.
var annotationRegex = regexp.MustCompile(`^@([A-Za-z_][A-Za-z0-9_]*)(?:\s*[:=]\s*|\s+)(.+)$`)

var (
	intRegex   = regexp.MustCompile(`^-?[0-9]+$`)
	floatRegex = regexp.MustCompile(`^-?[0-9]+\.[0-9]+$`)
)

// ParseContent extracts all annotations from SQL text.
// Empty input yields an empty map, never an error.
func ParseContent(sql string) *sqlfhir.AnnotationMap {
	result := sqlfhir.NewAnnotationMap()

	for _, span := range scanComments(sql) {
		// Block comment inner text is scanned line by line; a line
		// comment span is a single line already.
		for _, line := range strings.Split(span.text, "\n") {
			key, value, ok := matchAnnotation(line)
			if !ok {
				continue
			}
			result.Merge(key, coerce(value))
		}
	}

	return result
}

// ParseFile reads a SQL file and extracts its annotations.
// Missing or unreadable files return a *sqlfhir.FileAccessError.
func ParseFile(path string) (*sqlfhir.AnnotationMap, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &sqlfhir.FileAccessError{Path: path, Err: err}
	}
	return ParseContent(string(content)), nil
}

// matchAnnotation recognizes one annotation on a comment line.
// Leading whitespace and decorative asterisks (block comment gutters)
// are tolerated. Lines without a valid @identifier or with an empty
// value are skipped.
func matchAnnotation(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	line = strings.TrimSpace(strings.TrimLeft(line, "*"))

	m := annotationRegex.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}

	value = stripQuotes(strings.TrimSpace(m[2]))
	if value == "" {
		return "", "", false
	}
	return m[1], value, true
}

// stripQuotes removes one layer of surrounding matching quotes.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// coerce converts a raw trimmed value to its typed form. The ladder is:
// boolean tokens, integer, float, comma-separated list, plain string.
// List elements stay strings; they are not coerced recursively.
func coerce(value string) sqlfhir.Value {
	switch strings.ToLower(value) {
	case "true", "yes", "on", "1":
		return sqlfhir.BoolValue(true)
	case "false", "no", "off", "0":
		return sqlfhir.BoolValue(false)
	}

	if intRegex.MatchString(value) {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return sqlfhir.IntValue(i)
		}
	}

	if floatRegex.MatchString(value) {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return sqlfhir.FloatValue(f)
		}
	}

	if items, ok := splitTopLevel(value); ok {
		return sqlfhir.ListValue(items)
	}

	return sqlfhir.StringValue(value)
}

// splitTopLevel splits value on commas outside quoted segments.
// Returns ok=false when the value contains no top-level comma.
func splitTopLevel(value string) (items []string, ok bool) {
	var current strings.Builder
	var quote rune

	for _, r := range value {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
			current.WriteRune(r)
		case r == '\'' || r == '"':
			quote = r
			current.WriteRune(r)
		case r == ',':
			ok = true
			items = append(items, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	if !ok {
		return nil, false
	}
	items = append(items, strings.TrimSpace(current.String()))
	return items, true
}
