package annotations

import (
	"strings"
	"unicode"
)

// commentSpan is one contiguous comment region discovered in SQL text.
// It carries the inner text with the comment markers excluded.
type commentSpan struct {
	text  string
	block bool
}

// scanState tracks the scanner position relative to comments and strings.
type scanState int

const (
	stateNormal scanState = iota
	stateLineComment
	stateBlockComment
	stateSingleQuote
	stateDollarQuote
)

// scanComments walks the SQL text once and collects every comment span.
// A line comment runs from -- to the next newline; a block comment runs
// from /* to the matching */ or, when unterminated, to end of input.
// Block comments do not nest: a /* inside an open block is plain text.
// Markers inside single-quoted or dollar-quoted strings are ignored.
func scanComments(sql string) []commentSpan {
	if len(sql) == 0 {
		return nil
	}

	var spans []commentSpan
	var inner strings.Builder

	state := stateNormal
	dollarTag := ""

	runes := []rune(sql)
	i := 0

	for i < len(runes) {
		r := runes[i]
		var next rune
		if i+1 < len(runes) {
			next = runes[i+1]
		}

		switch state {
		case stateNormal:
			if r == '-' && next == '-' {
				state = stateLineComment
				i += 2
			} else if r == '/' && next == '*' {
				state = stateBlockComment
				i += 2
			} else if r == '\'' {
				state = stateSingleQuote
				i++
			} else if r == '$' {
				if tag := extractDollarTag(runes, i); tag != "" {
					state = stateDollarQuote
					dollarTag = tag
					i += len([]rune(tag))
				} else {
					i++
				}
			} else {
				i++
			}

		case stateLineComment:
			if r == '\n' {
				spans = append(spans, commentSpan{text: inner.String()})
				inner.Reset()
				state = stateNormal
				i++
			} else if r == '\r' && next == '\n' {
				spans = append(spans, commentSpan{text: inner.String()})
				inner.Reset()
				state = stateNormal
				i += 2
			} else {
				inner.WriteRune(r)
				i++
			}

		case stateBlockComment:
			if r == '*' && next == '/' {
				spans = append(spans, commentSpan{text: inner.String(), block: true})
				inner.Reset()
				state = stateNormal
				i += 2
			} else {
				inner.WriteRune(r)
				i++
			}

		case stateSingleQuote:
			if r == '\'' {
				// '' is an escaped quote, not a terminator
				if next == '\'' {
					i += 2
				} else {
					state = stateNormal
					i++
				}
			} else {
				i++
			}

		case stateDollarQuote:
			if matchesDollarTag(runes, i, dollarTag) {
				i += len([]rune(dollarTag))
				state = stateNormal
				dollarTag = ""
			} else {
				i++
			}
		}
	}

	// Unterminated comment at end of input still yields a span.
	if state == stateLineComment || state == stateBlockComment {
		spans = append(spans, commentSpan{text: inner.String(), block: state == stateBlockComment})
	}

	return spans
}

// extractDollarTag extracts a dollar-quote tag starting at position i.
// Returns the full tag (e.g. "$$" or "$tag$") or empty string if the
// dollar sign does not open a valid tag.
func extractDollarTag(runes []rune, i int) string {
	if i >= len(runes) || runes[i] != '$' {
		return ""
	}

	j := i + 1
	for j < len(runes) {
		r := runes[j]
		if r == '$' {
			return string(runes[i : j+1])
		}
		if j == i+1 {
			// First char after $ must be a letter or underscore;
			// $1 is a positional parameter, not a tag.
			if !unicode.IsLetter(r) && r != '_' {
				return ""
			}
		} else {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				return ""
			}
		}
		j++
	}

	return ""
}

// matchesDollarTag checks whether the runes at position i start with tag.
func matchesDollarTag(runes []rune, i int, tag string) bool {
	tagRunes := []rune(tag)
	if i+len(tagRunes) > len(runes) {
		return false
	}
	for j, tr := range tagRunes {
		if runes[i+j] != tr {
			return false
		}
	}
	return true
}
