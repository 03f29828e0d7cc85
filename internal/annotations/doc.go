// Package annotations extracts @key: value annotations from SQL comments.
//
// The extractor scans SQL text once, left to right, with a state machine
// that recognizes line comments (-- to end of line), block comments
// (/* ... */), single-quoted strings with '' escapes, and dollar-quoted
// strings ($tag$ ... $tag$). Comment markers inside string literals never
// open a comment span. Within each span, annotation lines of the form
//
//	@key: value
//	@key = value
//	@key value
//
// are coerced to typed values (boolean, integer, float, list, string) and
// aggregated into an insertion-ordered sqlfhir.AnnotationMap. Repeated keys
// collapse into a flat ordered list of all occurrences.
//
// Malformed annotation lines are skipped silently; one bad comment line
// never aborts a whole-file parse.
package annotations
