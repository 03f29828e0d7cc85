package sqlfhir

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ValueKind discriminates the possible types of an annotation value.
type ValueKind int

const (
	// KindString is the fallback kind for values that match no other pattern.
	KindString ValueKind = iota
	// KindBool covers the boolean token sets (true/yes/on/1, false/no/off/0).
	KindBool
	// KindInt covers whole-number values with an optional leading minus.
	KindInt
	// KindFloat covers decimal values of the form digits.digits.
	KindFloat
	// KindList covers comma-separated values and aggregated repeated keys.
	KindList
)

// String returns the lowercase kind name (e.g. "boolean", "integer").
func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindList:
		return "list"
	case KindString:
		return "string"
	}
	return "unknown"
}

// Value is the typed result of coercing a raw annotation value.
// It is a sum type over bool, int64, float64, []string and string;
// consumers switch on Kind() and read the matching accessor.
// The zero Value is the empty string.
type Value struct {
	kind ValueKind
	b    bool
	i    int64
	f    float64
	s    string
	list []string
}

// BoolValue creates a boolean Value.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// IntValue creates an integer Value.
func IntValue(i int64) Value { return Value{kind: KindInt, i: i} }

// FloatValue creates a floating-point Value.
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

// StringValue creates a string Value.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// ListValue creates a list Value. The slice is copied.
func ListValue(items []string) Value {
	return Value{kind: KindList, list: append([]string(nil), items...)}
}

// Kind returns the discriminator for this value.
func (v Value) Kind() ValueKind { return v.kind }

// Bool returns the boolean payload. Valid only when Kind is KindBool.
func (v Value) Bool() bool { return v.b }

// Int returns the integer payload. Valid only when Kind is KindInt.
func (v Value) Int() int64 { return v.i }

// Float returns the floating-point payload. Valid only when Kind is KindFloat.
func (v Value) Float() float64 { return v.f }

// Str returns the string payload. Valid only when Kind is KindString.
func (v Value) Str() string { return v.s }

// List returns a copy of the list payload. Valid only when Kind is KindList.
func (v Value) List() []string {
	return append([]string(nil), v.list...)
}

// String renders the value in its canonical textual form. Lists are joined
// with ", ". This rendering is used when a scalar is promoted into a list
// during aggregation and when values land in string-typed FHIR fields.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindList:
		return strings.Join(v.list, ", ")
	case KindString:
		return v.s
	}
	return v.s
}

// Interface returns the payload as a plain Go value (bool, int64, float64,
// []string or string), suitable for JSON serialization.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindList:
		return v.List()
	case KindString:
		return v.s
	}
	return v.s
}

// MarshalJSON serializes the value as its plain JSON representation.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}
