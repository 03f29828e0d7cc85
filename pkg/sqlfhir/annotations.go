package sqlfhir

import (
	"bytes"
	"encoding/json"
)

// AnnotationMap is an insertion-ordered mapping from annotation key to Value.
// Keys are case-sensitive as written in the source. A key that appears more
// than once collapses into a flat ordered list of all its occurrences; see
// Merge for the exact normalization rule.
type AnnotationMap struct {
	keys   []string
	values map[string]Value
}

// NewAnnotationMap creates an empty annotation map.
func NewAnnotationMap() *AnnotationMap {
	return &AnnotationMap{values: make(map[string]Value)}
}

// Len returns the number of distinct keys.
func (m *AnnotationMap) Len() int { return len(m.keys) }

// Keys returns the keys in first-seen order.
func (m *AnnotationMap) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Get returns the value stored for key and whether the key is present.
func (m *AnnotationMap) Get(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *AnnotationMap) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Merge inserts a value for key. The first occurrence stores the value
// directly. Later occurrences normalize the existing entry to a list first
// (a scalar is wrapped as its canonical string rendering), then append the
// new value; a list value appends its elements individually, never nested.
func (m *AnnotationMap) Merge(key string, v Value) {
	existing, ok := m.values[key]
	if !ok {
		m.keys = append(m.keys, key)
		m.values[key] = v
		return
	}

	var items []string
	if existing.Kind() == KindList {
		items = existing.List()
	} else {
		items = []string{existing.String()}
	}

	if v.Kind() == KindList {
		items = append(items, v.List()...)
	} else {
		items = append(items, v.String())
	}

	m.values[key] = ListValue(items)
}

// MarshalJSON serializes the map as a JSON object preserving insertion order.
func (m *AnnotationMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
