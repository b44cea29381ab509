package models

import (
	"bytes"
	"encoding/json"
)

// DateValueMap is an insertion-ordered mapping from a formatted date to a
// forecast value. Go maps do not preserve order, so MarshalJSON emits keys in
// the order they were put.
type DateValueMap struct {
	keys   []string
	values map[string]float64
}

// NewDateValueMap creates an ordered mapping with the given capacity hint.
func NewDateValueMap(capacity int) *DateValueMap {
	return &DateValueMap{
		keys:   make([]string, 0, capacity),
		values: make(map[string]float64, capacity),
	}
}

// Put appends a key/value pair. Re-putting an existing key updates the value
// without changing its position.
func (m *DateValueMap) Put(key string, value float64) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for a key.
func (m *DateValueMap) Get(key string) (float64, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns keys in insertion order.
func (m *DateValueMap) Keys() []string {
	return m.keys
}

// Len returns the number of entries.
func (m *DateValueMap) Len() int {
	return len(m.keys)
}

// MarshalJSON renders a JSON object with keys in insertion order.
func (m *DateValueMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
