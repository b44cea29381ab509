package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDateValueMapOrder(t *testing.T) {
	m := NewDateValueMap(3)
	m.Put("03/09/2024", 1.5)
	m.Put("03/10/2024", 2.5)
	m.Put("03/11/2024", 3.5)

	keys := m.Keys()
	want := []string{"03/09/2024", "03/10/2024", "03/11/2024"}
	for i, k := range want {
		if keys[i] != k {
			t.Fatalf("key %d: want %s got %s", i, k, keys[i])
		}
	}

	// Re-putting updates value, keeps position.
	m.Put("03/10/2024", 9)
	if v, _ := m.Get("03/10/2024"); v != 9 {
		t.Fatalf("expected updated value, got %v", v)
	}
	if m.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", m.Len())
	}
}

func TestDateValueMapMarshalOrder(t *testing.T) {
	m := NewDateValueMap(3)
	m.Put("12/31/2024", 3)
	m.Put("01/01/2025", 1)
	m.Put("01/02/2025", 2)

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)

	// Keys must appear in insertion order, not lexical order.
	i1 := strings.Index(s, "12/31/2024")
	i2 := strings.Index(s, "01/01/2025")
	i3 := strings.Index(s, "01/02/2025")
	if i1 < 0 || i2 < 0 || i3 < 0 || !(i1 < i2 && i2 < i3) {
		t.Fatalf("keys out of order: %s", s)
	}

	// Output must be a valid JSON object.
	var decoded map[string]float64
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output not a JSON object: %v", err)
	}
	if decoded["01/01/2025"] != 1 {
		t.Fatalf("unexpected value %v", decoded["01/01/2025"])
	}
}

func TestDateValueMapEmpty(t *testing.T) {
	m := NewDateValueMap(0)
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "{}" {
		t.Fatalf("expected empty object, got %s", data)
	}
}
