package config

import (
	"encoding/json"
	"math"
	"slices"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	defaults := DefaultValues()

	expected := map[string]any{
		KeyLogOutputLevel: 6,
		KeyURL:            "http://localhost:80",
		KeyTitle:          "pi-topOS First Time Setup",
		KeyScreenWidth:    1920,
		KeyScreenHeight:   1080,
		KeyWindowWidth:    0.65,
		KeyWindowHeight:   0.55,
	}

	for k, want := range expected {
		got, ok := defaults[k]
		if !ok {
			t.Errorf("DefaultValues() missing key %q", k)
			continue
		}
		if got != want {
			t.Errorf("DefaultValues()[%q] = %v, want %v", k, got, want)
		}
	}
	if _, ok := defaults[KeyBrowserCommand]; !ok {
		t.Errorf("DefaultValues() missing key %q", KeyBrowserCommand)
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   int
		wantOK bool
	}{
		{"int", 7, 7, true},
		{"int64", int64(-3), -3, true},
		{"uint8", uint8(200), 200, true},
		{"whole float", 7.0, 7, true},
		{"fractional float", 7.5, 0, false},
		{"nan", math.NaN(), 0, false},
		{"inf", math.Inf(1), 0, false},
		{"too large", 1e300, 0, false},
		{"json number", json.Number("42"), 42, true},
		{"json float number", json.Number("4.0"), 4, true},
		{"string", "7", 0, false},
		{"bool", true, 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Int(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Int(%v) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		in     any
		want   float64
		wantOK bool
	}{
		{0.5, 0.5, true},
		{float32(0.25), 0.25, true},
		{3, 3, true},
		{json.Number("0.75"), 0.75, true},
		{"0.5", 0, false},
		{nil, 0, false},
	}

	for _, tt := range tests {
		got, ok := Float(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Float(%v) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestGetFloat(t *testing.T) {
	s := newMemStore(map[string]any{
		KeyWindowWidth:  0.8,
		KeyWindowHeight: "wide",
	})

	if got := GetFloat(s, KeyWindowWidth, 0.65); got != 0.8 {
		t.Errorf("GetFloat(windowWidth) = %v, want 0.8", got)
	}
	if got := GetFloat(s, KeyWindowHeight, 0.55); got != 0.55 {
		t.Errorf("GetFloat(windowHeight) = %v, want default 0.55", got)
	}
	if got := GetFloat(s, "missing", 1); got != 1 {
		t.Errorf("GetFloat(missing) = %v, want default 1", got)
	}
}

// memStore is a simple in-memory Store for testing.
type memStore struct {
	keys []string
	data map[string]any
}

func newMemStore(data map[string]any) *memStore {
	m := &memStore{data: make(map[string]any)}
	for k, v := range data {
		m.keys = append(m.keys, k)
		m.data[k] = v
	}
	slices.Sort(m.keys)
	return m
}

func (m *memStore) GetValue(property string) (any, bool) {
	v, ok := m.data[property]
	return v, ok
}

func (m *memStore) GetInt(property string, defaultValue int) int {
	if n, ok := Int(m.data[property]); ok {
		return n
	}
	return defaultValue
}

func (m *memStore) GetString(property, defaultValue string) string {
	if s, ok := m.data[property].(string); ok {
		return s
	}
	return defaultValue
}

func (m *memStore) ArrayValueToStringList(property string) []string {
	out := []string{}
	items, _ := m.data[property].([]any)
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func (m *memStore) SetValue(property string, value any) error {
	if _, ok := m.data[property]; !ok {
		m.keys = append(m.keys, property)
	}
	m.data[property] = value
	return nil
}

func (m *memStore) RemoveValue(property string) error {
	delete(m.data, property)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == property })
	return nil
}

func (m *memStore) Keys() []string {
	return slices.Clone(m.keys)
}

func (m *memStore) Path() string {
	return "mem.json"
}
