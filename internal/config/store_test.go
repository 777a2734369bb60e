package config

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStore_Empty verifies that an empty store reports every key as absent.
func TestStore_Empty(t *testing.T) {
	s := NewStore()

	v, ok := s.Get("anything")
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.False(t, s.Contains("anything"))
	assert.Zero(t, s.Len())
	assert.Empty(t, slices.Collect(s.Keys()))
}

// TestStore_NilReadsAsEmpty verifies that read operations on a nil *Store do
// not panic.
func TestStore_NilReadsAsEmpty(t *testing.T) {
	var s *Store

	v, ok := s.Get("x")
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.False(t, s.Contains("x"))
	assert.Zero(t, s.Len())
	assert.Empty(t, slices.Collect(s.Keys()))

	raw, err := s.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw))
}

// TestStore_ZeroValueSet verifies that a zero Store is usable for writes.
func TestStore_ZeroValueSet(t *testing.T) {
	var s Store
	s.Set("k", "v")

	v, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)
}

// TestStore_SetGetRoundTrip verifies that Set followed by Get returns the
// same value for every JSON shape.
func TestStore_SetGetRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{name: "string", value: "localhost"},
		{name: "number", value: 4000.0},
		{name: "bool", value: true},
		{name: "null", value: nil},
		{name: "sequence", value: []any{"a", 1.0, false}},
		{name: "mapping", value: map[string]any{"host": "0.0.0.0", "port": 4000.0}},
		{name: "store", value: NewStore()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			s.Set("key", tt.value)

			got, ok := s.Get("key")
			require.True(t, ok)
			assert.Equal(t, tt.value, got)
			assert.True(t, s.Contains("key"))
		})
	}
}

// TestStore_SetOverwritesInPlace verifies that overwriting a key keeps its
// position and does not duplicate it.
func TestStore_SetOverwritesInPlace(t *testing.T) {
	s := NewStore()
	s.Set("a", 1)
	s.Set("b", 2)
	s.Set("a", 3)

	assert.Equal(t, []string{"a", "b"}, slices.Collect(s.Keys()))
	v, _ := s.Get("a")
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, s.Len())
}

// TestStore_KeysRestartable verifies that Keys yields each key once and can
// be iterated again with the same result.
func TestStore_KeysRestartable(t *testing.T) {
	s := NewStore()
	for _, k := range []string{"port", "host", "motd"} {
		s.Set(k, k)
	}
	keys := s.Keys()

	first := slices.Collect(keys)
	second := slices.Collect(keys)

	assert.Equal(t, []string{"port", "host", "motd"}, first)
	assert.Equal(t, first, second)
}

// TestStore_KeysEarlyStop verifies that breaking out of a range over Keys
// stops the iteration.
func TestStore_KeysEarlyStop(t *testing.T) {
	s := NewStore()
	s.Set("a", 1)
	s.Set("b", 2)
	s.Set("c", 3)

	var seen []string
	for k := range s.Keys() {
		seen = append(seen, k)
		if k == "b" {
			break
		}
	}

	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestStore_All(t *testing.T) {
	s := NewStore()
	s.Set("x", 1)
	s.Set("y", "two")

	got := map[string]any{}
	var order []string
	for k, v := range s.All() {
		order = append(order, k)
		got[k] = v
	}

	assert.Equal(t, []string{"x", "y"}, order)
	assert.Equal(t, map[string]any{"x": 1, "y": "two"}, got)
}

// TestStore_MarshalJSON verifies ordered output and nested store encoding.
func TestStore_MarshalJSON(t *testing.T) {
	inner := NewStore()
	inner.Set("a", 1.0)

	s := NewStore()
	s.Set("zeta", "last-letter")
	s.Set("alpha", []any{1.0, 2.0})
	s.Set("defaults", inner)

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":"last-letter","alpha":[1,2],"defaults":{"a":1}}`, string(raw))
}

// TestStore_MarshalJSON_UnsupportedValue verifies that values json cannot
// encode surface as an error.
func TestStore_MarshalJSON_UnsupportedValue(t *testing.T) {
	s := NewStore()
	s.Set("ch", make(chan int))

	_, err := json.Marshal(s)
	assert.Error(t, err)
}
