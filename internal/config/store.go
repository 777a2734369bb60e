// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"encoding/json"
	"iter"
)

// Store is a protected key/value view over one parsed configuration
// document. It behaves like a map with a stable key order, except that
// looking up a missing key is never an error: [Store.Get] reports absence
// through its second return value.
//
// Values are JSON-shaped: nil, bool, int64, float64, json.Number, string,
// []any or map[string]any. [Store.Set] accepts any value without checking its shape.
//
// A nil *Store reads as an empty store.
type Store struct {
	keys   []string
	values map[string]any
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{values: make(map[string]any)}
}

// Contains reports whether key is bound at the top level of the document.
func (s *Store) Contains(key string) bool {
	if s == nil {
		return false
	}
	_, ok := s.values[key]
	return ok
}

// Get returns the value bound to key. The second result is false when key is
// absent, in which case the value is nil. A key explicitly bound to JSON null
// returns (nil, true).
func (s *Store) Get(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.values[key]
	return v, ok
}

// Set binds key to value, overwriting any previous binding in place. A new key
// is appended to the iteration order; an existing key keeps its position.
func (s *Store) Set(key string, value any) {
	if s.values == nil {
		s.values = make(map[string]any)
	}
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Keys returns an iterator over the top-level keys in document order.
// The sequence can be ranged over any number of times.
func (s *Store) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		if s == nil {
			return
		}
		for _, k := range s.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// All returns an iterator over key/value pairs in document order.
func (s *Store) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if s == nil {
			return
		}
		for _, k := range s.keys {
			if !yield(k, s.values[k]) {
				return
			}
		}
	}
}

// Len returns the number of top-level keys.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// MarshalJSON encodes the store as a JSON object, keeping key order.
// A value that is itself a *Store is encoded as a nested object.
func (s *Store) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}
