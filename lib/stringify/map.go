// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

package stringify

// Map is a string-keyed mapping that preserves insertion order. The
// serializer traverses Map entries in the order they were set, which
// is what lets output key order round-trip through Decode. Plain Go
// maps have no insertion order, so they are traversed in sorted key
// order instead; producers that care about order use Map.
//
// Map is not safe for concurrent mutation. Like every other input
// shape it is owned by the caller; the only mutation the serializer
// performs on it is settling the "needs verification" flag (see
// VerificationKey).
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap returns an empty ordered mapping.
func NewMap() *Map {
	return &Map{values: make(map[string]any)}
}

// Set stores value under key. A new key is appended to the iteration
// order; an existing key keeps its original position. Returns the map
// to allow literal-style construction chains.
func (m *Map) Set(key string, value any) *Map {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	return m
}

// Get returns the value stored under key and whether it is present.
func (m *Map) Get(key string) (any, bool) {
	value, ok := m.values[key]
	return value, ok
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order. The slice is a copy;
// mutating it does not affect the map.
func (m *Map) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}
