// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

package stringify

import (
	"reflect"
	"testing"
)

func TestMapInsertionOrder(t *testing.T) {
	m := NewMap().Set("z", 1).Set("a", 2).Set("m", 3)

	want := []string{"z", "a", "m"}
	if got := m.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestMapSetExistingKeepsPosition(t *testing.T) {
	m := NewMap().Set("a", 1).Set("b", 2)
	m.Set("a", 10)

	if got := m.Keys(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Keys() = %v after re-set, want [a b]", got)
	}
	if value, ok := m.Get("a"); !ok || value != 10 {
		t.Errorf("Get(a) = %v, %v; want 10, true", value, ok)
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}

func TestMapKeysIsACopy(t *testing.T) {
	m := NewMap().Set("a", 1).Set("b", 2)
	keys := m.Keys()
	keys[0] = "mutated"

	if got := m.Keys()[0]; got != "a" {
		t.Errorf("map key order changed through Keys() slice: %q", got)
	}
}
