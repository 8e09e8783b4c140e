// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

package treeview

import "testing"

func TestSearchRecomputeAndCycle(t *testing.T) {
	root := buildSample(t, Options{})
	search := NewSearchModel()

	for _, character := range "ta" {
		search.HandleRune(character)
	}
	search.Recompute(root)

	// "ta" matches root.tags, its elements, and root.meta at least.
	if search.MatchCount() < 2 {
		t.Fatalf("MatchCount = %d, want several", search.MatchCount())
	}

	first := search.Current()
	second := search.Next()
	if first == second && search.MatchCount() > 1 {
		t.Error("Next did not advance")
	}
	if back := search.Previous(); back != first {
		t.Errorf("Previous landed on %s, want %s", back.Path, first.Path)
	}
}

func TestSearchBackspaceAndClear(t *testing.T) {
	root := buildSample(t, Options{})
	search := NewSearchModel()

	if search.HandleBackspace() {
		t.Error("backspace on empty input reported a change")
	}

	search.HandleRune('x')
	search.HandleRune('y')
	if !search.HandleBackspace() {
		t.Error("backspace did not report a change")
	}
	if search.Input != "x" {
		t.Errorf("Input = %q, want x", search.Input)
	}

	search.Recompute(root)
	search.Clear()
	if search.Input != "" || search.Active || search.MatchCount() != 0 {
		t.Error("Clear left state behind")
	}

	// Empty query matches nothing rather than everything; a bare "/"
	// should not flood the match cycle.
	search.Recompute(root)
	if search.MatchCount() != 0 {
		t.Errorf("empty query produced %d matches", search.MatchCount())
	}
}
