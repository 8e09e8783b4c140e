// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"
)

func TestRenderScrollbarHeights(t *testing.T) {
	theme := DefaultDark

	if got := RenderScrollbar(theme, 0, 10, 5, 0); got != "" {
		t.Errorf("zero height produced output: %q", got)
	}

	// Content fits: every line is a thumb cell.
	bar := RenderScrollbar(theme, 4, 3, 10, 0)
	if lines := strings.Split(bar, "\n"); len(lines) != 4 {
		t.Errorf("scrollbar has %d lines, want 4", len(lines))
	}
	if strings.Contains(bar, "│") {
		t.Error("content fits but track cells rendered")
	}
}

func TestRenderScrollbarThumbMoves(t *testing.T) {
	theme := DefaultDark

	top := RenderScrollbar(theme, 10, 100, 10, 0)
	bottom := RenderScrollbar(theme, 10, 100, 10, 90)
	if top == bottom {
		t.Error("thumb did not move between top and bottom scroll offsets")
	}

	topLines := strings.Split(top, "\n")
	if !strings.Contains(topLines[0], "┃") {
		t.Error("thumb not at top for offset 0")
	}
	bottomLines := strings.Split(bottom, "\n")
	if !strings.Contains(bottomLines[len(bottomLines)-1], "┃") {
		t.Error("thumb not at bottom for maximum offset")
	}
}

func TestFuzzyMatch(t *testing.T) {
	slab := NewSlab()

	tests := []struct {
		text    string
		pattern string
		matched bool
	}{
		{"root.collections.all[0].data", "cold", true},
		{"root.collections.all[0].data", "COLD", true}, // case-insensitive
		{"root.title", "ttl", true},
		{"root.title", "xyz", false},
		{"root.title", "", true},
	}

	for _, test := range tests {
		result := FuzzyMatch(test.text, []rune(test.pattern), slab)
		if result.Matched != test.matched {
			t.Errorf("FuzzyMatch(%q, %q).Matched = %v, want %v",
				test.text, test.pattern, result.Matched, test.matched)
		}
	}
}

func TestFuzzyMatchPositions(t *testing.T) {
	slab := NewSlab()
	result := FuzzyMatch("root.data.title", []rune("title"), slab)
	if !result.Matched {
		t.Fatal("expected match")
	}
	if len(result.Positions) != 5 {
		t.Errorf("got %d positions, want 5", len(result.Positions))
	}
}
