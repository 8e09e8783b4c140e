// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

package treeview

import (
	"testing"

	"github.com/dwkns/stringify-and-view/lib/stringify"
)

const sampleJSON = `{"title":"home","tags":["a","b"],"meta":{"draft":false,"words":312}}`

func buildSample(t *testing.T, options Options) *Node {
	t.Helper()
	root, err := FromJSON(sampleJSON, options)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	return root
}

func TestFromJSONStructure(t *testing.T) {
	root := buildSample(t, Options{})

	if root.Path != "root" || root.Kind != stringify.KindMapping {
		t.Fatalf("root = %s (%s)", root.Path, root.Kind)
	}
	if len(root.Children) != 3 {
		t.Fatalf("root has %d children, want 3", len(root.Children))
	}

	// Key order from the text is preserved.
	for index, want := range []string{"title", "tags", "meta"} {
		if got := root.Children[index].Key; got != want {
			t.Errorf("child %d key = %q, want %q", index, got, want)
		}
	}

	tags := root.Children[1]
	if tags.Kind != stringify.KindSequence || len(tags.Children) != 2 {
		t.Fatalf("tags = %s with %d children", tags.Kind, len(tags.Children))
	}
	if tags.Children[0].Path != "root.tags[0]" {
		t.Errorf("element path = %q, want root.tags[0]", tags.Children[0].Path)
	}

	words := root.Children[2].Children[1]
	if words.Path != "root.meta.words" || words.Value != "312" {
		t.Errorf("words = %q at %q", words.Value, words.Path)
	}
}

func TestFromValueSharesPathGrammar(t *testing.T) {
	value := stringify.NewMap().Set("a", []any{
		stringify.NewMap().Set("b", 1),
	})
	root, err := FromValue(value, nil, Options{})
	if err != nil {
		t.Fatalf("FromValue: %v", err)
	}
	node := root.Children[0].Children[0].Children[0]
	if node.Path != "root.a[0].b" {
		t.Errorf("path = %q, want root.a[0].b", node.Path)
	}
}

func TestExpandDepth(t *testing.T) {
	tests := []struct {
		depth        int
		metaExpanded bool
	}{
		{0, false},
		{2, true},
		{-1, true},
	}
	for _, test := range tests {
		root := buildSample(t, Options{ExpandDepth: test.depth})
		if !root.Expanded {
			t.Errorf("depth %d: root not expanded", test.depth)
		}
		meta := root.Children[2]
		if meta.Expanded != test.metaExpanded {
			t.Errorf("depth %d: meta expanded = %v, want %v",
				test.depth, meta.Expanded, test.metaExpanded)
		}
	}
}

func TestViewerRedaction(t *testing.T) {
	text := `{"templateContent":"<html>big</html>","title":"home"}`
	rules := stringify.RuleSet{{Key: TemplateContentKey, Replacement: "Removed for performance reasons"}}

	root, err := FromJSON(text, Options{Rules: rules})
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	redacted := root.Children[0]
	if !redacted.Redacted || !redacted.Marker {
		t.Error("templateContent not redacted")
	}
	if redacted.Value != `"Removed for performance reasons"` {
		t.Errorf("redacted value = %s", redacted.Value)
	}
	if !redacted.Leaf() {
		t.Error("redacted node kept children")
	}

	// The "show anyway" override lifts redaction of the conventional
	// key only.
	root, err = FromJSON(text, Options{Rules: rules, ShowTemplateContent: true})
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	shown := root.Children[0]
	if shown.Redacted {
		t.Error("override did not lift templateContent redaction")
	}
	if shown.Value != `"<html>big</html>"` {
		t.Errorf("shown value = %s", shown.Value)
	}
}

func TestOverrideOnlyAffectsConventionalKey(t *testing.T) {
	text := `{"secret":"s3cr3t"}`
	root, err := FromJSON(text, Options{
		Rules:               stringify.Redact("secret"),
		ShowTemplateContent: true,
	})
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if !root.Children[0].Redacted {
		t.Error("override lifted redaction of a non-conventional key")
	}
}

func TestMarkerDetection(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"[Circular Ref: root.a]", true},
		{"[Redacted]", true},
		{"[undefined]", true},
		{"[Function: render]", true},
		{"[Symbol: id]", true},
		{"[Unsupported type: chan int]", true},
		{"plain text", false},
		{"[not a marker]", false},
		{"[Circular Ref: unterminated", false},
	}
	for _, test := range tests {
		if got := isMarkerString(test.value); got != test.want {
			t.Errorf("isMarkerString(%q) = %v, want %v", test.value, got, test.want)
		}
	}
}

func TestLabels(t *testing.T) {
	root := buildSample(t, Options{})
	if got := root.Label(); got != "object{3}" {
		t.Errorf("root label = %q", got)
	}
	if got := root.Children[1].Label(); got != "array[2]" {
		t.Errorf("tags label = %q", got)
	}
	if got := root.Children[0].Label(); got != "string" {
		t.Errorf("title label = %q", got)
	}
}

func TestRevealAncestors(t *testing.T) {
	root := buildSample(t, Options{ExpandDepth: 0})
	words := root.Children[2].Children[1]

	words.RevealAncestors()
	for ancestor := words.Parent(); ancestor != nil; ancestor = ancestor.Parent() {
		if !ancestor.Expanded {
			t.Errorf("ancestor %s still collapsed", ancestor.Path)
		}
	}
}
