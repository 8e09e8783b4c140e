// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

package treeview

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dwkns/stringify-and-view/lib/stringify"
)

// TemplateContentKey is the conventional key whose viewer-side
// redaction can be lifted with the "show anyway" override. Upstream
// build pipelines attach fully rendered page content under this key;
// it is usually enormous and usually noise, but sometimes exactly the
// thing being debugged.
const TemplateContentKey = "templateContent"

// Options configures tree construction and initial presentation.
type Options struct {
	// Rules is the viewer-side redaction rule set. Matching keys are
	// shown as their replacement text with no children. Independent
	// of any redaction the serializer already applied.
	Rules stringify.RuleSet

	// ShowTemplateContent lifts redaction of TemplateContentKey even
	// when a rule matches it.
	ShowTemplateContent bool

	// ExpandDepth is how many levels start expanded. Zero means only
	// the root; negative means everything.
	ExpandDepth int

	// ShowTypes controls the initial visibility of type labels.
	ShowTypes bool
}

// Node is one value in the presented tree.
type Node struct {
	// Key is the mapping key or decimal sequence index this node was
	// reached through; empty for the root.
	Key string

	// Path is the full traversal path, same grammar as the serializer.
	Path string

	// Kind is the value's classification, driving color and label.
	Kind stringify.Kind

	// Value is the rendered leaf text; empty for containers.
	Value string

	// Marker is true when the value is one of the serializer's
	// in-band marker strings (circular reference, redaction,
	// "[undefined]", function, symbol, unsupported type).
	Marker bool

	// Redacted is true when a viewer-side rule suppressed this
	// node's real value.
	Redacted bool

	// Expanded controls whether children are visible.
	Expanded bool

	// Depth is the node's distance from the root.
	Depth int

	// Children are the node's direct descendants, in traversal order.
	Children []*Node

	parent *Node
}

// FromJSON parses serialized JSON text and builds the presentation
// tree. Key order in the text is preserved.
func FromJSON(text string, options Options) (*Node, error) {
	value, err := stringify.Decode([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("building tree: %w", err)
	}
	return fromValue(value, options), nil
}

// FromValue serializes an arbitrary value through lib/stringify and
// builds the presentation tree from the result. Serializer options
// control cycle budget and serializer-side redaction; nil means
// defaults.
func FromValue(value any, serializerOptions *stringify.Options, options Options) (*Node, error) {
	text, err := stringify.Stringify(value, serializerOptions)
	if err != nil {
		return nil, err
	}
	return FromJSON(text, options)
}

func fromValue(value any, options Options) *Node {
	root := buildNode("", stringify.RootLabel, value, 0, options)
	root.Expanded = true
	return root
}

func buildNode(key, path string, value any, depth int, options Options) *Node {
	node := &Node{
		Key:      key,
		Path:     path,
		Depth:    depth,
		Expanded: options.ExpandDepth < 0 || depth < options.ExpandDepth,
	}

	switch v := value.(type) {
	case *stringify.Map:
		node.Kind = stringify.KindMapping
		for _, childKey := range v.Keys() {
			childValue, _ := v.Get(childKey)
			child := buildEntry(childKey, node, childValue, options)
			node.Children = append(node.Children, child)
		}
	case []any:
		node.Kind = stringify.KindSequence
		for index, item := range v {
			indexText := strconv.Itoa(index)
			child := buildNode(indexText, stringify.BuildPath(path, indexText, true), item, depth+1, options)
			child.parent = node
			node.Children = append(node.Children, child)
		}
	case string:
		node.Kind = stringify.KindText
		node.Value = strconv.Quote(v)
		node.Marker = isMarkerString(v)
	case json.Number:
		node.Kind = stringify.KindNumber
		node.Value = v.String()
	case bool:
		node.Kind = stringify.KindBoolean
		node.Value = strconv.FormatBool(v)
	case nil:
		node.Kind = stringify.KindNull
		node.Value = "null"
	default:
		// Not a Decode shape; render its text form rather than guess.
		node.Kind = stringify.KindUnknown
		node.Value = fmt.Sprint(v)
	}
	return node
}

// buildEntry builds a mapping child, applying viewer-side redaction
// before descending.
func buildEntry(key string, parent *Node, value any, options Options) *Node {
	path := stringify.BuildPath(parent.Path, key, false)
	replacement, matched := options.Rules.Resolve(key)
	if matched && !(key == TemplateContentKey && options.ShowTemplateContent) {
		node := &Node{
			Key:      key,
			Path:     path,
			Depth:    parent.Depth + 1,
			Kind:     stringify.KindText,
			Value:    strconv.Quote(replacement),
			Marker:   true,
			Redacted: true,
			parent:   parent,
		}
		return node
	}
	child := buildNode(key, path, value, parent.Depth+1, options)
	child.parent = parent
	return child
}

// isMarkerString reports whether a string value is one of the
// serializer's in-band substitutions.
func isMarkerString(value string) bool {
	if !strings.HasPrefix(value, "[") || !strings.HasSuffix(value, "]") {
		return false
	}
	for _, prefix := range []string{
		"[Circular Ref:",
		"[Redacted",
		"[undefined]",
		"[Function",
		"[Symbol",
		"[Unsupported type:",
	} {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}

// Leaf reports whether the node has no children to expand.
func (node *Node) Leaf() bool {
	return len(node.Children) == 0
}

// Label returns the type label shown next to the node when type
// labels are enabled: container labels carry their child count.
func (node *Node) Label() string {
	switch node.Kind {
	case stringify.KindMapping:
		return fmt.Sprintf("object{%d}", len(node.Children))
	case stringify.KindSequence:
		return fmt.Sprintf("array[%d]", len(node.Children))
	default:
		return node.Kind.String()
	}
}

// SetExpandedAll expands or collapses this node and every descendant.
func (node *Node) SetExpandedAll(expanded bool) {
	node.Expanded = expanded
	for _, child := range node.Children {
		child.SetExpandedAll(expanded)
	}
}

// RevealAncestors expands every ancestor so the node is visible.
func (node *Node) RevealAncestors() {
	for ancestor := node.parent; ancestor != nil; ancestor = ancestor.parent {
		ancestor.Expanded = true
	}
}

// Parent returns the node's parent, nil for the root.
func (node *Node) Parent() *Node {
	return node.parent
}

// Walk visits the node and every descendant in preorder.
func (node *Node) Walk(visit func(*Node)) {
	visit(node)
	for _, child := range node.Children {
		child.Walk(visit)
	}
}
