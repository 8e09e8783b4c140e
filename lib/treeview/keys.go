// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

package treeview

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the tree viewer.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Collapse key.Binding // Collapse the node, or jump to its parent.
	Expand   key.Binding
	Toggle   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	ExpandAll   key.Binding
	CollapseAll key.Binding

	ToggleTypes key.Binding
	RawView     key.Binding
	CopyPath    key.Binding

	SearchActivate key.Binding
	SearchClear    key.Binding
	SearchNext     key.Binding
	SearchPrevious key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k/h/l) alongside standard arrow keys and page up/down.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Collapse: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Expand: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("Enter", "toggle"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	ExpandAll: key.NewBinding(
		key.WithKeys("E"),
		key.WithHelp("E", "expand all"),
	),
	CollapseAll: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "collapse all"),
	),
	ToggleTypes: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "types"),
	),
	RawView: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "raw"),
	),
	CopyPath: key.NewBinding(
		key.WithKeys("c", "y"),
		key.WithHelp("c", "copy path"),
	),
	SearchActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	SearchClear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "clear search"),
	),
	SearchNext: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next match"),
	),
	SearchPrevious: key.NewBinding(
		key.WithKeys("N"),
		key.WithHelp("N", "prev match"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
