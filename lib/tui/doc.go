// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides generic terminal UI building blocks shared by
// the tree viewer: the color theme (with terminal background
// detection), a proportional scrollbar, and fzf-backed fuzzy matching.
// Nothing in here knows about JSON or tree nodes; domain rendering
// lives in lib/treeview.
package tui
