// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

// Package treeview implements a terminal user interface for browsing
// serialized values as an interactive, lazily-expanded tree. Built on
// bubbletea (Elm architecture), it consumes the JSON text produced by
// lib/stringify — or any value graph decodable from it — and renders
// one node per row with expand/collapse, per-kind coloring, optional
// type labels, fuzzy path search, and a raw syntax-highlighted view.
//
// The viewer and the serializer share one path grammar (root label
// "root", ".key" for mapping children, "[index]" for sequence
// children), so the hover path shown in the status bar and copied to
// the clipboard is exactly the path the serializer would report in a
// circular-reference marker or accessor error for the same node.
//
// Viewer-side redaction is independent of serializer-side redaction:
// it hides the values of configured keys at render time without
// touching the data, and supports a "show anyway" override for the
// conventional templateContent key.
//
// Generic UI components (theme, scrollbar, fuzzy matching) live in
// lib/tui; this package holds everything that knows about nodes,
// kinds, and paths.
package treeview
