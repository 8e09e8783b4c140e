// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

package treeview

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// HighlightJSON returns text with ANSI color applied by Chroma's JSON
// lexer. Falls back to the unmodified text on any highlighting
// failure; a raw view that loses its colors is better than one that
// disappears.
func HighlightJSON(text string) string {
	var highlighted strings.Builder
	if err := quick.Highlight(&highlighted, text, "json", "terminal256", "monokai"); err != nil {
		return text
	}
	return highlighted.String()
}
