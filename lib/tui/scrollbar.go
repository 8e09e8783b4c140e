// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderScrollbar produces a single-column scrollbar of the given
// height. The thumb indicates the visible region within the total
// content and is always at least one row tall.
//
// The scrollbar is always fully rendered: when the content fits within
// the visible area the thumb spans the entire height, so the column
// width stays stable as nodes expand and collapse.
func RenderScrollbar(theme Theme, height, totalRows, visibleRows, scrollOffset int) string {
	if height <= 0 {
		return ""
	}

	trackStyle := lipgloss.NewStyle().Foreground(theme.BorderColor)
	thumbStyle := lipgloss.NewStyle().Foreground(theme.PathForeground)

	lines := make([]string, height)

	// Content fits: thumb spans the full height.
	if totalRows <= visibleRows || totalRows <= 0 {
		for index := range lines {
			lines[index] = thumbStyle.Render("┃")
		}
		return strings.Join(lines, "\n")
	}

	thumbSize := height * visibleRows / totalRows
	if thumbSize < 1 {
		thumbSize = 1
	}

	scrollableRange := totalRows - visibleRows
	trackRange := height - thumbSize
	thumbOffset := 0
	if scrollableRange > 0 && trackRange > 0 {
		thumbOffset = scrollOffset * trackRange / scrollableRange
	}
	if thumbOffset+thumbSize > height {
		thumbOffset = height - thumbSize
	}

	for index := range lines {
		if index >= thumbOffset && index < thumbOffset+thumbSize {
			lines[index] = thumbStyle.Render("┃")
		} else {
			lines[index] = trackStyle.Render("│")
		}
	}
	return strings.Join(lines, "\n")
}
