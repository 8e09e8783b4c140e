// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme defines the color palette for the tree viewer. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
//
// The fields cover both universal chrome (text, selection, borders)
// and the per-kind value colors the tree rows are painted with.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Value colors by kind.
	KeyForeground    lipgloss.Color
	StringForeground lipgloss.Color
	NumberForeground lipgloss.Color
	BoolForeground   lipgloss.Color
	NullForeground   lipgloss.Color

	// MarkerForeground colors in-band marker strings: circular
	// references, redacted values, "[undefined]", and the other
	// bracketed substitutions the serializer produces.
	MarkerForeground lipgloss.Color

	// TypeLabelForeground colors the optional kind labels
	// (object{3}, array[2], string, ...).
	TypeLabelForeground lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// PathForeground colors the hover path in the status bar.
	PathForeground lipgloss.Color

	// Search match highlighting.
	SearchHighlightBackground lipgloss.Color
}

// DefaultDark is the built-in dark-terminal color scheme.
var DefaultDark = Theme{
	NormalText:                lipgloss.Color("252"),
	FaintText:                 lipgloss.Color("243"),
	SelectedBackground:        lipgloss.Color("237"),
	SelectedForeground:        lipgloss.Color("255"),
	KeyForeground:             lipgloss.Color("81"),
	StringForeground:          lipgloss.Color("114"),
	NumberForeground:          lipgloss.Color("215"),
	BoolForeground:            lipgloss.Color("176"),
	NullForeground:            lipgloss.Color("243"),
	MarkerForeground:          lipgloss.Color("167"),
	TypeLabelForeground:       lipgloss.Color("60"),
	HeaderForeground:          lipgloss.Color("252"),
	BorderColor:               lipgloss.Color("238"),
	HelpText:                  lipgloss.Color("243"),
	PathForeground:            lipgloss.Color("110"),
	SearchHighlightBackground: lipgloss.Color("58"),
}

// DefaultLight is the built-in light-terminal color scheme.
var DefaultLight = Theme{
	NormalText:                lipgloss.Color("235"),
	FaintText:                 lipgloss.Color("245"),
	SelectedBackground:        lipgloss.Color("253"),
	SelectedForeground:        lipgloss.Color("232"),
	KeyForeground:             lipgloss.Color("25"),
	StringForeground:          lipgloss.Color("28"),
	NumberForeground:          lipgloss.Color("130"),
	BoolForeground:            lipgloss.Color("90"),
	NullForeground:            lipgloss.Color("245"),
	MarkerForeground:          lipgloss.Color("124"),
	TypeLabelForeground:       lipgloss.Color("103"),
	HeaderForeground:          lipgloss.Color("235"),
	BorderColor:               lipgloss.Color("250"),
	HelpText:                  lipgloss.Color("245"),
	PathForeground:            lipgloss.Color("24"),
	SearchHighlightBackground: lipgloss.Color("222"),
}

// DetectTheme picks the dark or light scheme based on the terminal's
// reported background color. Defaults to dark when detection is
// inconclusive (the common case over SSH and in multiplexers).
func DetectTheme() Theme {
	if termenv.HasDarkBackground() {
		return DefaultDark
	}
	return DefaultLight
}
