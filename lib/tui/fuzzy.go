// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// Slab sizes match fzf's own defaults; the slab is scratch space the
// matcher reuses across calls to avoid per-match allocations.
const (
	slab16Size = 100 * 1024
	slab32Size = 2048
)

// FuzzyResult is the outcome of matching a pattern against one text.
type FuzzyResult struct {
	// Matched is true when every pattern rune was found in order.
	Matched bool

	// Score ranks competing matches; higher is better. Meaningful
	// only when Matched is true.
	Score int

	// Positions are the rune indices of the matched characters in the
	// text, for highlight rendering. May be nil when position
	// tracking was not requested.
	Positions []int
}

// NewSlab allocates scratch space for a sequence of FuzzyMatch calls.
// One slab per matching goroutine; it is not safe for concurrent use.
func NewSlab() *util.Slab {
	return util.MakeSlab(slab16Size, slab32Size)
}

// FuzzyMatch runs fzf's V2 fuzzy matching algorithm against text.
// Matching is case-insensitive (the pattern is lowercased to match
// fzf's smart-case contract for the caseSensitive=false mode).
func FuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 {
		return FuzzyResult{Matched: true}
	}

	lowered := []rune(strings.ToLower(string(pattern)))
	chars := util.ToChars([]byte(text))
	result, positions := algo.FuzzyMatchV2(false, true, true, &chars, lowered, true, slab)
	if result.Start < 0 {
		return FuzzyResult{}
	}

	outcome := FuzzyResult{Matched: true, Score: result.Score}
	if positions != nil {
		outcome.Positions = *positions
	}
	return outcome
}
