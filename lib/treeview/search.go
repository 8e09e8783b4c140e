// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

package treeview

import (
	"sort"

	"github.com/junegunn/fzf/src/util"

	"github.com/dwkns/stringify-and-view/lib/tui"
)

// SearchModel manages the fuzzy path search state. The caller routes
// keystrokes to HandleRune/HandleBackspace and reads results through
// the accessor methods; matching runs over every node path in the
// tree, including nodes inside collapsed subtrees (jumping to a match
// reveals it).
type SearchModel struct {
	// Input is the current query text.
	Input string

	// Active is true when the search bar has keyboard focus.
	Active bool

	slab    *util.Slab
	matches []*Node
	current int
}

// NewSearchModel returns an inactive search with scratch space for
// the fuzzy matcher.
func NewSearchModel() SearchModel {
	return SearchModel{slab: tui.NewSlab()}
}

// HandleRune appends a character to the query.
func (search *SearchModel) HandleRune(character rune) {
	search.Input += string(character)
}

// HandleBackspace removes the last character from the query. Returns
// false when there was nothing to remove.
func (search *SearchModel) HandleBackspace() bool {
	if len(search.Input) == 0 {
		return false
	}
	runes := []rune(search.Input)
	search.Input = string(runes[:len(runes)-1])
	return true
}

// Clear resets the query, focus, and match state.
func (search *SearchModel) Clear() {
	search.Input = ""
	search.Active = false
	search.matches = nil
	search.current = 0
}

// Recompute re-runs the fuzzy match over all paths in the tree.
// Matches are ordered by descending score, ties broken by tree order,
// so the best match is first.
func (search *SearchModel) Recompute(root *Node) {
	search.matches = nil
	search.current = 0
	if search.Input == "" {
		return
	}

	pattern := []rune(search.Input)
	type scored struct {
		node  *Node
		score int
		order int
	}
	var results []scored
	order := 0
	root.Walk(func(node *Node) {
		result := tui.FuzzyMatch(node.Path, pattern, search.slab)
		if result.Matched {
			results = append(results, scored{node: node, score: result.Score, order: order})
		}
		order++
	})

	sort.Slice(results, func(a, b int) bool {
		if results[a].score != results[b].score {
			return results[a].score > results[b].score
		}
		return results[a].order < results[b].order
	})
	for _, result := range results {
		search.matches = append(search.matches, result.node)
	}
}

// Current returns the currently selected match, nil when there are
// none.
func (search *SearchModel) Current() *Node {
	if len(search.matches) == 0 {
		return nil
	}
	return search.matches[search.current]
}

// Next advances to the next match, wrapping around.
func (search *SearchModel) Next() *Node {
	if len(search.matches) == 0 {
		return nil
	}
	search.current = (search.current + 1) % len(search.matches)
	return search.matches[search.current]
}

// Previous steps back to the previous match, wrapping around.
func (search *SearchModel) Previous() *Node {
	if len(search.matches) == 0 {
		return nil
	}
	search.current = (search.current - 1 + len(search.matches)) % len(search.matches)
	return search.matches[search.current]
}

// MatchCount returns the total number of matches.
func (search *SearchModel) MatchCount() int {
	return len(search.matches)
}

// MatchIndex returns the 1-based index of the current match, zero
// when there are none.
func (search *SearchModel) MatchIndex() int {
	if len(search.matches) == 0 {
		return 0
	}
	return search.current + 1
}
