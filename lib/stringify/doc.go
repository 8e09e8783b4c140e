// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

// Package stringify is a safe, customizable alternative to
// encoding/json for arbitrary in-memory values, including values
// standard JSON cannot represent faithfully: functions, symbols, big
// integers, dates, error-raising accessors, and circular structures.
//
// The output is always syntactically valid JSON text. Values JSON
// cannot carry are degraded to descriptive marker strings rather than
// dropped, so an inspection tool downstream (see lib/treeview) can
// display them without losing information:
//
//	value := stringify.NewMap().
//		Set("when", time.Now()).
//		Set("handler", someFunc)
//	text, err := stringify.Stringify(value, nil)
//
// Circular references are detected by object identity against the
// active ancestor chain, not against all previously visited nodes: a
// shared subtree reached through two sibling branches is rendered in
// full both times. True cycles are re-expanded a bounded number of
// times (the revisit budget, default 1) and then replaced by an
// in-band marker naming the path at which the cyclic container was
// first encountered:
//
//	"[Circular Ref: root.a[0]]"
//
// Paths follow a fixed grammar rooted at "root": mapping children
// append ".key", sequence children append "[index]". The same grammar
// drives the tree viewer's hover-path and copy-path affordances, so
// the two components stay in agreement by construction.
//
// Redaction rules substitute a replacement string for the value of a
// matching mapping key before the value is read, classified, or
// descended into. A redacted value that would raise on read, or that
// contains a cycle, is never touched.
package stringify
