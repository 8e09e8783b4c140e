// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

package stringify

// RootLabel is the fixed label of the serialization root. Every path
// produced during a traversal starts with it.
const RootLabel = "root"

// BuildPath returns the path of a child node given its parent's path
// and the key or index it was reached through. Mapping children append
// ".key", sequence children append "[key]". With an empty parent the
// key stands alone (bracketed when it is a sequence index).
//
// Keys are inserted verbatim: no escaping of dots, brackets, or other
// special characters. The path is a diagnostic label shared with the
// tree viewer, not a query language, so ambiguity from exotic keys is
// an accepted limitation.
func BuildPath(parentPath, key string, sequenceIndex bool) string {
	if parentPath == "" {
		if sequenceIndex {
			return "[" + key + "]"
		}
		return key
	}
	if sequenceIndex {
		return parentPath + "[" + key + "]"
	}
	return parentPath + "." + key
}
