// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

package stringify

import "testing"

func TestBuildPath(t *testing.T) {
	tests := []struct {
		parent        string
		key           string
		sequenceIndex bool
		want          string
	}{
		{"", "title", false, "title"},
		{"", "0", true, "[0]"},
		{"root", "title", false, "root.title"},
		{"root", "3", true, "root[3]"},
		{"root.a", "0", true, "root.a[0]"},
		{"root.a[0]", "b", false, "root.a[0].b"},
		// Keys are inserted verbatim, including characters that make
		// the path ambiguous. Diagnostic label, not a query language.
		{"root", "dotted.key", false, "root.dotted.key"},
		{"root", "bracket]key", false, "root.bracket]key"},
	}

	for _, test := range tests {
		got := BuildPath(test.parent, test.key, test.sequenceIndex)
		if got != test.want {
			t.Errorf("BuildPath(%q, %q, %v) = %q, want %q",
				test.parent, test.key, test.sequenceIndex, got, test.want)
		}
	}
}
