// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

// Package persist writes serialized JSON text to disk. It is a thin
// wrapper around lib/stringify's output: it creates intermediate
// directories, optionally re-indents the text for human readability
// (validating it by re-parsing first), compresses targets ending in
// .gz, and skips the write entirely when the target already holds
// identical content.
//
// It never repairs malformed input. The serializer guarantees valid
// JSON, so a pretty-print re-parse failure indicates an upstream
// invariant violation and propagates as an error rather than being
// masked by writing the text as-is.
package persist
