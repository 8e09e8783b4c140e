// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

package persist

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
)

func TestPersistNoLocationNoIO(t *testing.T) {
	text := `{"a":1}`
	got, err := Persist(text, Options{})
	if err != nil {
		t.Fatalf("Persist: %v", err)
	}
	if got != text {
		t.Errorf("Persist = %q, want input unchanged", got)
	}
}

func TestPersistPrettyPrint(t *testing.T) {
	got, err := Persist(`{"a":[1,2]}`, Options{PrettyPrint: true})
	if err != nil {
		t.Fatalf("Persist: %v", err)
	}
	want := "{\n  \"a\": [\n    1,\n    2\n  ]\n}"
	if got != want {
		t.Errorf("Persist = %q, want %q", got, want)
	}
}

func TestPersistPrettyPrintCustomIndent(t *testing.T) {
	got, err := Persist(`{"a":1}`, Options{PrettyPrint: true, Indent: 4})
	if err != nil {
		t.Fatalf("Persist: %v", err)
	}
	want := "{\n    \"a\": 1\n}"
	if got != want {
		t.Errorf("Persist = %q, want %q", got, want)
	}
}

func TestPersistRejectsMalformedOnPrettyPrint(t *testing.T) {
	// The serializer claims to always produce valid JSON. A re-parse
	// failure here means that invariant broke upstream; it must
	// surface, not be masked by writing the text anyway.
	target := filepath.Join(t.TempDir(), "out.json")
	if _, err := Persist(`{"a":`, Options{Location: target, PrettyPrint: true}); err == nil {
		t.Fatal("expected error for malformed input")
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Error("malformed input was still written")
	}
}

func TestPersistCreatesDirectories(t *testing.T) {
	target := filepath.Join(t.TempDir(), "deeply", "nested", "out.json")
	text := `{"a":1}`

	got, err := Persist(text, Options{Location: target})
	if err != nil {
		t.Fatalf("Persist: %v", err)
	}
	if got != text {
		t.Errorf("Persist = %q, want %q", got, text)
	}

	written, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("reading target: %v", err)
	}
	if string(written) != text {
		t.Errorf("file holds %q, want %q", written, text)
	}
}

func TestPersistGzipTarget(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out.json.gz")
	text := `{"a":1}`

	got, err := Persist(text, Options{Location: target})
	if err != nil {
		t.Fatalf("Persist: %v", err)
	}
	// The returned text is the uncompressed form.
	if got != text {
		t.Errorf("Persist = %q, want %q", got, text)
	}

	compressed, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("reading target: %v", err)
	}
	reader, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	var decompressed bytes.Buffer
	if _, err := decompressed.ReadFrom(reader); err != nil {
		t.Fatalf("decompressing: %v", err)
	}
	if decompressed.String() != text {
		t.Errorf("decompressed %q, want %q", decompressed.String(), text)
	}
}

func TestPersistSkipsIdenticalContent(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out.json")
	text := `{"a":1}`

	if _, err := Persist(text, Options{Location: target}); err != nil {
		t.Fatalf("first Persist: %v", err)
	}
	first, err := os.Stat(target)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}

	// Backdate so an unnecessary rewrite would be visible.
	old := first.ModTime().Add(-time.Second)
	if err := os.Chtimes(target, old, old); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	if _, err := Persist(text, Options{Location: target}); err != nil {
		t.Fatalf("second Persist: %v", err)
	}
	second, err := os.Stat(target)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !second.ModTime().Equal(old) {
		t.Error("identical content was rewritten")
	}

	// Changed content must still go through.
	if _, err := Persist(`{"a":2}`, Options{Location: target}); err != nil {
		t.Fatalf("third Persist: %v", err)
	}
	written, _ := os.ReadFile(target)
	if string(written) != `{"a":2}` {
		t.Errorf("file holds %q after change", written)
	}
}
