// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

package persist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/zeebo/blake3"
)

// Options configures a Persist call.
type Options struct {
	// Location is the target file path. Empty means no I/O: Persist
	// only formats and returns the text.
	Location string

	// PrettyPrint re-indents the text before returning and writing
	// it. The text is re-parsed as part of indenting; invalid JSON is
	// an error.
	PrettyPrint bool

	// Indent is the number of spaces per indentation level when
	// PrettyPrint is set. Zero or negative means 2.
	Indent int
}

// Persist optionally re-formats text and, when a location is supplied,
// writes it there, creating intermediate directories as needed. A .gz
// location suffix gzips the written copy (the returned text is always
// uncompressed). Returns the text as written.
//
// When the target file already holds identical content the write is
// skipped, leaving the file's modification time alone. This keeps
// downstream file watchers quiet across rebuilds that produce the same
// data.
func Persist(text string, options Options) (string, error) {
	output := text
	if options.PrettyPrint {
		indent := options.Indent
		if indent <= 0 {
			indent = 2
		}
		var formatted bytes.Buffer
		if err := json.Indent(&formatted, []byte(text), "", strings.Repeat(" ", indent)); err != nil {
			return "", fmt.Errorf("re-parsing output for pretty-print: %w", err)
		}
		output = formatted.String()
	}

	if options.Location == "" {
		return output, nil
	}

	payload := []byte(output)
	if strings.HasSuffix(options.Location, ".gz") {
		compressed, err := gzipPayload(payload)
		if err != nil {
			return "", fmt.Errorf("compressing %s: %w", options.Location, err)
		}
		payload = compressed
	}

	if err := os.MkdirAll(filepath.Dir(options.Location), 0o755); err != nil {
		return "", fmt.Errorf("creating directory for %s: %w", options.Location, err)
	}

	same, err := contentMatches(options.Location, payload)
	if err != nil {
		return "", err
	}
	if same {
		return output, nil
	}

	if err := os.WriteFile(options.Location, payload, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", options.Location, err)
	}
	return output, nil
}

func gzipPayload(payload []byte) ([]byte, error) {
	var compressed bytes.Buffer
	writer := gzip.NewWriter(&compressed)
	if _, err := writer.Write(payload); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return compressed.Bytes(), nil
}

// contentMatches reports whether the file at path already holds
// exactly payload. The existing file is streamed through the hasher
// rather than read into memory; serialized site data can be large.
// A missing or unreadable file reports false and lets the write
// proceed (and surface the real error, if any).
func contentMatches(path string, payload []byte) (bool, error) {
	info, err := os.Stat(path)
	if err != nil || info.Size() != int64(len(payload)) {
		return false, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return false, nil
	}
	defer file.Close()

	existing := blake3.New()
	if _, err := io.Copy(existing, file); err != nil {
		return false, nil
	}

	target := blake3.Sum256(payload)
	return bytes.Equal(existing.Sum(nil), target[:]), nil
}
