// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

package stringify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Decode parses JSON text into the serializer's value shapes: *Map
// for objects (insertion order preserved), []any for arrays,
// json.Number for numbers (no float64 precision loss), plus string,
// bool, and nil. Feeding the result back through Stringify reproduces
// the input modulo formatting, which is what lets the viewer and the
// CLI round-trip the serializer's own output.
func Decode(data []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	value, err := decodeValue(decoder)
	if err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}

	// A second token means trailing content after the first value.
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding JSON: trailing content after value")
	}
	return value, nil
}

func decodeValue(decoder *json.Decoder) (any, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := token.(json.Delim)
	if !ok {
		// string, json.Number, bool, or nil.
		return token, nil
	}

	switch delim {
	case '{':
		object := NewMap()
		for decoder.More() {
			keyToken, err := decoder.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyToken.(string)
			if !ok {
				return nil, fmt.Errorf("object key is %v, not a string", keyToken)
			}
			value, err := decodeValue(decoder)
			if err != nil {
				return nil, err
			}
			object.Set(key, value)
		}
		if _, err := decoder.Token(); err != nil { // closing '}'
			return nil, err
		}
		return object, nil
	case '[':
		items := []any{}
		for decoder.More() {
			value, err := decodeValue(decoder)
			if err != nil {
				return nil, err
			}
			items = append(items, value)
		}
		if _, err := decoder.Token(); err != nil { // closing ']'
			return nil, err
		}
		return items, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %v", delim)
	}
}
