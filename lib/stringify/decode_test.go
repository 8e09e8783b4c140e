// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

package stringify

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDecodePreservesKeyOrder(t *testing.T) {
	decoded, err := Decode([]byte(`{"z":1,"a":{"inner":true},"m":[1,"two",null]}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	object, ok := decoded.(*Map)
	if !ok {
		t.Fatalf("decoded %T, want *Map", decoded)
	}
	if got := object.Keys(); !reflect.DeepEqual(got, []string{"z", "a", "m"}) {
		t.Errorf("key order = %v, want [z a m]", got)
	}

	items, _ := object.Get("m")
	want := []any{json.Number("1"), "two", nil}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("array = %#v, want %#v", items, want)
	}
}

func TestDecodeNumbersStayText(t *testing.T) {
	decoded, err := Decode([]byte(`{"n":12345678901234567890}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	value, _ := decoded.(*Map).Get("n")
	number, ok := value.(json.Number)
	if !ok {
		t.Fatalf("n decoded as %T, want json.Number", value)
	}
	if number.String() != "12345678901234567890" {
		t.Errorf("n = %s, lost precision", number)
	}
}

func TestDecodeScalars(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{`"text"`, "text"},
		{`true`, true},
		{`null`, nil},
		{`1.5`, json.Number("1.5")},
		{`[]`, []any{}},
	}
	for _, test := range tests {
		decoded, err := Decode([]byte(test.input))
		if err != nil {
			t.Fatalf("Decode(%s): %v", test.input, err)
		}
		if !reflect.DeepEqual(decoded, test.want) {
			t.Errorf("Decode(%s) = %#v, want %#v", test.input, decoded, test.want)
		}
	}
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	tests := []string{
		`{"a":`,
		`{"a":1} trailing`,
		`{'a':1}`,
		``,
	}
	for _, input := range tests {
		if _, err := Decode([]byte(input)); err == nil {
			t.Errorf("Decode(%q) succeeded, want error", input)
		}
	}
}
