// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

package stringify

import (
	"encoding/json"
	"math"
	"math/big"
	"reflect"
	"time"
)

// Kind is the semantic category of a value, determined by Classify.
// The classification is closed: every possible input maps to exactly
// one kind, with KindUnknown as the fallback for anything the
// serializer has no better representation for.
type Kind int

const (
	// KindMissing is the explicit "no value was supplied" sentinel
	// (see Missing). Distinct from KindNull so that producers can
	// express "this key exists but carries nothing" and have it
	// survive serialization as a visible marker.
	KindMissing Kind = iota
	// KindNull covers untyped nil and nil pointers.
	KindNull
	// KindDateLike covers time.Time and *time.Time.
	KindDateLike
	// KindCallable covers function values of any signature.
	KindCallable
	// KindSymbolLike covers the Symbol opaque identifier type.
	KindSymbolLike
	// KindBigInteger covers math/big.Int values and pointers.
	KindBigInteger
	// KindSequence covers slices and arrays.
	KindSequence
	// KindMapping covers *Map, string-keyed maps, and structs
	// (directly or through a pointer).
	KindMapping
	// KindNumber covers finite floats, all integer types, and
	// json.Number.
	KindNumber
	// KindNonFiniteNumber covers infinities and NaN.
	KindNonFiniteNumber
	// KindText covers strings.
	KindText
	// KindBoolean covers bools.
	KindBoolean
	// KindUnknown is the fallback for channels, complex numbers,
	// unsafe pointers, and anything else without a JSON story.
	KindUnknown
)

// String returns the kind name without the Kind prefix, suitable for
// type labels in the viewer.
func (kind Kind) String() string {
	switch kind {
	case KindMissing:
		return "missing"
	case KindNull:
		return "null"
	case KindDateLike:
		return "date"
	case KindCallable:
		return "function"
	case KindSymbolLike:
		return "symbol"
	case KindBigInteger:
		return "bigint"
	case KindSequence:
		return "array"
	case KindMapping:
		return "object"
	case KindNumber:
		return "number"
	case KindNonFiniteNumber:
		return "number"
	case KindText:
		return "string"
	case KindBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// missingValue is the concrete type of the Missing sentinel. A
// dedicated unexported type means no other value can accidentally
// classify as KindMissing.
type missingValue struct{}

// Missing marks an absent value. Standard JSON serialization collapses
// absence to nothing; Stringify renders it as the marker string
// "[undefined]" so the distinction stays visible downstream.
var Missing = missingValue{}

// Symbol is an opaque identifier with an optional description. It has
// no JSON representation of its own; Stringify renders it as
// "[Symbol: description]".
type Symbol string

// Classify determines the semantic kind of value. Pure and total: it
// never fails and never mutates its argument. Concrete well-known
// types are checked before the structural (reflection) cases, so a
// time.Time classifies as KindDateLike rather than as the struct it
// happens to be.
func Classify(value any) Kind {
	switch v := value.(type) {
	case missingValue:
		return KindMissing
	case nil:
		return KindNull
	case time.Time:
		return KindDateLike
	case *time.Time:
		if v == nil {
			return KindNull
		}
		return KindDateLike
	case Symbol:
		return KindSymbolLike
	case big.Int:
		return KindBigInteger
	case *big.Int:
		if v == nil {
			return KindNull
		}
		return KindBigInteger
	case *Map:
		if v == nil {
			return KindNull
		}
		return KindMapping
	case json.Number:
		return KindNumber
	case string:
		return KindText
	case bool:
		return KindBoolean
	case float64:
		return classifyFloat(v)
	case float32:
		return classifyFloat(float64(v))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return KindNumber
	}

	// Named types and containers fall through to reflection.
	return classifyReflect(reflect.ValueOf(value))
}

func classifyFloat(value float64) Kind {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return KindNonFiniteNumber
	}
	return KindNumber
}

func classifyReflect(value reflect.Value) Kind {
	switch value.Kind() {
	case reflect.Func:
		if value.IsNil() {
			return KindNull
		}
		return KindCallable
	case reflect.Slice, reflect.Array:
		if value.Kind() == reflect.Slice && value.IsNil() {
			return KindNull
		}
		return KindSequence
	case reflect.Map:
		if value.IsNil() {
			return KindNull
		}
		if value.Type().Key().Kind() == reflect.String {
			return KindMapping
		}
		return KindUnknown
	case reflect.Struct:
		return KindMapping
	case reflect.Pointer, reflect.Interface:
		if value.IsNil() {
			return KindNull
		}
		return classifyReflect(value.Elem())
	case reflect.String:
		return KindText
	case reflect.Bool:
		return KindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindNumber
	case reflect.Float32, reflect.Float64:
		return classifyFloat(value.Float())
	default:
		return KindUnknown
	}
}
