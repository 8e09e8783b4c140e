// Copyright 2026 The Stringify Authors
// SPDX-License-Identifier: Apache-2.0

package stringify

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Options configures a single Stringify call. The zero value of
// RevisitBudget means "no extra expansions"; use DefaultOptions for
// the standard budget of one.
type Options struct {
	// RevisitBudget bounds how many additional times a truly circular
	// container is expanded before the terminal marker replaces it.
	// Tracked per container identity, not globally. Negative values
	// are treated as zero.
	RevisitBudget int

	// Rules is the redaction rule set applied to mapping keys before
	// their values are read or traversed.
	Rules RuleSet
}

// DefaultOptions returns the standard configuration: revisit budget of
// one, no redaction rules.
func DefaultOptions() *Options {
	return &Options{RevisitBudget: 1}
}

// Accessor is a value whose content is produced on read, the
// serializer's binding of a computed property. Stringify resolves an
// Accessor before classifying it; a returned error aborts the whole
// serialization call and propagates to the caller. It is never
// substituted with a placeholder, because a placeholder would silently
// hide a defect in the input producer.
type Accessor interface {
	Value() (any, error)
}

// VerificationKey is the conventional mapping key upstream data
// producers use to mark a value as not yet verified. When a visited
// mapping carries a boolean under this key, Stringify settles it to
// false in place before emitting the mapping. This is the only
// mutation the serializer performs on its input; it accommodates a
// known upstream quirk where provisional values are handed over with
// the flag still raised.
const VerificationKey = "needsCheck"

// dateFormat renders an instant in UTC with millisecond precision,
// e.g. "2026-08-26T09:30:00.000Z".
const dateFormat = "2006-01-02T15:04:05.000Z07:00"

// Stringify serializes value to JSON text. A nil options uses
// DefaultOptions. The call always terminates: true cycles are bounded
// by the revisit budget and everything else by the input's finite
// depth. The only error condition is an Accessor whose read fails;
// that error propagates wrapped with the node path but transparent to
// errors.Is and errors.As.
func Stringify(value any, options *Options) (string, error) {
	if options == nil {
		options = DefaultOptions()
	}
	budget := options.RevisitBudget
	if budget < 0 {
		budget = 0
	}
	w := &walker{
		rules:     options.Rules,
		budget:    budget,
		ancestors: make(map[identity]int),
		firstSeen: make(map[identity]string),
		revisits:  make(map[identity]int),
	}
	if err := w.walk(value, RootLabel); err != nil {
		return "", err
	}
	return w.output.String(), nil
}

// identity keys a container by object identity rather than value
// equality. The pointer alone is almost always enough within a single
// call; the reflect kind disambiguates the rare case of different
// container shapes sharing a base address (a struct and its first
// field, a slice over an array).
type identity struct {
	pointer uintptr
	kind    reflect.Kind
}

// walker holds the per-call traversal state. Nothing in it survives
// the Stringify call that created it, so concurrent calls on
// different inputs are independent.
type walker struct {
	output strings.Builder
	rules  RuleSet
	budget int

	// ancestors counts how many frames of the active recursion branch
	// hold each container identity. Counted rather than boolean
	// because bounded re-expansion re-enters a container that is
	// already on the branch.
	ancestors map[identity]int

	// firstSeen records the path at which each container identity was
	// first encountered; terminal markers reference it.
	firstSeen map[identity]string

	// revisits counts the extra expansions each circular container
	// identity has consumed so far.
	revisits map[identity]int
}

func (w *walker) walk(value any, path string) error {
	if accessor, ok := value.(Accessor); ok {
		resolved, err := accessor.Value()
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		value = resolved
	}

	kind := Classify(value)
	switch kind {
	case KindSequence, KindMapping:
		return w.walkContainer(value, path, kind)
	case KindMissing:
		w.writeQuoted("[undefined]")
	case KindNull:
		w.output.WriteString("null")
	case KindDateLike:
		w.writeQuoted(asTime(value).UTC().Format(dateFormat))
	case KindCallable:
		w.writeQuoted("[Function: " + callableName(value) + "]")
	case KindSymbolLike:
		if description := string(value.(Symbol)); description != "" {
			w.writeQuoted("[Symbol: " + description + "]")
		} else {
			w.writeQuoted("[Symbol]")
		}
	case KindBigInteger:
		w.writeQuoted(asBigInt(value).String())
	case KindNumber:
		w.writeNumber(value)
	case KindNonFiniteNumber:
		// Mirrors how encoding/json-style serialization degrades
		// infinities and NaN.
		w.output.WriteString("null")
	case KindText:
		w.writeQuoted(reflect.ValueOf(value).String())
	case KindBoolean:
		w.output.WriteString(strconv.FormatBool(reflect.ValueOf(value).Bool()))
	default:
		w.writeQuoted(fmt.Sprintf("[Unsupported type: %T]", value))
	}
	return nil
}

// walkContainer handles cycle accounting for sequences and mappings.
// Identity membership is checked against the active ancestor branch
// only: a container reached again through an unrelated sibling branch
// is not a cycle and is re-traversed in full.
func (w *walker) walkContainer(value any, path string, kind Kind) error {
	container := reflect.ValueOf(value)
	id, hasIdentity := identityOf(container)
	if hasIdentity {
		if _, seen := w.firstSeen[id]; !seen {
			w.firstSeen[id] = path
		}
		if w.ancestors[id] > 0 {
			if w.revisits[id] >= w.budget {
				w.writeQuoted("[Circular Ref: " + w.firstSeen[id] + "]")
				return nil
			}
			w.revisits[id]++
		}
		w.ancestors[id]++
		defer func() {
			w.ancestors[id]--
			if w.ancestors[id] == 0 {
				delete(w.ancestors, id)
			}
		}()
	}

	if kind == KindSequence {
		return w.walkSequence(container, path)
	}
	return w.walkMapping(value, container, path)
}

// identityOf returns the identity key for containers that have one.
// Containers held by value (arrays, structs not behind a pointer) have
// no stable address and therefore cannot participate in cycles.
func identityOf(container reflect.Value) (identity, bool) {
	switch container.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer:
		return identity{pointer: container.Pointer(), kind: container.Kind()}, true
	default:
		return identity{}, false
	}
}

func (w *walker) walkSequence(sequence reflect.Value, path string) error {
	if sequence.Kind() == reflect.Pointer {
		sequence = sequence.Elem()
	}
	w.output.WriteByte('[')
	for index := 0; index < sequence.Len(); index++ {
		if index > 0 {
			w.output.WriteByte(',')
		}
		childPath := BuildPath(path, strconv.Itoa(index), true)
		if err := w.walk(sequence.Index(index).Interface(), childPath); err != nil {
			return err
		}
	}
	w.output.WriteByte(']')
	return nil
}

func (w *walker) walkMapping(value any, container reflect.Value, path string) error {
	switch mapping := value.(type) {
	case *Map:
		return w.walkOrderedMap(mapping, path)
	default:
		if container.Kind() == reflect.Pointer {
			container = container.Elem()
		}
		if container.Kind() == reflect.Map {
			return w.walkGoMap(container, path)
		}
		return w.walkStruct(container, path)
	}
}

func (w *walker) walkOrderedMap(mapping *Map, path string) error {
	if flag, ok := mapping.values[VerificationKey].(bool); ok && flag {
		mapping.values[VerificationKey] = false
	}
	w.output.WriteByte('{')
	for index, key := range mapping.keys {
		if index > 0 {
			w.output.WriteByte(',')
		}
		if err := w.walkEntry(key, mapping.values[key], path); err != nil {
			return err
		}
	}
	w.output.WriteByte('}')
	return nil
}

func (w *walker) walkGoMap(mapping reflect.Value, path string) error {
	keys := make([]string, 0, mapping.Len())
	iterator := mapping.MapRange()
	for iterator.Next() {
		keys = append(keys, iterator.Key().String())
	}
	// Go maps have no insertion order; sorted keys keep output
	// deterministic (and the idempotence property honest).
	sort.Strings(keys)

	w.settleGoMapFlag(mapping)

	w.output.WriteByte('{')
	for index, key := range keys {
		if index > 0 {
			w.output.WriteByte(',')
		}
		entry := mapping.MapIndex(reflect.ValueOf(key).Convert(mapping.Type().Key()))
		if err := w.walkEntry(key, entry.Interface(), path); err != nil {
			return err
		}
	}
	w.output.WriteByte('}')
	return nil
}

// settleGoMapFlag forces a raised verification flag to false when the
// map's value type can hold one.
func (w *walker) settleGoMapFlag(mapping reflect.Value) {
	flagKey := reflect.ValueOf(VerificationKey).Convert(mapping.Type().Key())
	entry := mapping.MapIndex(flagKey)
	if !entry.IsValid() {
		return
	}
	for entry.Kind() == reflect.Interface {
		entry = entry.Elem()
	}
	if entry.Kind() != reflect.Bool || !entry.Bool() {
		return
	}
	settled := reflect.ValueOf(false)
	if !settled.Type().AssignableTo(mapping.Type().Elem()) {
		return
	}
	mapping.SetMapIndex(flagKey, settled)
}

func (w *walker) walkStruct(container reflect.Value, path string) error {
	structType := container.Type()
	w.output.WriteByte('{')
	first := true
	for index := 0; index < structType.NumField(); index++ {
		field := structType.Field(index)
		if !field.IsExported() {
			continue
		}
		name := fieldName(field)
		if name == "" {
			continue
		}
		if name == VerificationKey {
			fieldValue := container.Field(index)
			if fieldValue.Kind() == reflect.Bool && fieldValue.Bool() && fieldValue.CanSet() {
				fieldValue.SetBool(false)
			}
		}
		if !first {
			w.output.WriteByte(',')
		}
		first = false
		if err := w.walkEntry(name, container.Field(index).Interface(), path); err != nil {
			return err
		}
	}
	w.output.WriteByte('}')
	return nil
}

// walkEntry emits one mapping entry: the quoted key, a colon, then
// either the redaction replacement or the recursively serialized
// value. The redaction check runs before the value is touched in any
// way, so a redacted value that is circular or raises on read never
// affects the call.
func (w *walker) walkEntry(key string, value any, parentPath string) error {
	w.writeQuoted(key)
	w.output.WriteByte(':')
	if replacement, matched := w.rules.Resolve(key); matched {
		w.writeQuoted(replacement)
		return nil
	}
	return w.walk(value, BuildPath(parentPath, key, false))
}

func (w *walker) writeQuoted(text string) {
	encoded, err := json.Marshal(text)
	if err != nil {
		// json.Marshal of a string cannot fail; keep the output
		// valid JSON if it ever does.
		encoded = []byte(`""`)
	}
	w.output.Write(encoded)
}

func (w *walker) writeNumber(value any) {
	if number, ok := value.(json.Number); ok {
		w.output.WriteString(number.String())
		return
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Float32:
		w.output.WriteString(strconv.FormatFloat(rv.Float(), 'g', -1, 32))
	case reflect.Float64:
		w.output.WriteString(strconv.FormatFloat(rv.Float(), 'g', -1, 64))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		w.output.WriteString(strconv.FormatUint(rv.Uint(), 10))
	default:
		w.output.WriteString(strconv.FormatInt(rv.Int(), 10))
	}
}

func asTime(value any) time.Time {
	switch v := value.(type) {
	case time.Time:
		return v
	case *time.Time:
		return *v
	}
	return time.Time{}
}

func asBigInt(value any) *big.Int {
	switch v := value.(type) {
	case *big.Int:
		return v
	case big.Int:
		return &v
	}
	return new(big.Int)
}

// callableName extracts a short display name for a function value.
// The runtime name is fully qualified ("pkg/path.Name" or
// "pkg/path.Caller.func1" for closures); only the final segment is
// shown. Closures and method values get the generic label since their
// generated names carry no information a reader asked for.
func callableName(value any) string {
	pc := reflect.ValueOf(value).Pointer()
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "anonymous"
	}
	name := fn.Name()
	if slash := strings.LastIndex(name, "/"); slash >= 0 {
		name = name[slash+1:]
	}
	if dot := strings.LastIndex(name, "."); dot >= 0 {
		name = name[dot+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	if name == "" || isGeneratedName(name) {
		return "anonymous"
	}
	return name
}

// isGeneratedName reports whether name looks like a compiler-assigned
// closure name ("func1", "func2.1", ...).
func isGeneratedName(name string) bool {
	if !strings.HasPrefix(name, "func") {
		return false
	}
	rest := name[len("func"):]
	if rest == "" {
		return false
	}
	for _, character := range rest {
		if (character < '0' || character > '9') && character != '.' {
			return false
		}
	}
	return true
}

// fieldName returns the emitted key for a struct field: the json tag
// name when present, the field name otherwise, empty when the field
// is excluded with `json:"-"`.
func fieldName(field reflect.StructField) string {
	tag, ok := field.Tag.Lookup("json")
	if !ok {
		return field.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
