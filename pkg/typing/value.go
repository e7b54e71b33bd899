package typing

import (
	"encoding/json"
	"iter"
	"maps"
	"slices"
)

// Map is an insertion-ordered JSON object. Sample decoders produce it so
// that inferred fields keep the order in which they first appeared.
//
// The zero value is an empty object ready to use.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap creates a Map from alternating key/value pairs. It panics if
// kv has an odd length or a key is not a string, and is meant for tests and
// literals.
func NewMap(kv ...any) *Map {
	if len(kv)%2 != 0 {
		panic("typing.NewMap: odd number of arguments")
	}
	o := &Map{}
	for i := 0; i < len(kv); i += 2 {
		o.Set(kv[i].(string), kv[i+1])
	}
	return o
}

// Set stores v under key. A repeated key keeps its original position and
// takes the new value.
func (o *Map) Set(key string, v any) {
	if o.values == nil {
		o.values = make(map[string]any)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get returns the value stored under key.
func (o *Map) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present, regardless of its value.
func (o *Map) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (o *Map) Keys() []string { return slices.Clone(o.keys) }

// Len returns the number of keys.
func (o *Map) Len() int { return len(o.keys) }

// All iterates over key/value pairs in insertion order.
func (o *Map) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range o.keys {
			if !yield(k, o.values[k]) {
				return
			}
		}
	}
}

// Kind classifies a sample value by its JSON type.
type Kind int

// Kinds in the order used for display and stable sorting.
const (
	KindNull Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{"null", "boolean", "number", "string", "array", "object"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// KindOf returns the JSON kind of v. Besides the types produced by the
// sample decoders it accepts the types produced by encoding/json and plain
// Go literals. Values of any other type are reported as KindString, so no
// sample can fail inference.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBoolean
	case json.Number, float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return KindNumber
	case string:
		return KindString
	case []any:
		return KindArray
	case *Map, map[string]any:
		return KindObject
	default:
		return KindString
	}
}

// asMap adapts either object representation to *Map. Plain maps have
// no order, so their keys are sorted to keep inference deterministic.
func asMap(v any) (*Map, bool) {
	switch o := v.(type) {
	case *Map:
		if o == nil {
			return &Map{}, true
		}
		return o, true
	case map[string]any:
		out := &Map{}
		for _, k := range slices.Sorted(maps.Keys(o)) {
			out.Set(k, o[k])
		}
		return out, true
	}
	return nil, false
}

// asString returns the string content of a value classified as KindString.
func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
