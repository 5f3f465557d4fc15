package view

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// EnumMap is a frozen bidirectional mapping between enum variants and their
// wire values (the external serialized representation, e.g. integer codes).
// It is built once per enum type and shared across all Views. Wire values
// must be unique within one map: reverse lookup is a precomputed O(1) index,
// and a duplicate would make it ambiguous, so construction rejects it.
type EnumMap[E comparable] struct {
	variants []E
	toWire   map[E]any
	fromWire map[any]E
}

// NewEnumMap builds an EnumMap from an ordered set of variants and a
// variant→wire mapper. It returns an error when two variants map to the same
// wire value (compared by equality after numeric normalization, so an int
// code collides with its float64 JSON decoding) or when a wire value is not
// a scalar.
func NewEnumMap[E comparable](variants []E, wire func(E) any) (*EnumMap[E], error) {
	m := &EnumMap[E]{
		variants: append([]E(nil), variants...),
		toWire:   make(map[E]any, len(variants)),
		fromWire: make(map[any]E, len(variants)),
	}
	for _, v := range variants {
		w := wire(v)
		key, err := normalizeWire(w)
		if err != nil {
			return nil, fmt.Errorf("enum variant %v: %w", v, err)
		}
		if prev, exists := m.fromWire[key]; exists {
			return nil, fmt.Errorf("enum variants %v and %v share wire value %v", prev, v, w)
		}
		m.toWire[v] = w
		m.fromWire[key] = v
	}
	return m, nil
}

// MustNewEnumMap is NewEnumMap, panicking on error. Intended for package-level
// construction of well-known enum maps.
func MustNewEnumMap[E comparable](variants []E, wire func(E) any) *EnumMap[E] {
	m, err := NewEnumMap(variants, wire)
	if err != nil {
		panic(err)
	}
	return m
}

// Decode resolves a raw wire value to its variant. Unknown wire values are
// absent, not an error.
func (m *EnumMap[E]) Decode(raw any) (E, bool) {
	var zero E
	key, err := normalizeWire(raw)
	if err != nil {
		return zero, false
	}
	v, ok := m.fromWire[key]
	return v, ok
}

// Encode returns the wire value of a variant, for serialization and for
// override values in copy-with.
func (m *EnumMap[E]) Encode(v E) (any, bool) {
	w, ok := m.toWire[v]
	return w, ok
}

// FromValue adapts the map into a WithValue callback for Get.
func (m *EnumMap[E]) FromValue() func(any) (E, bool) {
	return m.Decode
}

// Variants returns the variants in declaration order.
func (m *EnumMap[E]) Variants() []E {
	return append([]E(nil), m.variants...)
}

// normalizeWire folds the scalar wire representations JSON decoding can
// produce into one comparable key, so that float64(1) from a decoder matches
// the int 1 a map was declared with.
func normalizeWire(w any) (any, error) {
	switch w.(type) {
	case string, bool:
		return w, nil
	}
	if f, ok := scalarNumber(w); ok {
		return f, nil
	}
	return nil, fmt.Errorf("wire value %v (%T) is not a scalar", w, w)
}

func scalarNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
