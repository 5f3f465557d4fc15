package view

import (
	"fmt"
	"reflect"

	"github.com/viewkit/viewkit/document"
)

// A FieldRule is one decode rule of a Schema: a closed strategy selected by
// the field's declared type at schema-definition time rather than at each
// access. Rules coerce where the lazy accessor would, but report violations
// as errors instead of degrading to absent.
type FieldRule interface {
	apply(raw any) (any, error)
}

// Schema is an explicit, statically declared field contract for one model
// shape. Applying it decodes a Document eagerly, field by field, which
// front-loads the validation the lazy accessor defers.
type Schema struct {
	fields map[string]FieldRule
}

// NewSchema declares a Schema from a field→rule mapping.
func NewSchema(fields map[string]FieldRule) *Schema {
	copied := make(map[string]FieldRule, len(fields))
	for k, r := range fields {
		copied[k] = r
	}
	return &Schema{fields: copied}
}

// Apply decodes doc against the Schema and returns a new Document whose
// declared fields carry their decoded typed values. Absent and null fields
// stay absent; keys without a declared rule pass through unchanged. A field
// whose value cannot be decoded by its rule is an error naming the key.
func (s *Schema) Apply(doc document.Document) (document.Document, error) {
	if doc == nil {
		return nil, nil
	}
	out := make(document.Document, len(doc))
	for k, raw := range doc {
		rule, declared := s.fields[k]
		if !declared || raw == nil {
			out[k] = document.DeepCopyJSONValue(raw)
			continue
		}
		decoded, err := rule.apply(raw)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		out[k] = decoded
	}
	return out, nil
}

// NewWithSchema builds an eagerly decoded View: the Schema is applied at
// construction, so reads never pay conversion cost and the View is
// thread-safe without touching the lazy cache.
func NewWithSchema(doc document.Document, schema *Schema) (*View, error) {
	decoded, err := schema.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("could not decode document against schema: %w", err)
	}
	return &View{
		doc:   decoded,
		cache: make(map[cacheKey]cacheEntry),
	}, nil
}

// IntField decodes integer fields.
type IntField struct{}

func (IntField) apply(raw any) (any, error) {
	v, ok := coerceValue(raw, reflect.TypeOf(int64(0)))
	if !ok {
		return nil, fmt.Errorf("cannot decode %T as integer", raw)
	}
	return v.Interface(), nil
}

// FloatField decodes floating-point fields.
type FloatField struct{}

func (FloatField) apply(raw any) (any, error) {
	v, ok := coerceValue(raw, reflect.TypeOf(float64(0)))
	if !ok {
		return nil, fmt.Errorf("cannot decode %T as float", raw)
	}
	return v.Interface(), nil
}

// BoolField decodes boolean fields.
type BoolField struct{}

func (BoolField) apply(raw any) (any, error) {
	v, ok := coerceValue(raw, reflect.TypeOf(false))
	if !ok {
		return nil, fmt.Errorf("cannot decode %T as bool", raw)
	}
	return v.Interface(), nil
}

// StringField decodes string fields. Like the lazy accessor, any non-null
// scalar stringifies; objects and sequences are rejected.
type StringField struct{}

func (StringField) apply(raw any) (any, error) {
	switch raw.(type) {
	case map[string]any, document.Document, []any:
		return nil, fmt.Errorf("cannot decode %T as string", raw)
	}
	return stringify(raw), nil
}

// ObjectField decodes a nested object field against a nested Schema.
type ObjectField struct {
	Schema *Schema
}

func (f ObjectField) apply(raw any) (any, error) {
	m, ok := asDocument(raw)
	if !ok {
		return nil, fmt.Errorf("cannot decode %T as object", raw)
	}
	if f.Schema == nil {
		return document.DeepCopyJSONValue(m), nil
	}
	decoded, err := f.Schema.Apply(m)
	if err != nil {
		return nil, err
	}
	return map[string]any(decoded), nil
}

// ListField decodes a sequence field, applying the element rule to every
// entry. Null entries stay null.
type ListField struct {
	Elem FieldRule
}

func (f ListField) apply(raw any) (any, error) {
	seq, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("cannot decode %T as list", raw)
	}
	out := make([]any, len(seq))
	for i, item := range seq {
		if item == nil || f.Elem == nil {
			out[i] = document.DeepCopyJSONValue(item)
			continue
		}
		decoded, err := f.Elem.apply(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = decoded
	}
	return out, nil
}

// EnumRule adapts an EnumMap into a FieldRule that validates wire values
// eagerly: an unknown wire value is an error under eager decoding. The wire
// value itself stays in the Document so it remains JSON-serializable; reads
// decode it through the map's O(1) FromValue callback.
func EnumRule[E comparable](m *EnumMap[E]) FieldRule {
	return enumField{decode: func(raw any) (any, error) {
		if _, ok := m.Decode(raw); !ok {
			return nil, fmt.Errorf("unknown wire value %v", raw)
		}
		return raw, nil
	}}
}

type enumField struct {
	decode func(any) (any, error)
}

func (f enumField) apply(raw any) (any, error) {
	return f.decode(raw)
}
