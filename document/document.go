// Package document implements the untyped value tree that backs typed views:
// a JSON-shaped mapping that is deep-copied at every boundary, compared
// structurally, hashed canonically, and merged without ever being mutated in
// place.
package document

import (
	"encoding/json"
	"fmt"

	"sigs.k8s.io/yaml"
)

// Document is an immutable-by-convention mapping from string keys to
// JSON-compatible values (nil, bool, number, string, nested map, slice).
// A nil Document is the empty/null model state: every read degrades to
// absent. All constructors deep-copy their input, so a caller holding the
// source map cannot mutate the Document afterwards.
type Document map[string]any

// New builds a Document from src by deep copy. A nil src yields a nil
// Document.
func New(src map[string]any) Document {
	if src == nil {
		return nil
	}
	return DeepCopyJSON(src)
}

// FromJSON decodes a JSON object body into a Document.
func FromJSON(data []byte) (Document, error) {
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("could not unmarshal document: %w", err)
	}
	return out, nil
}

// FromYAML decodes a YAML (or JSON) object body into a Document. The YAML is
// converted through JSON, so values carry JSON types (float64 numbers,
// map[string]any objects).
func FromYAML(data []byte) (Document, error) {
	var out map[string]any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("could not unmarshal document: %w", err)
	}
	return out, nil
}

// DeepCopy returns a recursive copy of the Document.
func (d Document) DeepCopy() Document {
	if d == nil {
		return nil
	}
	return DeepCopyJSON(d)
}

// IsZero reports whether the Document is in the empty/null model state.
func (d Document) IsZero() bool {
	return d == nil
}

// Lookup reads the raw value stored at key. The second return is false when
// the key is missing or the Document itself is nil.
func (d Document) Lookup(key string) (any, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d[key]
	return v, ok
}
