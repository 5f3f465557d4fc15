package view

import (
	"github.com/viewkit/viewkit/document"
)

// CopyWith builds a new model instance from base's full serialized Document
// overlaid with overrides, then rebuilt through the Document→T constructor.
// Keys without a declared accessor survive the copy untouched.
//
// A nil override value means "no change", never "clear this field"; there is
// no way to unset a key through this operation, which is a deliberate
// contract, not a bug. The overlay is shallow: nested object or list
// overrides must be pre-serialized by the caller and replace the base value
// wholesale.
func CopyWith[T any](base *View, overrides map[string]any, fromObject func(document.Document) (T, bool)) (T, bool) {
	var zero T
	if fromObject == nil {
		return zero, false
	}
	return fromObject(document.Merge(base.Serialize(), overrides))
}
