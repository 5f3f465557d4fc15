package view

import (
	"github.com/viewkit/viewkit/document"
)

// ConvertList returns a reusable converter from an untyped JSON array to a
// typed slice, for top-level arrays of objects and for WithObjectList.
//
// If every element of the input already satisfies T, the input passes
// through unchanged and the per-element callback is never invoked.
// Otherwise each element that is structurally an object or null is converted
// through the callback; the callback sees a nil Document for null entries
// and signals absence by returning false, in which case the entry is
// omitted. Elements of any other kind are dropped silently. With a nil
// callback and a failed pass-through the whole list resolves absent, never
// a partially converted one.
func ConvertList[T any](fromObject func(document.Document) (T, bool)) func([]any) ([]T, bool) {
	return func(raw []any) ([]T, bool) {
		if out, ok := listPassThrough[T](raw); ok {
			return out, true
		}
		if fromObject == nil {
			return nil, false
		}
		out := make([]T, 0, len(raw))
		for _, item := range raw {
			var elem document.Document
			switch t := item.(type) {
			case nil:
				elem = nil
			case document.Document:
				elem = t
			case map[string]any:
				elem = t
			default:
				continue
			}
			if converted, ok := fromObject(elem); ok {
				out = append(out, converted)
			}
		}
		return out, true
	}
}

func listPassThrough[T any](raw []any) ([]T, bool) {
	out := make([]T, 0, len(raw))
	for _, item := range raw {
		t, ok := item.(T)
		if !ok {
			return nil, false
		}
		out = append(out, t)
	}
	return out, true
}
