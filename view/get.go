package view

import (
	"reflect"

	"github.com/viewkit/viewkit/document"
)

// GetOption configures a single Get call with a conversion callback. At most
// one callback fires per call: the stored value's shape decides which.
type GetOption[T any] func(*getConfig[T])

type getConfig[T any] struct {
	fromObject func(document.Document) (T, bool)
	fromList   func([]any) (T, bool)
	fromValue  func(any) (T, bool)
}

// WithObject supplies a Document→T callback, applied when the stored value is
// structurally an object.
func WithObject[T any](fn func(document.Document) (T, bool)) GetOption[T] {
	return func(c *getConfig[T]) {
		c.fromObject = fn
	}
}

// WithList supplies a sequence→T callback, applied when the stored value is
// structurally a sequence.
func WithList[T any](fn func([]any) (T, bool)) GetOption[T] {
	return func(c *getConfig[T]) {
		c.fromList = fn
	}
}

// WithValue supplies a raw-value→T callback, applied unconditionally to any
// non-null stored value. Used for scalar and enum wire decoding.
func WithValue[T any](fn func(any) (T, bool)) GetOption[T] {
	return func(c *getConfig[T]) {
		c.fromValue = fn
	}
}

// WithObjectList adapts a per-element Document→E callback into a whole-list
// callback with the list conversion semantics of ConvertList: pass-through
// first, then filter to object-or-null elements and convert each.
func WithObjectList[E any](elem func(document.Document) (E, bool)) GetOption[[]E] {
	return WithList(ConvertList(elem))
}

// Get resolves the typed value stored at key. Resolution is strictly
// ordered: a cached result is returned first; a missing key or null value is
// absent; a value that already satisfies T passes through untouched, no
// callback invoked; otherwise the fromValue, fromList and fromObject
// callbacks are tried in that order, the latter two only when the value's
// shape matches; finally a best-effort scalar coercion driven by T's kind
// applies, and everything else is absent.
//
// Get never panics or errors on shape mismatches: a non-primitive T with no
// callback and no coercion rule silently resolves absent, so callers must
// supply a callback for any non-primitive field. The outcome, explicit
// absence included, is memoized per (key, T).
func Get[T any](v *View, key string, opts ...GetOption[T]) (T, bool) {
	var zero T
	if v == nil {
		return zero, false
	}

	ck := cacheKey{key: key, typ: reflect.TypeOf((*T)(nil)).Elem()}
	if e, hit := v.cachedResult(ck); hit {
		if !e.ok {
			return zero, false
		}
		t, ok := e.value.(T)
		return t, ok
	}

	var cfg getConfig[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	val, ok := resolve(v.doc, key, cfg)
	v.storeResult(ck, cacheEntry{value: val, ok: ok})
	return val, ok
}

func resolve[T any](doc document.Document, key string, cfg getConfig[T]) (T, bool) {
	var zero T

	raw, present := doc.Lookup(key)
	if !present || raw == nil {
		return zero, false
	}

	// Direct pass-through. Checked before any callback: a value that already
	// matches T must never be routed through a conversion.
	if t, ok := raw.(T); ok {
		return t, true
	}
	if m, ok := asDocument(raw); ok {
		if t, ok := any(m).(T); ok {
			return t, true
		}
	}

	if cfg.fromValue != nil {
		return cfg.fromValue(raw)
	}
	if cfg.fromList != nil {
		if seq, ok := raw.([]any); ok {
			return cfg.fromList(seq)
		}
	}
	if cfg.fromObject != nil {
		if m, ok := asDocument(raw); ok {
			return cfg.fromObject(m)
		}
	}

	return coerce[T](raw)
}

func asDocument(v any) (document.Document, bool) {
	switch m := v.(type) {
	case document.Document:
		return m, true
	case map[string]any:
		return m, true
	default:
		return nil, false
	}
}
