// Package view implements typed views over untyped documents: a generic
// keyed accessor with scalar coercion and caller-supplied conversion
// callbacks, enum wire maps, merge-based copy construction, eager schema
// decoding and a type-discriminated constructor registry.
package view

import (
	"reflect"
	"sync"

	"github.com/viewkit/viewkit/document"
)

// View wraps an immutable document.Document and resolves typed reads against
// it. A View never mutates its Document; the only mutable state is the
// conversion cache, which memoizes resolved results per (key, requested type)
// and is guarded for concurrent use.
type View struct {
	doc document.Document

	mu    sync.RWMutex
	cache map[cacheKey]cacheEntry
}

// The requested static type is part of the cache key, so reading the same
// key under two different types yields two independent cache slots instead
// of the first read's type winning.
type cacheKey struct {
	key string
	typ reflect.Type
}

// A cacheEntry memoizes the full outcome of a resolution, explicit absence
// included.
type cacheEntry struct {
	value any
	ok    bool
}

// New creates a View over a deep copy of doc, so later mutation of the
// caller's tree cannot leak into the View. A nil doc produces the empty/null
// model state, where every accessor returns absent.
func New(doc document.Document) *View {
	return &View{
		doc:   doc.DeepCopy(),
		cache: make(map[cacheKey]cacheEntry),
	}
}

// NewFromMap creates a View over a deep copy of a raw JSON-decoded map.
func NewFromMap(src map[string]any) *View {
	return New(document.New(src))
}

// Serialize returns the View's Document as a top-level shallow copy. The
// nested values are shared with the View and must not be mutated by the
// caller; the top-level copy keeps key insertion and deletion on the result
// from reaching the View.
func (v *View) Serialize() document.Document {
	if v == nil || v.doc == nil {
		return nil
	}
	out := make(document.Document, len(v.doc))
	for k, val := range v.doc {
		out[k] = val
	}
	return out
}

// Equal reports whether two Views wrap deeply equal Documents. See
// document.Equal for the absent-vs-null rule.
func (v *View) Equal(o *View) bool {
	if v == nil || o == nil {
		return v == nil && o == nil
	}
	return document.Equal(v.doc, o.doc)
}

// CanonicalHashV1 returns the structural hash of the underlying Document.
// Views that compare Equal hash equal.
func (v *View) CanonicalHashV1() uint64 {
	if v == nil {
		return document.Document(nil).CanonicalHashV1()
	}
	return v.doc.CanonicalHashV1()
}

func (v *View) cachedResult(ck cacheKey) (cacheEntry, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	e, hit := v.cache[ck]
	return e, hit
}

func (v *View) storeResult(ck cacheKey, e cacheEntry) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cache[ck] = e
}
