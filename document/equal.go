package document

import (
	"encoding/json"
	"strconv"
)

// Equal reports whether two Documents are deeply equal. A key that is absent
// on one side and present with a null value on the other compares equal: JSON
// round-tripping blurs that distinction, so the comparator does too. Both nil
// and empty Documents therefore compare equal to each other.
func Equal(a, b Document) bool {
	return equalMaps(a, b)
}

// DeepEqual reports whether two JSON-compatible values are deeply equal.
// Mappings compare by effective key set and recursively equal values (see
// Equal for the absent-vs-null rule), sequences by length and pairwise
// equality, scalars by value. Numbers compare numerically across int, float
// and json.Number representations.
func DeepEqual(a, b any) bool {
	if a == nil {
		return b == nil || isNull(b)
	}
	if b == nil {
		return isNull(a)
	}
	if am, ok := asMap(a); ok {
		bm, ok := asMap(b)
		return ok && equalMaps(am, bm)
	}
	if as, ok := a.([]any); ok {
		bs, ok := b.([]any)
		if !ok || len(as) != len(bs) {
			return false
		}
		for i := range as {
			if !DeepEqual(as[i], bs[i]) {
				return false
			}
		}
		return true
	}
	if an, ok := asNumber(a); ok {
		bn, ok := asNumber(b)
		return ok && an == bn
	}
	return a == b
}

func equalMaps(a, b map[string]any) bool {
	for k, av := range a {
		if !DeepEqual(av, b[k]) {
			return false
		}
	}
	for k, bv := range b {
		if _, ok := a[k]; !ok && bv != nil {
			return false
		}
	}
	return true
}

func isNull(v any) bool {
	return v == nil
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Document:
		return m, true
	default:
		return nil, false
	}
}

func asNumber(v any) (float64, bool) {
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
