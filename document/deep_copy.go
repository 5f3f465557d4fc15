package document

import (
	"encoding/json"
	"fmt"
)

// DeepCopyJSON recursively copies a JSON object tree. The input must only
// contain values produced by a JSON decoder or hand-built from the same
// closed set of types.
func DeepCopyJSON(x map[string]any) map[string]any {
	return DeepCopyJSONValue(x).(map[string]any)
}

// DeepCopyJSONValue recursively copies any JSON-compatible value. It panics
// on values outside the JSON type set, since such a value could not have come
// from a JSON decoder and indicates a programming error in the caller.
func DeepCopyJSONValue(x any) any {
	switch x := x.(type) {
	case map[string]any:
		if x == nil {
			return x
		}
		clone := make(map[string]any, len(x))
		for k, v := range x {
			clone[k] = DeepCopyJSONValue(v)
		}
		return clone
	case Document:
		if x == nil {
			return x
		}
		clone := make(map[string]any, len(x))
		for k, v := range x {
			clone[k] = DeepCopyJSONValue(v)
		}
		return clone
	case []any:
		if x == nil {
			return x
		}
		clone := make([]any, len(x))
		for i, v := range x {
			clone[i] = DeepCopyJSONValue(v)
		}
		return clone
	case string, bool, nil,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return x
	default:
		panic(fmt.Errorf("cannot deep copy %T: not a JSON-compatible value", x))
	}
}
