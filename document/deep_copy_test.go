package document_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viewkit/viewkit/document"
)

func TestDeepCopyJSON(t *testing.T) {
	src := map[string]any{
		"a": nil,
		"b": int64(123),
		"c": map[string]any{
			"a": "b",
		},
		"d": []any{
			int64(1), int64(2),
		},
		"e": "estr",
		"f": true,
		"g": json.Number("123"),
	}
	deepCopy := document.DeepCopyJSON(src)
	assert.Equal(t, src, deepCopy)
}

func TestDeepCopyJSONValue_NonJSONPanics(t *testing.T) {
	require.Panics(t, func() {
		document.DeepCopyJSONValue(struct{}{})
	})
	require.Panics(t, func() {
		document.DeepCopyJSONValue(map[string]any{"ch": make(chan int)})
	})
}
