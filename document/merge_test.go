package document_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viewkit/viewkit/document"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name      string
		base      document.Document
		overrides map[string]any
		want      document.Document
	}{
		{
			name:      "no overrides is identity",
			base:      document.Document{"a": 1, "b": 2},
			overrides: nil,
			want:      document.Document{"a": 1, "b": 2},
		},
		{
			name:      "scalar override replaces, null override is a no-op",
			base:      document.Document{"a": 1, "b": 2},
			overrides: map[string]any{"a": 5, "c": nil},
			want:      document.Document{"a": 5, "b": 2},
		},
		{
			name:      "null never clears an existing key",
			base:      document.Document{"a": 1, "b": 2},
			overrides: map[string]any{"b": nil},
			want:      document.Document{"a": 1, "b": 2},
		},
		{
			name:      "nested override replaces wholesale",
			base:      document.Document{"o": map[string]any{"x": 1, "y": 2}},
			overrides: map[string]any{"o": map[string]any{"x": 9}},
			want:      document.Document{"o": map[string]any{"x": 9}},
		},
		{
			name:      "nil base",
			base:      nil,
			overrides: map[string]any{"a": 1},
			want:      document.Document{"a": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := document.Merge(tt.base, tt.overrides)
			assert.True(t, document.Equal(tt.want, got), cmp.Diff(tt.want, got))
		})
	}
}

func TestMerge_DoesNotMutateBase(t *testing.T) {
	base := document.Document{"a": 1, "o": map[string]any{"x": 1}}

	merged := document.Merge(base, map[string]any{"a": 5})
	merged["o"].(map[string]any)["x"] = 9

	assert.Equal(t, 1, base["a"])
	assert.Equal(t, 1, base["o"].(map[string]any)["x"])
}

func TestMerge_UnchangedFieldsStayIdentical(t *testing.T) {
	base := document.Document{
		"name":   "John Doe",
		"age":    float64(30),
		"scores": []any{float64(100), float64(90)},
	}

	got := document.Merge(base, map[string]any{"age": float64(31)})

	assert.Equal(t, float64(31), got["age"])
	assert.Equal(t, base["name"], got["name"])
	assert.Equal(t, base["scores"], got["scores"])
}

func TestMergePatch(t *testing.T) {
	t.Run("null deletes, unlike Merge", func(t *testing.T) {
		base := document.Document{"a": float64(1), "b": float64(2)}

		got, err := document.MergePatch(base, document.Document{"b": nil, "c": float64(3)})
		require.NoError(t, err)

		want := document.Document{"a": float64(1), "c": float64(3)}
		assert.True(t, document.Equal(want, got), cmp.Diff(want, got))
		_, present := got["b"]
		assert.False(t, present)
	})

	t.Run("nested maps merge recursively", func(t *testing.T) {
		base := document.Document{"o": map[string]any{"x": float64(1), "y": float64(2)}}

		got, err := document.MergePatch(base, document.Document{"o": map[string]any{"x": float64(9)}})
		require.NoError(t, err)

		want := document.Document{"o": map[string]any{"x": float64(9), "y": float64(2)}}
		assert.True(t, document.Equal(want, got), cmp.Diff(want, got))
	})

	t.Run("nil base", func(t *testing.T) {
		got, err := document.MergePatch(nil, document.Document{"a": float64(1)})
		require.NoError(t, err)
		assert.True(t, document.Equal(document.Document{"a": float64(1)}, got))
	})
}
