package view_test

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viewkit/viewkit/document"
	"github.com/viewkit/viewkit/view"
)

func TestScheme_New_DispatchesOnTypeKey(t *testing.T) {
	scheme := view.NewScheme()
	scheme.MustRegister(func(d document.Document) (any, error) {
		p, ok := fromPersonDoc(d)
		if !ok {
			return nil, fmt.Errorf("could not build person")
		}
		return p, nil
	}, view.NewVersionedType("Person", "v1"))

	doc := personDoc()
	doc["type"] = "Person/v1"

	obj, err := scheme.New(doc)
	require.NoError(t, err)

	p, ok := obj.(*person)
	require.True(t, ok)

	name, ok := view.Get[string](p.View, "name")
	require.True(t, ok)
	assert.Equal(t, "John Doe", name)
}

func TestScheme_New_UnknownType(t *testing.T) {
	scheme := view.NewScheme()

	_, err := scheme.New(document.Document{"type": "Unknown/v1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported type")
}

func TestScheme_New_AllowUnknownFallsBackToView(t *testing.T) {
	scheme := view.NewScheme(view.WithAllowUnknown(), view.WithLogger(slog.Default()))

	obj, err := scheme.New(document.Document{"type": "Unknown/v1", "a": float64(1)})
	require.NoError(t, err)

	v, ok := obj.(*view.View)
	require.True(t, ok)

	a, ok := view.Get[int](v, "a")
	require.True(t, ok)
	assert.Equal(t, 1, a)
}

func TestScheme_New_MissingOrBadTypeKey(t *testing.T) {
	scheme := view.NewScheme(view.WithAllowUnknown())

	_, err := scheme.New(document.Document{"a": 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no "type" key`)

	_, err = scheme.New(document.Document{"type": float64(1)})
	require.Error(t, err)

	_, err = scheme.New(document.Document{"type": "a/b/c"})
	require.Error(t, err)
}

func TestScheme_Register_Duplicate(t *testing.T) {
	scheme := view.NewScheme()
	ctor := func(document.Document) (any, error) { return nil, nil }

	require.NoError(t, scheme.Register(ctor, view.NewUnversionedType("Person")))
	err := scheme.Register(ctor, view.NewUnversionedType("Person"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	require.Panics(t, func() {
		scheme.MustRegister(ctor, view.NewUnversionedType("Person"))
	})
}

func TestScheme_IsRegisteredAndClone(t *testing.T) {
	scheme := view.NewScheme()
	scheme.MustRegister(func(document.Document) (any, error) { return nil, nil },
		view.NewVersionedType("Person", "v1"), view.NewVersionedType("Person", "v2"))

	assert.True(t, scheme.IsRegistered(view.NewVersionedType("Person", "v1")))
	assert.True(t, scheme.IsRegistered(view.NewVersionedType("Person", "v2")))
	assert.False(t, scheme.IsRegistered(view.NewVersionedType("Person", "v3")))

	clone := scheme.Clone()
	assert.True(t, clone.IsRegistered(view.NewVersionedType("Person", "v1")))

	clone.MustRegister(func(document.Document) (any, error) { return nil, nil },
		view.NewVersionedType("Company", "v1"))
	assert.False(t, scheme.IsRegistered(view.NewVersionedType("Company", "v1")),
		"registrations on a clone must not leak back")
}
