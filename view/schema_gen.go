package view

import (
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/viewkit/viewkit/document"
)

// GenerateJSONSchema takes a caller model type and uses reflection to
// generate a JSON Schema representation for it. Fields typed as
// document.Document render as plain open objects, and Type fields as their
// string form, matching how both marshal.
func GenerateJSONSchema(prototype any) ([]byte, error) {
	if prototype == nil {
		return nil, fmt.Errorf("cannot generate JSON schema for nil prototype")
	}

	r := &jsonschema.Reflector{
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			switch t {
			case reflect.TypeOf(document.Document{}):
				return &jsonschema.Schema{
					Type: "object",
				}
			case reflect.TypeOf(Type{}):
				return &jsonschema.Schema{
					Type:    "string",
					Pattern: `^[^/]+(?:/[^/]+)?$`,
				}
			}
			return nil
		},
	}

	schema, err := r.ReflectFromType(reflect.TypeOf(prototype)).MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to create json schema for prototype: %w", err)
	}
	return schema, nil
}
