package view

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TypeKey is the Document key carrying the type discriminator a Scheme
// dispatches on.
const TypeKey = "type"

// Type identifies a registered model shape, with an optional version. It is
// the parsed form of a Document's "type" discriminator value.
type Type struct {
	Name    string
	Version string
}

// NewUnversionedType creates a Type without a version.
func NewUnversionedType(name string) Type {
	return Type{Name: name}
}

// NewVersionedType creates a Type with a version.
func NewVersionedType(name, version string) Type {
	return Type{Name: name, Version: version}
}

// TypeFromString parses a type string in the formats:
// - "name" (unversioned)
// - "name/version" (versioned)
func TypeFromString(typ string) (Type, error) {
	parts := strings.Split(typ, "/")
	if len(parts) > 2 {
		return Type{}, fmt.Errorf("invalid type %q, too many segments", typ)
	}

	t := Type{Name: parts[0]}
	if len(parts) == 2 {
		t.Version = parts[1]
	}
	if t.Name == "" {
		return Type{}, fmt.Errorf("invalid type %q, missing name", typ)
	}
	return t, nil
}

// Equal checks if two Types are the same.
func (t Type) Equal(other Type) bool {
	return t.Name == other.Name && t.Version == other.Version
}

// String returns the formatted type string, "name" or "name/version".
func (t Type) String() string {
	if t.Version != "" {
		return t.Name + "/" + t.Version
	}
	return t.Name
}

// HasVersion checks if the type has a version associated with it.
func (t Type) HasVersion() bool {
	return t.Version != ""
}

// IsEmpty checks if the Type is empty.
func (t Type) IsEmpty() bool {
	return t.Name == "" && t.Version == ""
}

// MarshalJSON converts the Type to a JSON string.
func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON parses a JSON string into the Type.
func (t *Type) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("could not unmarshal type: %w", err)
	}
	parsed, err := TypeFromString(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
