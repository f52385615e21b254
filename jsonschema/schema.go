package jsonschema

// Schema is a minimal JSON Schema representation used for export of the
// metadata catalog. Keep this struct small and extend incrementally.
type Schema struct {
	// Core
	Type        string   `json:"type,omitempty"`
	Format      string   `json:"format,omitempty"`
	Default     any      `json:"default,omitempty"`
	Description string   `json:"description,omitempty"`
	Enum        []string `json:"enum,omitempty"`

	// Numeric
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`

	// Units is a vendor extension carrying the physical units of a field.
	Units string `json:"x-units,omitempty"`
}
