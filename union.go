package mtschema

import (
	"context"
	"fmt"
	"strings"

	"github.com/kujaku11/mtschema/i18n"
	js "github.com/kujaku11/mtschema/jsonschema"
)

// SchemaSet is a discriminated union of RecordSchemas: input is routed to one
// variant by the value of a discriminator field (e.g. a filter's "type").
type SchemaSet struct {
	name          string
	discriminator string
	order         []string
	variants      map[string]*RecordSchema
}

// NewSchemaSet creates a schema set dispatching on the given discriminator
// field.
func NewSchemaSet(name, discriminator string) *SchemaSet {
	return &SchemaSet{
		name:          name,
		discriminator: discriminator,
		variants:      map[string]*RecordSchema{},
	}
}

// Variant registers the schema validating inputs whose discriminator equals
// tag. Duplicate tags are schema definition errors and panic.
func (u *SchemaSet) Variant(tag string, s *RecordSchema) *SchemaSet {
	if _, ok := u.variants[tag]; ok {
		panic(&SchemaError{Schema: u.name, Reason: fmt.Sprintf("variant %q already registered", tag)})
	}
	if s == nil {
		panic(&SchemaError{Schema: u.name, Reason: fmt.Sprintf("variant %q: nil schema", tag)})
	}
	u.variants[tag] = s
	u.order = append(u.order, tag)
	return u
}

// SchemaName returns the set's catalog name.
func (u *SchemaSet) SchemaName() string { return u.name }

// Parse routes the input to the matching variant and validates it there.
func (u *SchemaSet) Parse(ctx context.Context, v any) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, Issues{{Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected a record"}}
	}
	raw, found := lookupPath(nestDoc(m), u.discriminator)
	if !found || raw == nil {
		return nil, Issues{{Path: u.discriminator, Code: CodeRequired, Message: i18n.T(CodeRequired, nil), Hint: "discriminator missing"}}
	}
	tag, ok := raw.(string)
	if !ok {
		return nil, Issues{{Path: u.discriminator, Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "expected string discriminator"}}
	}
	s, ok := u.variants[strings.ToLower(strings.TrimSpace(tag))]
	if !ok {
		return nil, Issues{{
			Path:    u.discriminator,
			Code:    CodeInvalidEnum,
			Message: i18n.T(CodeInvalidEnum, nil),
			Hint:    "allowed: " + strings.Join(u.order, ", "),
			Params:  map[string]any{"got": tag, "allowed": u.order},
		}}
	}
	return s.Parse(ctx, v)
}

// Validate runs Parse and discards the Record.
func (u *SchemaSet) Validate(ctx context.Context, v any) error {
	_, err := u.Parse(ctx, v)
	return err
}

// JSONSchema projects the set as a oneOf over its variants.
func (u *SchemaSet) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{}
	for _, tag := range u.order {
		vs, err := u.variants[tag].JSONSchema()
		if err != nil {
			return nil, err
		}
		out.OneOf = append(out.OneOf, vs)
	}
	return out, nil
}
