package mtschema

import (
	"context"
	"fmt"
	"strings"

	js "github.com/kujaku11/mtschema/jsonschema"
)

// Kind identifies one member of a field's accepted type union.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindDate     // calendar date, normalized to UTC midnight
	KindDateTime // instant, normalized to UTC
	KindStringList
	KindFloatList
	KindBoolList
	KindNull // explicit null is an acceptable value
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindDate:
		return "date"
	case KindDateTime:
		return "datetime"
	case KindStringList:
		return "string list"
	case KindFloatList:
		return "float list"
	case KindBoolList:
		return "boolean list"
	case KindNull:
		return "null"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Style constrains the lexical form of a field value after type coercion.
type Style int

const (
	StyleFree Style = iota
	StyleVocabulary // closed set of allowed values (FieldSpec.Vocab)
	StyleAlphaNumeric
	StyleEmail
	StyleURL
	StyleNameList // list entries are trimmed, non-empty names
)

func (s Style) String() string {
	switch s {
	case StyleFree:
		return "free form"
	case StyleVocabulary:
		return "controlled vocabulary"
	case StyleAlphaNumeric:
		return "alpha numeric"
	case StyleEmail:
		return "email"
	case StyleURL:
		return "url"
	case StyleNameList:
		return "name list"
	}
	return fmt.Sprintf("style(%d)", int(s))
}

// FieldSpec declares the contract for a single dotted-path attribute: the
// accepted type union in coercion priority order, requiredness, default,
// units, and lexical style.
type FieldSpec struct {
	Path        string
	Kinds       []Kind
	Required    bool
	Default     any
	Units       string
	Style       Style
	Vocab       []string
	Min, Max    *float64
	Description string
}

// HasDefault reports whether the field declares a default value.
func (f FieldSpec) HasDefault() bool { return f.Default != nil }

func (f FieldSpec) acceptsKind(k Kind) bool {
	for _, have := range f.Kinds {
		if have == k {
			return true
		}
	}
	return false
}

// UnknownPolicy controls how keys absent from the schema are handled.
type UnknownPolicy int

const (
	// UnknownStrict reports every undeclared key as an unknown_field issue.
	UnknownStrict UnknownPolicy = iota
	// UnknownStrip silently drops undeclared keys.
	UnknownStrip
)

// Schema is the contract shared by RecordSchema and SchemaSet: validate raw
// input into a Record, or project the declaration into JSON Schema.
type Schema interface {
	// SchemaName returns the catalog name of the schema.
	SchemaName() string
	// Parse transforms raw input into a Record (coerce -> default -> style
	// checks), collecting every field issue before failing.
	Parse(ctx context.Context, v any) (*Record, error)
	// Validate runs Parse and discards the Record.
	Validate(ctx context.Context, v any) error
	// JSONSchema projects the schema into a JSON Schema representation.
	JSONSchema() (*js.Schema, error)
}

type memberKind int

const (
	memberField memberKind = iota
	memberEmbed
	memberList
)

type member struct {
	kind memberKind
	name string // field dotted path, embed prefix, or list name
}

// RecordSchema is a named, ordered, immutable collection of FieldSpecs.
// Sub-records are mounted under a dotted prefix; child-record lists are
// declared by name and validated into ListDicts.
type RecordSchema struct {
	name     string
	keyField string
	unknown  UnknownPolicy
	order    []member
	fields   map[string]FieldSpec
	embeds   map[string]*RecordSchema
	lists    map[string]Schema
}

// SchemaName returns the schema's catalog name.
func (s *RecordSchema) SchemaName() string { return s.name }

// KeyField returns the dotted path of the field that keys records of this
// schema inside a ListDict, or "" when none was declared.
func (s *RecordSchema) KeyField() string { return s.keyField }

// Resolve returns the FieldSpec for a dotted path, descending through mounted
// sub-records. Unknown paths fail with *UnknownFieldError.
func (s *RecordSchema) Resolve(path string) (FieldSpec, error) {
	if f, ok := s.fields[path]; ok {
		return f, nil
	}
	if head, rest, ok := strings.Cut(path, "."); ok {
		if child, ok := s.embeds[head]; ok {
			f, err := child.Resolve(rest)
			if err != nil {
				return FieldSpec{}, &UnknownFieldError{Schema: s.name, Path: path}
			}
			f.Path = head + "." + f.Path
			return f, nil
		}
	}
	return FieldSpec{}, &UnknownFieldError{Schema: s.name, Path: path}
}

// Fields returns every leaf FieldSpec in declaration order, with mounted
// sub-record paths expanded under their prefix.
func (s *RecordSchema) Fields() []FieldSpec {
	var out []FieldSpec
	for _, m := range s.order {
		switch m.kind {
		case memberField:
			out = append(out, s.fields[m.name])
		case memberEmbed:
			for _, f := range s.embeds[m.name].Fields() {
				f.Path = m.name + "." + f.Path
				out = append(out, f)
			}
		}
	}
	return out
}

// Lists returns the declared child-list names in declaration order.
func (s *RecordSchema) Lists() []string {
	var out []string
	for _, m := range s.order {
		if m.kind == memberList {
			out = append(out, m.name)
		}
	}
	return out
}

// ListSchema returns the child schema validating entries of the named list.
func (s *RecordSchema) ListSchema(name string) (Schema, error) {
	child, ok := s.lists[name]
	if !ok {
		return nil, &UnknownFieldError{Schema: s.name, Path: name}
	}
	return child, nil
}

// Builder assembles a RecordSchema. Definition mistakes accumulate and are
// reported by Build; MustBuild panics on them.
type Builder struct {
	name     string
	keyField string
	unknown  UnknownPolicy
	order    []member
	fields   map[string]FieldSpec
	embeds   map[string]*RecordSchema
	lists    map[string]Schema
	errs     []error
}

// NewSchema creates a schema builder with safe defaults (UnknownStrict).
func NewSchema(name string) *Builder {
	return &Builder{
		name:    name,
		unknown: UnknownStrict,
		fields:  map[string]FieldSpec{},
		embeds:  map[string]*RecordSchema{},
		lists:   map[string]Schema{},
	}
}

func (b *Builder) fail(format string, args ...any) {
	b.errs = append(b.errs, &SchemaError{Schema: b.name, Reason: fmt.Sprintf(format, args...)})
}

func (b *Builder) nameTaken(first string) bool {
	if _, ok := b.embeds[first]; ok {
		return true
	}
	if _, ok := b.lists[first]; ok {
		return true
	}
	for path := range b.fields {
		if path == first || strings.HasPrefix(path, first+".") {
			return true
		}
	}
	return false
}

// Field registers a leaf attribute with its accepted type union in coercion
// priority order. Duplicate paths are schema errors.
func (b *Builder) Field(path string, kinds ...Kind) *FieldStep {
	if _, ok := b.fields[path]; ok {
		b.fail("field %q already registered", path)
		return &FieldStep{b: b, path: path}
	}
	first, _, _ := strings.Cut(path, ".")
	if _, ok := b.embeds[first]; ok {
		b.fail("field %q collides with embedded record %q", path, first)
		return &FieldStep{b: b, path: path}
	}
	if _, ok := b.lists[first]; ok {
		b.fail("field %q collides with list %q", path, first)
		return &FieldStep{b: b, path: path}
	}
	if len(kinds) == 0 {
		b.fail("field %q declares no kinds", path)
		kinds = []Kind{KindString}
	}
	b.fields[path] = FieldSpec{Path: path, Kinds: kinds}
	b.order = append(b.order, member{kind: memberField, name: path})
	return &FieldStep{b: b, path: path}
}

// Embed mounts a sub-record schema under a dotted prefix.
func (b *Builder) Embed(prefix string, child *RecordSchema) *Builder {
	if child == nil {
		b.fail("embed %q: nil child schema", prefix)
		return b
	}
	if strings.Contains(prefix, ".") {
		b.fail("embed %q: prefix must be a single segment", prefix)
		return b
	}
	if b.nameTaken(prefix) {
		b.fail("embed %q already registered", prefix)
		return b
	}
	b.embeds[prefix] = child
	b.order = append(b.order, member{kind: memberEmbed, name: prefix})
	return b
}

// List declares an ordered, keyed list of child records under the given name.
// The child schema must designate a key field so entries can be addressed.
func (b *Builder) List(name string, child Schema) *Builder {
	if child == nil {
		b.fail("list %q: nil child schema", name)
		return b
	}
	if b.nameTaken(name) {
		b.fail("list %q already registered", name)
		return b
	}
	b.lists[name] = child
	b.order = append(b.order, member{kind: memberList, name: name})
	return b
}

// Key designates the field whose value keys records of this schema inside a
// ListDict.
func (b *Builder) Key(path string) *Builder {
	b.keyField = path
	return b
}

// UnknownStrip sets the unknown-key policy to Strip.
func (b *Builder) UnknownStrip() *Builder {
	b.unknown = UnknownStrip
	return b
}

// UnknownStrict sets the unknown-key policy to Strict (the default).
func (b *Builder) UnknownStrict() *Builder {
	b.unknown = UnknownStrict
	return b
}

// Build finalizes the schema, verifying key-field resolution, vocabulary
// presence, and default validity.
func (b *Builder) Build() (*RecordSchema, error) {
	s := &RecordSchema{
		name:     b.name,
		keyField: b.keyField,
		unknown:  b.unknown,
		order:    b.order,
		fields:   b.fields,
		embeds:   b.embeds,
		lists:    b.lists,
	}
	errs := b.errs
	for _, m := range b.order {
		if m.kind != memberField {
			continue
		}
		f := b.fields[m.name]
		if f.Style == StyleVocabulary && len(f.Vocab) == 0 {
			errs = append(errs, &SchemaError{Schema: b.name, Reason: fmt.Sprintf("field %q: controlled vocabulary with no allowed values", f.Path)})
		}
		if f.HasDefault() {
			if _, iss := coerceField(f, f.Default); len(iss) > 0 {
				errs = append(errs, &SchemaError{Schema: b.name, Reason: fmt.Sprintf("field %q: default %v does not satisfy the field contract", f.Path, f.Default)})
			}
		}
	}
	if b.keyField != "" {
		if _, err := s.Resolve(b.keyField); err != nil {
			errs = append(errs, &SchemaError{Schema: b.name, Reason: fmt.Sprintf("key field %q is not declared", b.keyField)})
		}
	}
	if len(errs) > 0 {
		return nil, errs[0]
	}
	return s, nil
}

// MustBuild finalizes the schema and panics on definition errors.
func (b *Builder) MustBuild() *RecordSchema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// FieldStep refines the most recently registered field and chains back into
// the builder.
type FieldStep struct {
	b    *Builder
	path string
}

func (f *FieldStep) update(fn func(*FieldSpec)) *FieldStep {
	spec, ok := f.b.fields[f.path]
	if !ok {
		return f
	}
	fn(&spec)
	f.b.fields[f.path] = spec
	return f
}

// Required marks the field as required.
func (f *FieldStep) Required() *FieldStep {
	return f.update(func(s *FieldSpec) { s.Required = true })
}

// Default sets the value applied when the field is absent from input. The
// default is validated against the field contract at Build time.
func (f *FieldStep) Default(v any) *FieldStep {
	return f.update(func(s *FieldSpec) { s.Default = v })
}

// Units records the physical units of the field value.
func (f *FieldStep) Units(u string) *FieldStep {
	return f.update(func(s *FieldSpec) { s.Units = u })
}

// Style sets the lexical style constraint.
func (f *FieldStep) Style(st Style) *FieldStep {
	return f.update(func(s *FieldSpec) { s.Style = st })
}

// Vocab constrains the field to a closed set of allowed values and implies
// StyleVocabulary. Matching is case-insensitive; values normalize to the
// declared casing.
func (f *FieldStep) Vocab(vals ...string) *FieldStep {
	return f.update(func(s *FieldSpec) {
		s.Style = StyleVocabulary
		s.Vocab = vals
	})
}

// Range constrains a numeric field to the inclusive [min, max] interval.
func (f *FieldStep) Range(min, max float64) *FieldStep {
	return f.update(func(s *FieldSpec) {
		s.Min = &min
		s.Max = &max
	})
}

// Min constrains a numeric field to values >= v.
func (f *FieldStep) Min(v float64) *FieldStep {
	return f.update(func(s *FieldSpec) { s.Min = &v })
}

// Max constrains a numeric field to values <= v.
func (f *FieldStep) Max(v float64) *FieldStep {
	return f.update(func(s *FieldSpec) { s.Max = &v })
}

// Describe records the human-readable field description.
func (f *FieldStep) Describe(d string) *FieldStep {
	return f.update(func(s *FieldSpec) { s.Description = d })
}

// Chaining back into the builder.

func (f *FieldStep) Field(path string, kinds ...Kind) *FieldStep { return f.b.Field(path, kinds...) }
func (f *FieldStep) Embed(prefix string, child *RecordSchema) *Builder {
	return f.b.Embed(prefix, child)
}
func (f *FieldStep) List(name string, child Schema) *Builder { return f.b.List(name, child) }
func (f *FieldStep) Key(path string) *Builder                { return f.b.Key(path) }
func (f *FieldStep) UnknownStrip() *Builder                  { return f.b.UnknownStrip() }
func (f *FieldStep) Build() (*RecordSchema, error)           { return f.b.Build() }
func (f *FieldStep) MustBuild() *RecordSchema                { return f.b.MustBuild() }
