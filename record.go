package mtschema

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// Record is a validated instance of a RecordSchema: a mapping from dotted
// field path to typed value, plus keyed child-record lists. Records are only
// mutated through Set, which re-runs the field's validation.
type Record struct {
	schema   *RecordSchema
	values   map[string]any
	presence PresenceMap
	children map[string]*ListDict[*Record]
}

// Schema returns the schema this record was validated against.
func (r *Record) Schema() *RecordSchema { return r.schema }

// Get returns the typed value at a dotted path. Unset optional fields yield
// nil. Undeclared paths fail with *UnknownFieldError.
func (r *Record) Get(path string) (any, error) {
	if _, err := r.schema.Resolve(path); err != nil {
		return nil, err
	}
	return r.values[path], nil
}

// Set replaces the value at a dotted path after re-running the field's
// coercion and constraint checks. The record is unchanged on failure.
func (r *Record) Set(ctx context.Context, path string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := r.schema.Resolve(path)
	if err != nil {
		return err
	}
	cv, iss := coerceField(f, v)
	if len(iss) > 0 {
		return iss
	}
	r.values[path] = cv
	p := PresenceSeen
	if v == nil {
		p |= PresenceWasNull
	}
	r.presence[path] = p
	return nil
}

// Presence returns the presence flags recorded for a dotted path.
func (r *Record) Presence(path string) Presence { return r.presence[path] }

// Key returns the record's ListDict key: the string form of the schema's
// designated key field, or "" when the schema declares none.
func (r *Record) Key() string {
	if r.schema.keyField == "" {
		return ""
	}
	v, ok := r.values[r.schema.keyField]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	}
	return fmt.Sprintf("%v", v)
}

// Children returns the keyed child-record list declared under name.
func (r *Record) Children(name string) (*ListDict[*Record], error) {
	ld, ok := r.children[name]
	if !ok {
		return nil, &UnknownFieldError{Schema: r.schema.name, Path: name}
	}
	return ld, nil
}

// ToMap serializes the record into a nested document. Validating the result
// against the record's schema yields an equal record.
func (r *Record) ToMap() map[string]any {
	out := map[string]any{}
	for _, f := range r.schema.Fields() {
		v, ok := r.values[f.Path]
		if !ok {
			continue
		}
		setPath(out, f.Path, renderValue(f, v))
	}
	for _, name := range r.schema.Lists() {
		ld := r.children[name]
		if ld == nil || ld.Len() == 0 {
			continue
		}
		items := make([]any, 0, ld.Len())
		for child := range ld.All() {
			items = append(items, child.ToMap())
		}
		out[name] = items
	}
	return out
}

// Flatten returns the record's leaf fields as a single dotted-path map.
// Child-record lists are not flattened; use Children for those.
func (r *Record) Flatten() map[string]any {
	out := map[string]any{}
	for _, f := range r.schema.Fields() {
		v, ok := r.values[f.Path]
		if !ok {
			continue
		}
		out[f.Path] = renderValue(f, v)
	}
	return out
}

// MarshalJSON serializes the nested document form.
func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ToMap())
}

// renderValue converts typed values back to their document form. Dates render
// as calendar dates when the field never accepts a time of day.
func renderValue(f FieldSpec, v any) any {
	t, ok := v.(time.Time)
	if !ok {
		return v
	}
	if f.acceptsKind(KindDateTime) {
		return FormatDateTime(t)
	}
	return FormatDate(t)
}
