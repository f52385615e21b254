package mtschema

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/kujaku11/mtschema/i18n"
)

// Source abstracts over polymorphic document inputs. Decoding is a thin
// collaborator: the validator itself only ever sees maps.
type Source interface {
	// Decode materializes the document as a nested map.
	Decode() (map[string]any, error)
	// Name identifies the source encoding for diagnostics.
	Name() string
}

// ParseFrom decodes a document from the source and validates it against the
// schema. Decode failures surface as parse_error issues.
func ParseFrom(ctx context.Context, s Schema, src Source) (*Record, error) {
	doc, err := src.Decode()
	if err != nil {
		if iss, ok := AsIssues(err); ok {
			return nil, iss
		}
		return nil, Issues{{Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Cause: err}}
	}
	return s.Parse(ctx, doc)
}

// JSONBytes wraps a JSON document held in memory.
func JSONBytes(b []byte) Source { return jsonSource{data: b} }

// JSONReader wraps a JSON document read from r.
func JSONReader(r io.Reader) Source { return jsonSource{r: r} }

type jsonSource struct {
	data []byte
	r    io.Reader
}

func (s jsonSource) Name() string { return "json" }

func (s jsonSource) Decode() (map[string]any, error) {
	data := s.data
	if s.r != nil {
		var err error
		data, err = io.ReadAll(s.r)
		if err != nil {
			return nil, err
		}
	}
	// Duplicate object keys silently shadow each other in every decoder;
	// detect them up front so they surface as issues instead of data loss.
	if iss := detectDuplicateKeys(data); len(iss) > 0 {
		return nil, iss
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// YAMLBytes wraps a YAML document held in memory.
func YAMLBytes(b []byte) Source { return yamlSource{data: b} }

// YAMLReader wraps a YAML document read from r.
func YAMLReader(r io.Reader) Source { return yamlSource{r: r} }

type yamlSource struct {
	data []byte
	r    io.Reader
}

func (s yamlSource) Name() string { return "yaml" }

func (s yamlSource) Decode() (map[string]any, error) {
	data := s.data
	if s.r != nil {
		var err error
		data, err = io.ReadAll(s.r)
		if err != nil {
			return nil, err
		}
	}
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	doc := yamlAnyToStringMap(node)
	if doc == nil {
		return nil, fmt.Errorf("mtschema: yaml document is not a mapping")
	}
	return doc, nil
}

// yamlAnyToStringMap normalizes yaml.v3 nodes (map[string]any or map[any]any)
// into the map[string]any shape the validator consumes.
func yamlAnyToStringMap(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(m))
		for k, vv := range m {
			out[k] = yamlNormalize(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, vv := range m {
			ks, ok := k.(string)
			if !ok {
				ks = fmt.Sprintf("%v", k)
			}
			out[ks] = yamlNormalize(vv)
		}
		return out
	}
	return nil
}

func yamlNormalize(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return yamlAnyToStringMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = yamlNormalize(e)
		}
		return out
	}
	return v
}
