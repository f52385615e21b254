package mtschema

import (
	"strings"
	"time"

	js "github.com/kujaku11/mtschema/jsonschema"
)

// JSONSchema projects the schema into a JSON Schema representation: nested
// properties for embedded records, required lists, defaults, vocabularies,
// numeric ranges, and array items for child-record lists.
func (s *RecordSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "object", Properties: map[string]*js.Schema{}}
	if s.unknown == UnknownStrict {
		out.AdditionalProperties = false
	}
	for _, m := range s.order {
		switch m.kind {
		case memberField:
			f := s.fields[m.name]
			node, leaf := propertyNode(out, f.Path)
			node.Properties[leaf] = fieldJSONSchema(f)
			if f.Required {
				node.Required = append(node.Required, leaf)
			}
		case memberEmbed:
			child, err := s.embeds[m.name].JSONSchema()
			if err != nil {
				return nil, err
			}
			out.Properties[m.name] = child
		case memberList:
			item, err := s.lists[m.name].JSONSchema()
			if err != nil {
				return nil, err
			}
			out.Properties[m.name] = &js.Schema{Type: "array", Items: item}
		}
	}
	return out, nil
}

// propertyNode descends/creates object nodes for an inline dotted path and
// returns the node owning the leaf property.
func propertyNode(root *js.Schema, path string) (*js.Schema, string) {
	node := root
	for {
		head, rest, more := strings.Cut(path, ".")
		if !more {
			return node, head
		}
		child, ok := node.Properties[head]
		if !ok || child.Type != "object" {
			child = &js.Schema{Type: "object", Properties: map[string]*js.Schema{}}
			node.Properties[head] = child
		}
		if child.Properties == nil {
			child.Properties = map[string]*js.Schema{}
		}
		node, path = child, rest
	}
}

func fieldJSONSchema(f FieldSpec) *js.Schema {
	out := &js.Schema{
		Description: f.Description,
		Units:       f.Units,
		Minimum:     f.Min,
		Maximum:     f.Max,
	}
	switch f.Kinds[0] {
	case KindString:
		out.Type = "string"
	case KindInt:
		out.Type = "integer"
	case KindFloat:
		out.Type = "number"
	case KindBool:
		out.Type = "boolean"
	case KindDate:
		out.Type = "string"
		out.Format = "date"
	case KindDateTime:
		out.Type = "string"
		out.Format = "date-time"
	case KindStringList:
		out.Type = "array"
		out.Items = &js.Schema{Type: "string"}
	case KindFloatList:
		out.Type = "array"
		out.Items = &js.Schema{Type: "number"}
	case KindBoolList:
		out.Type = "array"
		out.Items = &js.Schema{Type: "boolean"}
	case KindNull:
		out.Type = "null"
	}
	switch f.Style {
	case StyleVocabulary:
		out.Enum = f.Vocab
	case StyleEmail:
		out.Format = "email"
	case StyleURL:
		out.Format = "uri"
	}
	if f.HasDefault() {
		out.Default = f.Default
		if t, ok := f.Default.(time.Time); ok {
			out.Default = renderValue(f, t)
		}
	}
	return out
}
