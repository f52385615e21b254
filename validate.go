package mtschema

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/kujaku11/mtschema/i18n"
)

// Parse validates raw input against the schema and materializes a Record.
// Input may be a nested map, a map with flattened dotted keys, a mixture of
// both, or an existing Record (re-validated from its own serialized form).
// Every failing field is reported; issues are never truncated to the first.
func (s *RecordSchema) Parse(ctx context.Context, v any) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var doc map[string]any
	switch t := v.(type) {
	case map[string]any:
		doc = t
	case *Record:
		if t == nil {
			return nil, Issues{{Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: "nil record"}}
		}
		doc = t.ToMap()
	default:
		return nil, Issues{{Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, nil), Hint: fmt.Sprintf("expected a document, got %T", v)}}
	}
	rec, iss := s.parseDoc(ctx, nestDoc(doc))
	if len(iss) > 0 {
		return nil, iss
	}
	return rec, nil
}

// Validate runs Parse and discards the Record.
func (s *RecordSchema) Validate(ctx context.Context, v any) error {
	_, err := s.Parse(ctx, v)
	return err
}

// parseDoc materializes a (possibly partial) Record from a nested document,
// collecting every issue along the way.
func (s *RecordSchema) parseDoc(ctx context.Context, doc map[string]any) (*Record, Issues) {
	rec := &Record{
		schema:   s,
		values:   map[string]any{},
		presence: PresenceMap{},
		children: map[string]*ListDict[*Record]{},
	}
	var iss Issues
	consumed := map[string]bool{}

	for _, m := range s.order {
		switch m.kind {
		case memberField:
			f := s.fields[m.name]
			raw, found := lookupPath(doc, f.Path)
			if !found {
				if f.HasDefault() {
					v, diss := coerceField(f, f.Default)
					if len(diss) > 0 {
						// Build verifies defaults; this only fires on a
						// hand-assembled schema.
						iss = append(iss, diss...)
						continue
					}
					rec.values[f.Path] = v
					rec.presence[f.Path] |= PresenceDefaultApplied
				} else if f.Required {
					iss = append(iss, Issue{
						Path:    f.Path,
						Code:    CodeRequired,
						Message: i18n.T(CodeRequired, nil),
					})
				}
				continue
			}
			consumed[f.Path] = true
			rec.presence[f.Path] |= PresenceSeen
			if raw == nil {
				rec.presence[f.Path] |= PresenceWasNull
			}
			v, ciss := coerceField(f, raw)
			if len(ciss) > 0 {
				iss = append(iss, ciss...)
				continue
			}
			rec.values[f.Path] = v

		case memberEmbed:
			child := s.embeds[m.name]
			sub := map[string]any{}
			if raw, found := lookupPath(doc, m.name); found {
				consumed[m.name] = true
				mm, ok := raw.(map[string]any)
				if !ok && raw != nil {
					iss = append(iss, Issue{
						Path:    m.name,
						Code:    CodeInvalidType,
						Message: i18n.T(CodeInvalidType, nil),
						Hint:    "expected nested record",
					})
					continue
				}
				if mm != nil {
					sub = mm
				}
			}
			crec, ciss := child.parseDoc(ctx, nestDoc(sub))
			iss = append(iss, prefixIssues(m.name, ciss)...)
			for p, v := range crec.values {
				rec.values[m.name+"."+p] = v
			}
			mergePresence(rec.presence, m.name, crec.presence)

		case memberList:
			child := s.lists[m.name]
			ld := NewListDict[*Record]()
			rec.children[m.name] = ld
			raw, found := lookupPath(doc, m.name)
			if found {
				consumed[m.name] = true
			}
			if !found || raw == nil {
				continue
			}
			items, ok := raw.([]any)
			if !ok {
				iss = append(iss, Issue{
					Path:    m.name,
					Code:    CodeInvalidType,
					Message: i18n.T(CodeInvalidType, nil),
					Hint:    "expected a list of records",
				})
				continue
			}
			for i, e := range items {
				entryPath := fmt.Sprintf("%s.%d", m.name, i)
				cr, err := child.Parse(ctx, e)
				if err != nil {
					if ciss, ok := AsIssues(err); ok {
						iss = append(iss, prefixIssues(entryPath, ciss)...)
					} else {
						iss = append(iss, Issue{Path: entryPath, Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Cause: err})
					}
					continue
				}
				if err := ld.Add(cr); err != nil {
					iss = append(iss, Issue{
						Path:    entryPath,
						Code:    CodeDuplicateKey,
						Message: i18n.T(CodeDuplicateKey, nil),
						Hint:    "key " + cr.Key(),
						Cause:   err,
					})
				}
			}
		}
	}

	if s.unknown == UnknownStrict {
		iss = append(iss, unknownFieldIssues(doc, consumed)...)
	}
	return rec, iss
}

// nestDoc returns a copy of doc with flattened dotted keys expanded into
// nested maps. Nested maps are normalized recursively.
func nestDoc(doc map[string]any) map[string]any {
	out := map[string]any{}
	for k, v := range doc {
		if m, ok := v.(map[string]any); ok {
			v = nestDoc(m)
		}
		setPath(out, k, v)
	}
	return out
}

func setPath(doc map[string]any, path string, v any) {
	head, rest, more := strings.Cut(path, ".")
	if !more {
		if existing, ok := doc[head].(map[string]any); ok {
			if m, ok := v.(map[string]any); ok {
				for kk, vv := range m {
					setPath(existing, kk, vv)
				}
				return
			}
		}
		doc[head] = v
		return
	}
	child, ok := doc[head].(map[string]any)
	if !ok {
		child = map[string]any{}
		doc[head] = child
	}
	setPath(child, rest, v)
}

func lookupPath(doc map[string]any, path string) (any, bool) {
	head, rest, more := strings.Cut(path, ".")
	v, ok := doc[head]
	if !ok {
		return nil, false
	}
	if !more {
		return v, true
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return lookupPath(m, rest)
}

// unknownFieldIssues walks the document's leaf paths and reports any that no
// declared field, mount, or list consumed.
func unknownFieldIssues(doc map[string]any, consumed map[string]bool) Issues {
	var leaves []string
	collectLeaves(doc, "", &leaves)
	sort.Strings(leaves)

	var iss Issues
	for _, leaf := range leaves {
		if coveredBy(leaf, consumed) {
			continue
		}
		iss = append(iss, Issue{
			Path:    leaf,
			Code:    CodeUnknownField,
			Message: i18n.T(CodeUnknownField, nil),
		})
	}
	return iss
}

func collectLeaves(doc map[string]any, prefix string, out *[]string) {
	for k, v := range doc {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if m, ok := v.(map[string]any); ok && len(m) > 0 {
			collectLeaves(m, path, out)
			continue
		}
		*out = append(*out, path)
	}
}

// coveredBy reports whether the leaf path, or any dotted ancestor of it, was
// consumed by a declared schema member.
func coveredBy(leaf string, consumed map[string]bool) bool {
	if consumed[leaf] {
		return true
	}
	for i := len(leaf) - 1; i > 0; i-- {
		if leaf[i] == '.' && consumed[leaf[:i]] {
			return true
		}
	}
	return false
}
