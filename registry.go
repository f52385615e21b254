package mtschema

// Registry is an explicit, immutable-after-init catalog of schemas by name.
// Build it once at startup and share it by reference; Lookup is safe for
// concurrent use once registration is done.
type Registry struct {
	names  []string
	byName map[string]Schema
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: map[string]Schema{}}
}

// Register adds a schema under its own name. Duplicate registration is a
// definition error.
func (r *Registry) Register(s Schema) error {
	name := s.SchemaName()
	if _, ok := r.byName[name]; ok {
		return &SchemaError{Schema: name, Reason: "already registered"}
	}
	r.byName[name] = s
	r.names = append(r.names, name)
	return nil
}

// MustRegister adds schemas and panics on duplicates.
func (r *Registry) MustRegister(ss ...Schema) *Registry {
	for _, s := range ss {
		if err := r.Register(s); err != nil {
			panic(err)
		}
	}
	return r
}

// Lookup returns the schema registered under name, or *KeyNotFoundError.
func (r *Registry) Lookup(name string) (Schema, error) {
	s, ok := r.byName[name]
	if !ok {
		return nil, &KeyNotFoundError{Key: name}
	}
	return s, nil
}

// MustLookup returns the schema registered under name and panics when absent.
func (r *Registry) MustLookup(name string) Schema {
	s, err := r.Lookup(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Names returns the registered schema names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
