package models

import (
	"fmt"
	"sort"
	"strings"
)

// Type is a built, registered model type: a registry key plus the closed set
// of field descriptors merged from its bases and its own declaration. The
// field set never shrinks once the type is built.
type Type struct {
	key    string
	doc    string
	fields map[string]*Field
}

// Key returns the normalized registry key (the lowercased type name).
func (t *Type) Key() string {
	return t.key
}

// Doc returns the doc string given at declaration time.
func (t *Type) Doc() string {
	return t.doc
}

// Fields returns the sorted names of every field served by a descriptor.
func (t *Type) Fields() []string {
	names := make([]string, 0, len(t.fields))
	for name := range t.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Field returns the descriptor bound to name, if the type declares it.
func (t *Type) Field(name string) (*Field, bool) {
	f, ok := t.fields[name]
	return f, ok
}

// New constructs an instance of this type. The instance's known-field set is
// seeded from the type, then values are applied as a bulk update.
func (t *Type) New(values map[string]any) *Instance {
	instance := &Instance{
		typ:    t,
		fields: make(map[string]struct{}, len(t.fields)),
		values: make(map[string]any),
	}
	for name := range t.fields {
		instance.fields[name] = struct{}{}
	}
	instance.Update(values)
	return instance
}

func (t *Type) String() string {
	return fmt.Sprintf("models.Type(%s, fields=[%s])", t.key, strings.Join(t.Fields(), " "))
}
