package models

import "fmt"

// Provider computes a field's default value from the owning instance. It is
// invoked on every resolution, so a provider that reads mutable instance
// state may return different values across calls.
type Provider func(*Instance) any

// Field describes one named attribute of a model type: a default value,
// either constant or lazily computed, together with the attribute name it is
// bound to and a human-readable doc string.
//
// The name is bound exactly once, when the owning type is built; a Field
// created inside a Template cannot know its attribute name before then.
type Field struct {
	name     string
	doc      string
	value    any
	provider Provider
}

// Constant returns a field descriptor with a fixed default value.
func Constant(value any) *Field {
	return &Field{value: value}
}

// Computed returns a field descriptor whose default is produced by fn on
// every access.
func Computed(fn Provider) *Field {
	return &Field{provider: fn}
}

// WithDoc attaches a doc string and returns the descriptor, so declarations
// can chain it. It must not be called after the owning type is built.
func (f *Field) WithDoc(doc string) *Field {
	f.doc = doc
	return f
}

// Get resolves the default value for instance. A provider default is invoked
// with the instance; a constant default is returned unchanged. Results are
// never cached.
func (f *Field) Get(instance *Instance) any {
	if f.provider != nil {
		return f.provider(instance)
	}
	return f.value
}

// Name reports the attribute name this descriptor is bound to. It is empty
// until the owning type has been built.
func (f *Field) Name() string {
	return f.name
}

// Doc returns the descriptor's doc string, falling back to its textual
// representation when none was given.
func (f *Field) Doc() string {
	if f.doc != "" {
		return f.doc
	}
	return f.String()
}

func (f *Field) String() string {
	if f.provider != nil {
		return fmt.Sprintf("field(%s, computed)", f.name)
	}
	return fmt.Sprintf("field(%s, default=%v)", f.name, f.value)
}

// bindName completes the descriptor once the owning type knows which
// attribute it hangs off.
func (f *Field) bindName(name string) {
	f.name = name
}
