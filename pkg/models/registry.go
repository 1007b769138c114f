package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// ErrNotFound indicates a lookup for a type name nothing was registered
// under.
var ErrNotFound = errors.New("models: unknown type")

// Registry maps normalized type names to built model types. Declaring a type
// registers it as a side effect; redeclaring a name logs a warning and
// replaces the entry, last write wins.
//
// Registration is expected to happen once, early, before concurrent use; the
// registry does no locking of its own.
type Registry struct {
	log   zerolog.Logger
	types map[string]*Type
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger that receives name-collision warnings. Without
// it, collisions are silently absorbed.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Registry) { r.log = log }
}

// NewRegistry creates an empty type registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		log:   zerolog.Nop(),
		types: make(map[string]*Type),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Declare builds and registers the model type described by def. A Template is
// built from scratch; a Type that was already built is returned unchanged, so
// declaration can be applied defensively without double-wrapping.
func (r *Registry) Declare(def Definition) (*Type, error) {
	switch d := def.(type) {
	case *Type:
		if d == nil {
			return nil, errors.New("models: cannot declare a nil type")
		}
		return d, nil
	case *Template:
		if d == nil {
			return nil, errors.New("models: cannot declare a nil template")
		}
		return r.build(d)
	default:
		return nil, fmt.Errorf("models: cannot declare %T", def)
	}
}

// DeclareType builds and registers a fresh type whose declared fields are
// exactly the given names, each with a constant default.
func (r *Registry) DeclareType(name string, defaults map[string]any) (*Type, error) {
	specs := make([]FieldSpec, 0, len(defaults))
	for _, fieldName := range sortedKeys(defaults) {
		specs = append(specs, FieldSpec{Name: fieldName, Default: defaults[fieldName]})
	}
	return r.build(&Template{Name: name, Fields: specs})
}

// Get returns the type registered under name. The name is normalized before
// lookup; an unregistered name fails with an error wrapping ErrNotFound.
func (r *Registry) Get(name string) (*Type, error) {
	key := normalizeName(name)
	typ, ok := r.types[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return typ, nil
}

// Has reports whether a type is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.types[normalizeName(name)]
	return ok
}

// List returns all registry keys in sorted order.
func (r *Registry) List() []string {
	keys := make([]string, 0, len(r.types))
	for key := range r.types {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.types)
}

// build runs the type construction algorithm: merge base field sets (or the
// built-in base fields when there are no bases), normalize every declared
// field into a descriptor, force _type to the registry key, bind descriptor
// names, and register the result.
func (r *Registry) build(tpl *Template) (*Type, error) {
	key := normalizeName(tpl.Name)
	if key == "" {
		return nil, errors.New("models: type name is required")
	}

	fields := make(map[string]*Field)
	if len(tpl.Bases) == 0 {
		fields[FieldID] = Constant(nil).WithDoc("model identifier")
	}
	for _, base := range tpl.Bases {
		if base == nil {
			return nil, fmt.Errorf("models: type %q has a nil base", key)
		}
		for name, f := range base.fields {
			fields[name] = f
		}
	}

	for _, spec := range tpl.Fields {
		if spec.Name == "" {
			return nil, fmt.Errorf("models: type %q declares a field without a name", key)
		}
		fields[spec.Name] = spec.descriptor()
	}

	// Whatever the declaration said, every instance reports its own
	// registry key.
	fields[FieldType] = Constant(key).WithDoc("the lowercase type name")

	for name, f := range fields {
		f.bindName(name)
	}

	typ := &Type{key: key, doc: tpl.Doc, fields: fields}
	r.register(typ)
	return typ, nil
}

func (r *Registry) register(typ *Type) {
	if existing, ok := r.types[typ.key]; ok {
		r.log.Warn().
			Str("type", typ.key).
			Stringer("old", existing).
			Stringer("new", typ).
			Msg("overwriting registered model type")
	}
	r.types[typ.key] = typ
}

// Built-in field names present on every model type.
const (
	FieldID   = "_id"
	FieldType = "_type"
)

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
