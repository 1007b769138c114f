package models

import (
	"fmt"
	"reflect"
)

// Instance is a runtime object produced by a model type. It owns a mutable
// set of known field names, seeded from the type but independently
// extensible: setting a value under an unrecognized name grows the set.
//
// An Instance contains maps and is therefore statically non-comparable; it
// cannot be used as a map key. Content comparison goes through Equal, never
// through pointer identity.
type Instance struct {
	typ    *Type
	fields map[string]struct{}
	values map[string]any
}

// Type returns the model type this instance was constructed from.
func (in *Instance) Type() *Type {
	return in.typ
}

// Set stores value under name. A name the instance does not yet recognize is
// added to its known-field set, which is how instances grow fields beyond
// what the type declares.
func (in *Instance) Set(name string, value any) {
	if _, ok := in.fields[name]; !ok {
		in.fields[name] = struct{}{}
	}
	in.values[name] = value
}

// Get resolves the current value of name: an explicitly set value wins,
// otherwise the type's descriptor default is resolved fresh. The second
// return is false for names the instance does not recognize.
func (in *Instance) Get(name string) (any, bool) {
	if _, ok := in.fields[name]; !ok {
		return nil, false
	}
	if value, ok := in.values[name]; ok {
		return value, true
	}
	if f, ok := in.typ.Field(name); ok {
		return f.Get(in), true
	}
	return nil, true
}

// Fields returns the names currently part of this instance's dict view.
func (in *Instance) Fields() []string {
	names := make([]string, 0, len(in.fields))
	for name := range in.fields {
		names = append(names, name)
	}
	return names
}

// AsDict materializes the dict view: every known field name mapped to its
// currently resolved value. The map is computed fresh on each call; provider
// defaults are re-invoked, never cached.
func (in *Instance) AsDict() map[string]any {
	view := make(map[string]any, len(in.fields))
	for name := range in.fields {
		value, _ := in.Get(name)
		view[name] = value
	}
	return view
}

// Update applies every entry via Set and returns the instance for chaining.
func (in *Instance) Update(values map[string]any) *Instance {
	for name, value := range values {
		in.Set(name, value)
	}
	return in
}

// Equal reports whether the instance's dict view matches other, which may be
// another *Instance or a plain map[string]any. Any other comparand is not
// comparable and yields false.
func (in *Instance) Equal(other any) bool {
	switch o := other.(type) {
	case *Instance:
		if o == nil {
			return false
		}
		return reflect.DeepEqual(in.AsDict(), o.AsDict())
	case map[string]any:
		return reflect.DeepEqual(in.AsDict(), o)
	default:
		return false
	}
}

// String renders the dict view.
func (in *Instance) String() string {
	return fmt.Sprint(in.AsDict())
}
