package models

// FieldSpec declares one field of a Template. Exactly one of Field, Provider,
// or Default is consulted, in that order: an explicit descriptor is used as
// is, a provider becomes a computed descriptor, and anything else becomes a
// constant default (including the zero value when nothing was set).
type FieldSpec struct {
	Name     string
	Default  any
	Provider Provider
	Field    *Field
	Doc      string
}

// Template is an explicit, ordered declaration of a model type. Bases
// contribute their full field sets; Fields add to or override them. The base
// model fields "_id" and "_type" are always present, whether or not any base
// is given.
type Template struct {
	Name   string
	Doc    string
	Bases  []*Type
	Fields []FieldSpec
}

// Definition is anything the registry can declare: a Template to build, or an
// already-built Type, which declaration returns unchanged.
type Definition interface {
	modelDefinition()
}

func (*Template) modelDefinition() {}
func (*Type) modelDefinition() {}

// descriptor normalizes the spec into a field descriptor.
func (s FieldSpec) descriptor() *Field {
	f := s.Field
	if f == nil {
		if s.Provider != nil {
			f = Computed(s.Provider)
		} else {
			f = Constant(s.Default)
		}
	}
	if s.Doc != "" {
		f.doc = s.Doc
	}
	return f
}
