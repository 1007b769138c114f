package openapimodel

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/Slapmytop/cherrymusic/pkg/models"
)

// Load parses raw as an OpenAPI document.
func Load(ctx context.Context, raw []byte) (*openapi3.T, error) {
	if len(raw) == 0 {
		return nil, errors.New("openapimodel: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapimodel: load document: %w", err)
	}
	return spec, nil
}

// Templates converts every object schema under components/schemas into a
// model template, in schema-name order. Property defaults become constant
// field defaults, property descriptions become field docs. Non-object
// schemas (enums, primitives, arrays) are skipped: they describe values, not
// record types.
func Templates(spec *openapi3.T) ([]*models.Template, error) {
	if spec == nil {
		return nil, errors.New("openapimodel: spec is required")
	}
	if spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return nil, errors.New("openapimodel: document has no component schemas")
	}

	names := make([]string, 0, len(spec.Components.Schemas))
	for name := range spec.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	var templates []*models.Template
	for _, name := range names {
		ref := spec.Components.Schemas[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		if !isObjectSchema(ref.Value) {
			continue
		}
		templates = append(templates, templateFromSchema(name, ref.Value))
	}
	if len(templates) == 0 {
		return nil, errors.New("openapimodel: no object schemas to declare")
	}
	return templates, nil
}

// Declare converts the document's object schemas into templates and declares
// each one into reg, returning the built types in declaration order.
func Declare(reg *models.Registry, spec *openapi3.T) ([]*models.Type, error) {
	if reg == nil {
		return nil, errors.New("openapimodel: registry is required")
	}

	templates, err := Templates(spec)
	if err != nil {
		return nil, err
	}

	declared := make([]*models.Type, 0, len(templates))
	for _, tpl := range templates {
		typ, err := reg.Declare(tpl)
		if err != nil {
			return nil, fmt.Errorf("openapimodel: declare %q: %w", tpl.Name, err)
		}
		declared = append(declared, typ)
	}
	return declared, nil
}

func templateFromSchema(name string, schema *openapi3.Schema) *models.Template {
	propNames := make([]string, 0, len(schema.Properties))
	for propName := range schema.Properties {
		propNames = append(propNames, propName)
	}
	sort.Strings(propNames)

	specs := make([]models.FieldSpec, 0, len(propNames))
	for _, propName := range propNames {
		prop := schema.Properties[propName]
		spec := models.FieldSpec{Name: propName}
		if prop != nil && prop.Value != nil {
			spec.Default = prop.Value.Default
			spec.Doc = prop.Value.Description
		}
		specs = append(specs, spec)
	}

	return &models.Template{
		Name:   name,
		Doc:    schema.Description,
		Fields: specs,
	}
}

func isObjectSchema(schema *openapi3.Schema) bool {
	if schema.Type == nil || len(schema.Type.Slice()) == 0 {
		// Untyped schemas with properties are treated as objects, the way
		// OpenAPI tooling conventionally does.
		return len(schema.Properties) > 0
	}
	return schema.Type.Is(openapi3.TypeObject)
}
