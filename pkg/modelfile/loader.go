package modelfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Slapmytop/cherrymusic/pkg/models"
)

// Document is the YAML shape modelfile understands:
//
//	types:
//	  - name: Track
//	    doc: a single playable file
//	    fields:
//	      - name: title
//	        default: untitled
//	      - name: plays
//	        default: 0
//	  - name: RatedTrack
//	    bases: [Track]
//	    fields:
//	      - name: rating
type Document struct {
	Types []TypeDecl `yaml:"types"`
}

// TypeDecl declares one model type.
type TypeDecl struct {
	Name   string      `yaml:"name"`
	Doc    string      `yaml:"doc,omitempty"`
	Bases  []string    `yaml:"bases,omitempty"`
	Fields []FieldDecl `yaml:"fields"`
}

// FieldDecl declares one field with a constant default.
type FieldDecl struct {
	Name    string `yaml:"name"`
	Default any    `yaml:"default,omitempty"`
	Doc     string `yaml:"doc,omitempty"`
}

// Declare parses raw as a model document and declares every type it contains
// into reg, in document order. Declared types are returned in the same order.
func Declare(reg *models.Registry, raw []byte) ([]*models.Type, error) {
	if reg == nil {
		return nil, fmt.Errorf("modelfile: registry is required")
	}

	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("modelfile: parse document: %w", err)
	}
	if len(doc.Types) == 0 {
		return nil, fmt.Errorf("modelfile: document declares no types")
	}

	declared := make([]*models.Type, 0, len(doc.Types))
	for _, decl := range doc.Types {
		typ, err := declareOne(reg, decl)
		if err != nil {
			return nil, err
		}
		declared = append(declared, typ)
	}
	return declared, nil
}

// DeclareFile reads path and declares its types into reg.
func DeclareFile(reg *models.Registry, path string) ([]*models.Type, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("modelfile: read document: %w", err)
	}
	return Declare(reg, raw)
}

func declareOne(reg *models.Registry, decl TypeDecl) (*models.Type, error) {
	if decl.Name == "" {
		return nil, fmt.Errorf("modelfile: type declaration without a name")
	}

	bases := make([]*models.Type, 0, len(decl.Bases))
	for _, baseName := range decl.Bases {
		base, err := reg.Get(baseName)
		if err != nil {
			return nil, fmt.Errorf("modelfile: type %q: base %w", decl.Name, err)
		}
		bases = append(bases, base)
	}

	specs := make([]models.FieldSpec, 0, len(decl.Fields))
	for _, field := range decl.Fields {
		if field.Name == "" {
			return nil, fmt.Errorf("modelfile: type %q declares a field without a name", decl.Name)
		}
		specs = append(specs, models.FieldSpec{
			Name:    field.Name,
			Default: field.Default,
			Doc:     field.Doc,
		})
	}

	return reg.Declare(&models.Template{
		Name:   decl.Name,
		Doc:    decl.Doc,
		Bases:  bases,
		Fields: specs,
	})
}
