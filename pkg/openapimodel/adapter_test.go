package openapimodel_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Slapmytop/cherrymusic/pkg/models"
	"github.com/Slapmytop/cherrymusic/pkg/openapimodel"
)

const sampleSpec = `
openapi: 3.0.3
info:
  title: Library API
  version: 1.0.0
paths: {}
components:
  schemas:
    Track:
      type: object
      description: a single playable file
      properties:
        title:
          type: string
          default: untitled
          description: display title
        plays:
          type: integer
          default: 0
    Mood:
      type: string
      enum: [calm, upbeat]
`

func TestDeclareFromDocument(t *testing.T) {
	spec, err := openapimodel.Load(context.Background(), []byte(sampleSpec))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	reg := models.NewRegistry()
	declared, err := openapimodel.Declare(reg, spec)
	if err != nil {
		t.Fatalf("declare: %v", err)
	}
	if len(declared) != 1 {
		t.Fatalf("expected only the object schema to declare a type, got %d", len(declared))
	}

	track, err := reg.Get("track")
	if err != nil {
		t.Fatalf("get track: %v", err)
	}
	if track.Doc() != "a single playable file" {
		t.Fatalf("schema description should become the type doc, got %q", track.Doc())
	}

	view := track.New(nil).AsDict()
	if view["title"] != "untitled" {
		t.Fatalf("property default should become the field default, got %v", view["title"])
	}
	if view["_type"] != "track" {
		t.Fatalf("declared type must report its key, got %v", view["_type"])
	}

	title, ok := track.Field("title")
	if !ok {
		t.Fatalf("expected title descriptor")
	}
	if title.Doc() != "display title" {
		t.Fatalf("property description should become the field doc, got %q", title.Doc())
	}
}

func TestTemplatesSortedAndFiltered(t *testing.T) {
	spec, err := openapimodel.Load(context.Background(), []byte(sampleSpec))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	templates, err := openapimodel.Templates(spec)
	if err != nil {
		t.Fatalf("templates: %v", err)
	}

	var names []string
	for _, tpl := range templates {
		names = append(names, tpl.Name)
	}
	if diff := cmp.Diff([]string{"Track"}, names); diff != "" {
		t.Fatalf("unexpected templates (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsEmptyPayload(t *testing.T) {
	if _, err := openapimodel.Load(context.Background(), nil); err == nil {
		t.Fatalf("expected empty payload to fail")
	}
}
