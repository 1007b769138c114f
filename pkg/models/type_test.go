package models_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Slapmytop/cherrymusic/pkg/models"
)

func TestDeclareTypeSpecMode(t *testing.T) {
	reg := models.NewRegistry()

	track, err := reg.DeclareType("Track", map[string]any{
		"title": "untitled",
		"plays": 0,
	})
	if err != nil {
		t.Fatalf("declare: %v", err)
	}

	registered, err := reg.Get("track")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if registered != track {
		t.Fatalf("registry returned a different type")
	}

	want := map[string]any{
		"_id":   nil,
		"_type": "track",
		"title": "untitled",
		"plays": 0,
	}
	if diff := cmp.Diff(want, track.New(nil).AsDict()); diff != "" {
		t.Fatalf("unexpected dict view (-want +got):\n%s", diff)
	}
}

func TestDeclareTemplateIdempotent(t *testing.T) {
	reg := models.NewRegistry()

	track, err := reg.Declare(&models.Template{
		Name:   "Track",
		Fields: []models.FieldSpec{{Name: "title", Default: "untitled"}},
	})
	if err != nil {
		t.Fatalf("declare template: %v", err)
	}

	again, err := reg.Declare(track)
	if err != nil {
		t.Fatalf("redeclare built type: %v", err)
	}
	if again != track {
		t.Fatalf("declaring a built type must return it unchanged")
	}
	if reg.Len() != 1 {
		t.Fatalf("idempotent declaration must not register again, got %d entries", reg.Len())
	}
}

func TestTemplateBasesMergeFields(t *testing.T) {
	reg := models.NewRegistry()

	item, err := reg.Declare(&models.Template{
		Name:   "Item",
		Fields: []models.FieldSpec{{Name: "name", Default: ""}},
	})
	if err != nil {
		t.Fatalf("declare base: %v", err)
	}

	track, err := reg.Declare(&models.Template{
		Name:   "Track",
		Bases:  []*models.Type{item},
		Fields: []models.FieldSpec{{Name: "plays", Default: 0}},
	})
	if err != nil {
		t.Fatalf("declare derived: %v", err)
	}

	want := []string{"_id", "_type", "name", "plays"}
	if diff := cmp.Diff(want, track.Fields()); diff != "" {
		t.Fatalf("unexpected field set (-want +got):\n%s", diff)
	}

	got, _ := track.New(nil).Get("_type")
	if got != "track" {
		t.Fatalf("derived type must report its own key, got %v", got)
	}
}

func TestTypeFieldAlwaysHoldsRegistryKey(t *testing.T) {
	reg := models.NewRegistry()

	track, err := reg.Declare(&models.Template{
		Name:   "Track",
		Fields: []models.FieldSpec{{Name: models.FieldType, Default: "bogus"}},
	})
	if err != nil {
		t.Fatalf("declare: %v", err)
	}

	got, _ := track.New(nil).Get(models.FieldType)
	if got != "track" {
		t.Fatalf("_type must be overwritten with the registry key, got %v", got)
	}
}

func TestExplicitDescriptorKeepsBinding(t *testing.T) {
	reg := models.NewRegistry()

	desc := models.Constant("untitled").WithDoc("track title")
	track, err := reg.Declare(&models.Template{
		Name:   "Track",
		Fields: []models.FieldSpec{{Name: "title", Field: desc}},
	})
	if err != nil {
		t.Fatalf("declare: %v", err)
	}

	bound, ok := track.Field("title")
	if !ok {
		t.Fatalf("expected title descriptor on the type")
	}
	if bound != desc {
		t.Fatalf("explicit descriptors must be preserved, not rewrapped")
	}
	if bound.Name() != "title" {
		t.Fatalf("descriptor name must be bound at build time, got %q", bound.Name())
	}
	if bound.Doc() != "track title" {
		t.Fatalf("unexpected doc %q", bound.Doc())
	}
}
