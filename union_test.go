package mtschema_test

import (
	"context"
	"testing"

	mtschema "github.com/kujaku11/mtschema"
)

func shapeSet(t *testing.T) *mtschema.SchemaSet {
	t.Helper()
	circle := mtschema.NewSchema("circle").
		Field("type", mtschema.KindString).Required().
		Field("radius", mtschema.KindFloat).Required().
		MustBuild()
	square := mtschema.NewSchema("square").
		Field("type", mtschema.KindString).Required().
		Field("side", mtschema.KindFloat).Required().
		MustBuild()
	return mtschema.NewSchemaSet("shape", "type").
		Variant("circle", circle).
		Variant("square", square)
}

func TestSchemaSet_DispatchesOnDiscriminator(t *testing.T) {
	set := shapeSet(t)
	rec, err := set.Parse(context.Background(), map[string]any{"type": "circle", "radius": 2.0})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if rec.Schema().SchemaName() != "circle" {
		t.Fatalf("dispatched to %q", rec.Schema().SchemaName())
	}
	if v, _ := rec.Get("radius"); v != 2.0 {
		t.Fatalf("radius = %v", v)
	}
}

func TestSchemaSet_MissingDiscriminator(t *testing.T) {
	set := shapeSet(t)
	_, err := set.Parse(context.Background(), map[string]any{"radius": 2.0})
	iss, ok := mtschema.AsIssues(err)
	if !ok || iss[0].Code != mtschema.CodeRequired || iss[0].Path != "type" {
		t.Fatalf("expected required at type, got %v", err)
	}
}

func TestSchemaSet_UnknownVariant(t *testing.T) {
	set := shapeSet(t)
	_, err := set.Parse(context.Background(), map[string]any{"type": "triangle"})
	iss, ok := mtschema.AsIssues(err)
	if !ok || iss[0].Code != mtschema.CodeInvalidEnum {
		t.Fatalf("expected invalid_enum, got %v", err)
	}
}

func TestSchemaSet_VariantIssuesSurface(t *testing.T) {
	set := shapeSet(t)
	_, err := set.Parse(context.Background(), map[string]any{"type": "square"})
	iss, ok := mtschema.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	found := false
	for _, it := range iss {
		if it.Path == "side" && it.Code == mtschema.CodeRequired {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected required at side, got %v", iss)
	}
}
