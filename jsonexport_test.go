package mtschema_test

import (
	"testing"

	mtschema "github.com/kujaku11/mtschema"
)

func TestJSONSchema_Projection(t *testing.T) {
	s := siteSchema(t)
	js, err := s.JSONSchema()
	if err != nil {
		t.Fatalf("jsonschema: %v", err)
	}
	if js.Type != "object" {
		t.Fatalf("type = %q", js.Type)
	}
	if js.AdditionalProperties != false {
		t.Fatalf("strict schema must forbid additional properties")
	}

	datum := js.Properties["datum"]
	if datum == nil || datum.Type != "string" {
		t.Fatalf("datum property = %+v", datum)
	}
	if len(datum.Enum) != 2 || datum.Default != "WGS84" {
		t.Fatalf("datum enum/default = %v / %v", datum.Enum, datum.Default)
	}

	rating := js.Properties["rating"]
	if rating == nil || rating.Type != "integer" {
		t.Fatalf("rating property = %+v", rating)
	}
	if rating.Minimum == nil || *rating.Minimum != 0 || rating.Maximum == nil || *rating.Maximum != 5 {
		t.Fatalf("rating bounds = %v %v", rating.Minimum, rating.Maximum)
	}

	loc := js.Properties["location"]
	if loc == nil || loc.Type != "object" || loc.Properties["latitude"] == nil {
		t.Fatalf("location property = %+v", loc)
	}

	var required []string
	required = append(required, js.Required...)
	found := false
	for _, r := range required {
		if r == "id" {
			found = true
		}
	}
	if !found {
		t.Fatalf("required = %v, want id present", required)
	}
}

func TestJSONSchema_ListAndUnion(t *testing.T) {
	set := shapeSet(t)
	parent := mtschema.NewSchema("collection").
		Field("id", mtschema.KindString).
		List("shapes", set).
		MustBuild()
	js, err := parent.JSONSchema()
	if err != nil {
		t.Fatalf("jsonschema: %v", err)
	}
	shapes := js.Properties["shapes"]
	if shapes == nil || shapes.Type != "array" || shapes.Items == nil {
		t.Fatalf("shapes property = %+v", shapes)
	}
	if len(shapes.Items.OneOf) != 2 {
		t.Fatalf("expected oneOf with 2 variants, got %+v", shapes.Items)
	}
}
