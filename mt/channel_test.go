package mt_test

import (
	"context"
	"testing"

	mtschema "github.com/kujaku11/mtschema"
	"github.com/kujaku11/mtschema/mt"
)

func TestElectric_MinimalChannel(t *testing.T) {
	rec, err := mt.Electric().Parse(context.Background(), map[string]any{
		"type":      "electric",
		"component": "ex",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v, _ := rec.Get("units"); v != "counts" {
		t.Fatalf("units = %v, want default counts", v)
	}
	if v, _ := rec.Get("dipole_length"); v != 0.0 {
		t.Fatalf("dipole_length = %v, want default 0", v)
	}
	if v, _ := rec.Get("filter.applied"); len(v.([]bool)) != 1 || v.([]bool)[0] {
		t.Fatalf("filter.applied = %v, want default [false]", v)
	}
	if rec.Key() != "ex" {
		t.Fatalf("key = %q, want component", rec.Key())
	}
}

func TestChannel_SetDispatchesOnType(t *testing.T) {
	doc := map[string]any{
		"type":      "magnetic",
		"component": "hx",
		"sensor":    map[string]any{"manufacturer": "Zonge", "model": "ANT4"},
	}
	rec, err := mt.Channel().Parse(context.Background(), doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if rec.Schema().SchemaName() != "magnetic" {
		t.Fatalf("dispatched to %q", rec.Schema().SchemaName())
	}
	if v, _ := rec.Get("sensor.model"); v != "ANT4" {
		t.Fatalf("sensor.model = %v", v)
	}
}

func TestChannel_UnknownType(t *testing.T) {
	_, err := mt.Channel().Parse(context.Background(), map[string]any{"type": "seismic", "component": "zz"})
	iss, ok := mtschema.AsIssues(err)
	if !ok || iss[0].Code != mtschema.CodeInvalidEnum || iss[0].Path != "type" {
		t.Fatalf("expected invalid_enum at type, got %v", err)
	}
}

func TestChannel_RatingRange(t *testing.T) {
	doc := map[string]any{
		"type":         "electric",
		"component":    "ey",
		"data_quality": map[string]any{"rating": map[string]any{"value": 6}},
	}
	_, err := mt.Electric().Parse(context.Background(), doc)
	iss, _ := mtschema.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "data_quality.rating.value" || iss[0].Code != mtschema.CodeOutOfRange {
		t.Fatalf("expected out_of_range at data_quality.rating.value, got %v", iss)
	}
	doc["data_quality"] = map[string]any{"rating": map[string]any{"value": 5}}
	if _, err := mt.Electric().Parse(context.Background(), doc); err != nil {
		t.Fatalf("rating 5 must pass: %v", err)
	}
}

func TestChannel_AzimuthRangeAndFilters(t *testing.T) {
	doc := map[string]any{
		"type":                "magnetic",
		"component":           "hy",
		"measurement_azimuth": 450.0,
	}
	_, err := mt.Magnetic().Parse(context.Background(), doc)
	iss, _ := mtschema.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "measurement_azimuth" || iss[0].Code != mtschema.CodeOutOfRange {
		t.Fatalf("expected out_of_range at measurement_azimuth, got %v", iss)
	}

	doc["measurement_azimuth"] = 90.0
	doc["filter.applied"] = []any{true, false}
	doc["filter.name"] = "lowpass_magnetic, v_to_counts"
	rec, err := mt.Magnetic().Parse(context.Background(), doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	names, _ := rec.Get("filter.name")
	if got := names.([]string); len(got) != 2 || got[0] != "lowpass_magnetic" || got[1] != "v_to_counts" {
		t.Fatalf("filter.name = %v, want comma-split name list", names)
	}
}

func TestChannel_TimePeriodDefaults(t *testing.T) {
	rec, err := mt.Auxiliary().Parse(context.Background(), map[string]any{
		"type":      "auxiliary",
		"component": "temperature",
		"units":     "celsius",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if rec.Presence("time_period.start")&mtschema.PresenceDefaultApplied == 0 {
		t.Fatalf("expected default-applied presence on time_period.start")
	}
}
