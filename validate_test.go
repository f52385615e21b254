package mtschema_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	mtschema "github.com/kujaku11/mtschema"
)

func siteSchema(t *testing.T) *mtschema.RecordSchema {
	t.Helper()
	location := mtschema.NewSchema("location").
		Field("latitude", mtschema.KindFloat, mtschema.KindString).Default(0.0).Range(-90, 90).
		Field("longitude", mtschema.KindFloat, mtschema.KindString).Default(0.0).Range(-180, 180).
		MustBuild()
	return mtschema.NewSchema("site").
		Field("id", mtschema.KindString).Required().Style(mtschema.StyleAlphaNumeric).
		Field("datum", mtschema.KindString).Required().Vocab("WGS84", "NAD83").Default("WGS84").
		Field("rating", mtschema.KindInt).Default(int64(0)).Range(0, 5).
		Field("note", mtschema.KindString, mtschema.KindNull).
		Field("acquired", mtschema.KindDate).
		Embed("location", location).
		Key("id").
		MustBuild()
}

func issueCodes(t *testing.T, err error) map[string]string {
	t.Helper()
	iss, ok := mtschema.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues error, got %v", err)
	}
	out := map[string]string{}
	for _, it := range iss {
		out[it.Path] = it.Code
	}
	return out
}

func TestParse_RequiredMissing(t *testing.T) {
	s := siteSchema(t)
	_, err := s.Parse(context.Background(), map[string]any{})
	codes := issueCodes(t, err)
	if codes["id"] != mtschema.CodeRequired {
		t.Fatalf("expected required at id, got %v", codes)
	}
	// datum is required but carries a default, so it must not be reported.
	if _, ok := codes["datum"]; ok {
		t.Fatalf("datum with default should not be reported: %v", codes)
	}
}

func TestParse_DefaultsAndPresence(t *testing.T) {
	s := siteSchema(t)
	rec, err := s.Parse(context.Background(), map[string]any{"id": "EMT20"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	v, err := rec.Get("datum")
	if err != nil || v != "WGS84" {
		t.Fatalf("datum = %v (err %v), want WGS84", v, err)
	}
	if rec.Presence("datum")&mtschema.PresenceDefaultApplied == 0 {
		t.Fatalf("expected PresenceDefaultApplied on datum")
	}
	if rec.Presence("id")&mtschema.PresenceSeen == 0 {
		t.Fatalf("expected PresenceSeen on id")
	}
}

func TestParse_CoercionOrderFirstKindWins(t *testing.T) {
	s := mtschema.NewSchema("c").
		Field("value", mtschema.KindFloat, mtschema.KindString).
		Field("label", mtschema.KindString, mtschema.KindFloat).
		MustBuild()
	rec, err := s.Parse(context.Background(), map[string]any{
		"value": "12.5",
		"label": 3,
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v, _ := rec.Get("value"); v != 12.5 {
		t.Fatalf("value = %v (%T), want 12.5", v, v)
	}
	if v, _ := rec.Get("label"); v != "3" {
		t.Fatalf("label = %v (%T), want \"3\"", v, v)
	}
}

func TestParse_VocabularyNormalizesAndRejects(t *testing.T) {
	s := siteSchema(t)
	rec, err := s.Parse(context.Background(), map[string]any{"id": "A1", "datum": "wgs84"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v, _ := rec.Get("datum"); v != "WGS84" {
		t.Fatalf("datum = %v, want canonical WGS84", v)
	}

	_, err = s.Parse(context.Background(), map[string]any{"id": "A1", "datum": "EGSA87"})
	codes := issueCodes(t, err)
	if codes["datum"] != mtschema.CodeInvalidEnum {
		t.Fatalf("expected invalid_enum at datum, got %v", codes)
	}
}

func TestParse_RangeCheck(t *testing.T) {
	s := siteSchema(t)
	_, err := s.Parse(context.Background(), map[string]any{"id": "A1", "rating": 6})
	codes := issueCodes(t, err)
	if codes["rating"] != mtschema.CodeOutOfRange {
		t.Fatalf("expected out_of_range at rating, got %v", codes)
	}
}

func TestParse_DateLayouts(t *testing.T) {
	s := siteSchema(t)
	for _, in := range []string{"2020-06-01", "2020-06-01T14:30:00+00:00", "2020-06-01 14:30:00"} {
		rec, err := s.Parse(context.Background(), map[string]any{"id": "A1", "acquired": in})
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		v, _ := rec.Get("acquired")
		want := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
		if !v.(time.Time).Equal(want) {
			t.Fatalf("acquired %q = %v, want %v", in, v, want)
		}
	}

	_, err := s.Parse(context.Background(), map[string]any{"id": "A1", "acquired": "June 1st"})
	codes := issueCodes(t, err)
	if codes["acquired"] != mtschema.CodeInvalidFormat {
		t.Fatalf("expected invalid_format at acquired, got %v", codes)
	}
}

func TestParse_UnknownFieldStrictAndStrip(t *testing.T) {
	strict := siteSchema(t)
	_, err := strict.Parse(context.Background(), map[string]any{"id": "A1", "bogus": 1})
	codes := issueCodes(t, err)
	if codes["bogus"] != mtschema.CodeUnknownField {
		t.Fatalf("expected unknown_field at bogus, got %v", codes)
	}

	strip := mtschema.NewSchema("loose").
		Field("id", mtschema.KindString).Required().
		UnknownStrip().
		MustBuild()
	if _, err := strip.Parse(context.Background(), map[string]any{"id": "A1", "bogus": 1}); err != nil {
		t.Fatalf("strip parse: %v", err)
	}
}

func TestParse_FlattenedDottedKeys(t *testing.T) {
	s := siteSchema(t)
	rec, err := s.Parse(context.Background(), map[string]any{
		"id":                 "A1",
		"location.latitude":  45.5,
		"location.longitude": "-112.25",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v, _ := rec.Get("location.latitude"); v != 45.5 {
		t.Fatalf("latitude = %v", v)
	}
	if v, _ := rec.Get("location.longitude"); v != -112.25 {
		t.Fatalf("longitude = %v, want coerced float", v)
	}
}

func TestParse_CollectsAllIssues(t *testing.T) {
	s := siteSchema(t)
	_, err := s.Parse(context.Background(), map[string]any{
		"datum":  "EGSA87",
		"rating": 99,
		"bogus":  true,
	})
	iss, ok := mtschema.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	if len(iss) != 4 { // required id, invalid_enum datum, out_of_range rating, unknown bogus
		t.Fatalf("expected 4 issues, got %d: %v", len(iss), iss)
	}
}

func TestParse_ExplicitNull(t *testing.T) {
	s := siteSchema(t)
	rec, err := s.Parse(context.Background(), map[string]any{"id": "A1", "note": nil})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v, _ := rec.Get("note"); v != nil {
		t.Fatalf("note = %v, want nil", v)
	}
	if rec.Presence("note")&mtschema.PresenceWasNull == 0 {
		t.Fatalf("expected PresenceWasNull on note")
	}

	// null on a field that does not accept it is a type failure
	_, err = s.Parse(context.Background(), map[string]any{"id": nil})
	codes := issueCodes(t, err)
	if codes["id"] != mtschema.CodeInvalidType {
		t.Fatalf("expected invalid_type at id, got %v", codes)
	}
}

func TestParse_RoundTripIdempotent(t *testing.T) {
	s := siteSchema(t)
	rec, err := s.Parse(context.Background(), map[string]any{
		"id":       "A1",
		"rating":   3,
		"acquired": "2021-02-03",
		"location": map[string]any{"latitude": 10.0},
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	rec2, err := s.Parse(context.Background(), rec.ToMap())
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if !reflect.DeepEqual(rec.ToMap(), rec2.ToMap()) {
		t.Fatalf("round trip changed the record:\n%v\n%v", rec.ToMap(), rec2.ToMap())
	}
}

func TestParse_ContextCancellation(t *testing.T) {
	s := siteSchema(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Parse(ctx, map[string]any{"id": "A1"}); err == nil {
		t.Fatalf("expected context error")
	}
}
