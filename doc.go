package mtschema

// Package mtschema provides:
//
// - A declarative schema engine for magnetotelluric metadata records
//   (FieldSpec, RecordSchema, fluent builders, discriminated schema sets)
// - Validation and normalization of raw documents into typed Records with a
//   stable batch error model (Issues: dotted path, code, message)
// - Presence metadata (seen / null / default-applied) collected per field
// - Ordered keyed collections (ListDict) for child records such as stations,
//   runs, channels, and filters
// - JSON/YAML ingestion helpers and a JSON Schema projection of any schema
//
// Design policy:
// - Keep only public APIs in the root package; the MT attribute catalog lives
//   under mt/, the CLI under cmd/mtvalidate.
// - Schemas and the registry are immutable after construction; Parse is pure
//   and safe for concurrent use.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := mt.Standards().MustLookup("survey")
//	rec, err := mtschema.ParseFrom(ctx, s, mtschema.JSONBytes(data))
//
//	v, _ := rec.Get("release_license")
//	js, _ := s.JSONSchema()
