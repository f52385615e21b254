package mt

// Package mt is the magnetotelluric metadata catalog: the attribute
// dictionary for surveys, stations, runs, channels, and calibration filters,
// expressed as mtschema record schemas.
//
// Schemas are built once at package load. Standards() exposes them by name;
// the hierarchy is survey -> stations -> runs -> channels, with filters
// attached at the survey level and referenced by channel filter.name entries.
//
// Dotted attribute paths and their types, defaults, and controlled
// vocabularies are a stable contract: archives and processing codes depend on
// them, so renaming a field is a breaking change.
