package mt

import (
	schema "github.com/kujaku11/mtschema"
)

var surveySchema = buildSurvey()

// Survey returns the schema for a complete MT survey: the archive-level
// record owning stations and the filters their channels reference.
func Survey() *schema.RecordSchema { return surveySchema }

func buildSurvey() *schema.RecordSchema {
	return schema.NewSchema("survey").
		Field("id", schema.KindString).Required().Style(schema.StyleAlphaNumeric).
		Describe("alpha-numeric survey identifier, e.g. EMT20").
		Field("name", schema.KindString).Required().
		Field("project", schema.KindString).Required().
		Describe("umbrella project the survey belongs to").
		Field("geographic_name", schema.KindString).Required().
		Field("summary", schema.KindString).Required().
		Field("datum", schema.KindString).Required().Vocab(datums...).Default("WGS84").
		Field("release_license", schema.KindString).Required().
		Vocab(licenses...).Default("CC0-1.0").
		Field("country", schema.KindString).
		Field("comments", schema.KindString).
		Embed("fdsn", fdsnSchema).
		Embed("acquired_by", personSchema).
		Embed("project_lead", personSchema).
		Embed("citation_dataset", citationSchema).
		Embed("citation_journal", citationSchema).
		Embed("northwest_corner", cornerSchema).
		Embed("southeast_corner", cornerSchema).
		Embed("time_period", dateSpanSchema).
		List("stations", stationSchema).
		List("filters", filterSet).
		Key("id").
		MustBuild()
}
