package mt

import (
	schema "github.com/kujaku11/mtschema"
)

var stationSchema = buildStation()

// Station returns the schema for a measurement site. Runs recorded at the
// site live under the "runs" list, keyed by run id.
func Station() *schema.RecordSchema { return stationSchema }

func buildStation() *schema.RecordSchema {
	return schema.NewSchema("station").
		Field("id", schema.KindString).Required().Style(schema.StyleAlphaNumeric).
		Describe("station identifier, e.g. MT001").
		Field("archive_id", schema.KindString).Style(schema.StyleAlphaNumeric).
		Field("geographic_name", schema.KindString).Required().
		Describe("closest geographic reference to the station").
		Field("data_type", schema.KindString).Required().Vocab(dataTypes...).Default("MT").
		Field("channel_layout", schema.KindString, schema.KindNull).Vocab(channelLayouts...).
		Field("channels_recorded", schema.KindStringList).
		Style(schema.StyleNameList).Default([]string{}).
		Describe("components recorded at the site, e.g. ex, ey, hx, hy, hz").
		Field("comments", schema.KindString).
		Embed("fdsn", fdsnSchema).
		Embed("location", locationSchema).
		Embed("orientation", orientationSchema).
		Embed("acquired_by", personSchema).
		Embed("provenance", provenanceSchema).
		Embed("time_period", timeSpanSchema).
		List("runs", runSchema).
		Key("id").
		MustBuild()
}
