package mt

import (
	schema "github.com/kujaku11/mtschema"
)

var runSchema = buildRun()

// Run returns the schema for a continuous recording interval at a station.
// Channels recorded during the run live under the "channels" list, keyed by
// component.
func Run() *schema.RecordSchema { return runSchema }

func buildRun() *schema.RecordSchema {
	return schema.NewSchema("run").
		Field("id", schema.KindString).Required().Style(schema.StyleAlphaNumeric).
		Describe("run identifier, e.g. mt001a").
		Field("data_type", schema.KindString).Vocab(dataTypes...).Default("BBMT").
		Field("sample_rate", schema.KindFloat).Required().
		Units("samples per second").Min(0).
		Field("channels_recorded_electric", schema.KindStringList).
		Style(schema.StyleNameList).Default([]string{}).
		Field("channels_recorded_magnetic", schema.KindStringList).
		Style(schema.StyleNameList).Default([]string{}).
		Field("channels_recorded_auxiliary", schema.KindStringList).
		Style(schema.StyleNameList).Default([]string{}).
		Field("comments", schema.KindString).
		Embed("acquired_by", personSchema).
		Embed("metadata_by", personSchema).
		Embed("data_logger", dataLoggerSchema).
		Embed("provenance", provenanceSchema).
		Embed("time_period", timeSpanSchema).
		List("channels", channelSet).
		Key("id").
		MustBuild()
}
