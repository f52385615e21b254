package mt

import (
	schema "github.com/kujaku11/mtschema"
)

// Shared sub-record schemas embedded throughout the catalog. All schemas are
// built once at package load and immutable afterwards.

var (
	commentSchema     = buildComment()
	personSchema      = buildPerson()
	citationSchema    = buildCitation()
	declinationSchema = buildDeclination()
	locationSchema    = buildLocation()
	cornerSchema      = buildCorner()
	dateSpanSchema    = buildDateSpan()
	timeSpanSchema    = buildTimeSpan()
	fdsnSchema        = buildFDSN()
	softwareSchema    = buildSoftware()
	ratingSchema      = buildRating()
	dataQualitySchema = buildDataQuality()
	provenanceSchema  = buildProvenance()
	diagnosticSchema  = buildDiagnostic()
	batterySchema     = buildBattery()
	timingSchema      = buildTimingSystem()
	dataLoggerSchema  = buildDataLogger()
	electrodeSchema   = buildElectrode()
	sensorSchema      = buildSensor()
	orientationSchema = buildOrientation()
)

func buildComment() *schema.RecordSchema {
	return schema.NewSchema("comment").
		Field("value", schema.KindString).
		Field("author", schema.KindString).
		Field("time_stamp", schema.KindDateTime).Default("1980-01-01T00:00:00+00:00").
		MustBuild()
}

func buildPerson() *schema.RecordSchema {
	return schema.NewSchema("person").
		Field("author", schema.KindString).
		Field("email", schema.KindString, schema.KindNull).Style(schema.StyleEmail).
		Field("organization", schema.KindString).
		Field("url", schema.KindString, schema.KindNull).Style(schema.StyleURL).
		Embed("comments", commentSchema).
		MustBuild()
}

func buildCitation() *schema.RecordSchema {
	return schema.NewSchema("citation").
		Field("authors", schema.KindString).
		Field("title", schema.KindString).
		Field("journal", schema.KindString).
		Field("volume", schema.KindString, schema.KindNull).
		Field("pages", schema.KindString, schema.KindNull).
		Field("year", schema.KindInt, schema.KindNull).
		Field("doi", schema.KindString, schema.KindNull).Style(schema.StyleURL).
		MustBuild()
}

func buildDeclination() *schema.RecordSchema {
	return schema.NewSchema("declination").
		Field("value", schema.KindFloat).Required().Default(0.0).
		Units("degrees").Range(-180, 180).
		Describe("declination angle relative to geographic north").
		Field("model", schema.KindString).Required().Vocab(declinationModels...).Default("WMM").
		Field("epoch", schema.KindString).
		Field("comments", schema.KindString).
		MustBuild()
}

func buildLocation() *schema.RecordSchema {
	return schema.NewSchema("location").
		Field("latitude", schema.KindFloat, schema.KindString).Required().Default(0.0).
		Units("degrees").Range(-90, 90).
		Field("longitude", schema.KindFloat, schema.KindString).Required().Default(0.0).
		Units("degrees").Range(-180, 180).
		Field("elevation", schema.KindFloat).Required().Default(0.0).Units("meters").
		Embed("declination", declinationSchema).
		MustBuild()
}

func buildCorner() *schema.RecordSchema {
	return schema.NewSchema("corner").
		Field("latitude", schema.KindFloat, schema.KindString).Default(0.0).
		Units("degrees").Range(-90, 90).
		Field("longitude", schema.KindFloat, schema.KindString).Default(0.0).
		Units("degrees").Range(-180, 180).
		MustBuild()
}

func buildDateSpan() *schema.RecordSchema {
	return schema.NewSchema("date_span").
		Field("start_date", schema.KindDate).Required().Default("1980-01-01").
		Field("end_date", schema.KindDate).Required().Default("1980-01-01").
		MustBuild()
}

func buildTimeSpan() *schema.RecordSchema {
	return schema.NewSchema("time_span").
		Field("start", schema.KindDateTime).Required().Default("1980-01-01T00:00:00+00:00").
		Field("end", schema.KindDateTime).Required().Default("1980-01-01T00:00:00+00:00").
		MustBuild()
}

func buildFDSN() *schema.RecordSchema {
	return schema.NewSchema("fdsn").
		Field("id", schema.KindString).Style(schema.StyleAlphaNumeric).
		Field("network", schema.KindString).
		Field("channel_code", schema.KindString).Style(schema.StyleAlphaNumeric).
		Field("new_epoch", schema.KindBool, schema.KindNull).
		Field("alternate_code", schema.KindString).
		Field("alternate_network_code", schema.KindString).
		MustBuild()
}

func buildSoftware() *schema.RecordSchema {
	return schema.NewSchema("software").
		Field("author", schema.KindString).
		Field("name", schema.KindString).
		Field("version", schema.KindString).
		Field("last_updated", schema.KindDateTime).Default("1980-01-01T00:00:00+00:00").
		MustBuild()
}

func buildRating() *schema.RecordSchema {
	return schema.NewSchema("rating").
		Field("value", schema.KindInt).Default(int64(0)).Range(0, 5).
		Describe("data quality rating from 0 (unrated) to 5 (excellent)").
		Field("author", schema.KindString).
		Field("method", schema.KindString).
		MustBuild()
}

func buildDataQuality() *schema.RecordSchema {
	return schema.NewSchema("data_quality").
		Field("warnings", schema.KindString).
		Field("comments", schema.KindString).
		Field("good_from_period", schema.KindFloat, schema.KindNull).Units("seconds").
		Field("good_to_period", schema.KindFloat, schema.KindNull).Units("seconds").
		Embed("rating", ratingSchema).
		MustBuild()
}

func buildProvenance() *schema.RecordSchema {
	return schema.NewSchema("provenance").
		Field("creation_time", schema.KindDateTime).Default("1980-01-01T00:00:00+00:00").
		Field("comments", schema.KindString).
		Embed("software", softwareSchema).
		Embed("submitter", personSchema).
		Embed("creator", personSchema).
		MustBuild()
}

func buildDiagnostic() *schema.RecordSchema {
	return schema.NewSchema("diagnostic").
		Field("start", schema.KindFloat, schema.KindNull).
		Field("end", schema.KindFloat, schema.KindNull).
		MustBuild()
}

func buildBattery() *schema.RecordSchema {
	return schema.NewSchema("battery").
		Field("id", schema.KindString).
		Field("type", schema.KindString).
		Field("comments", schema.KindString).
		Embed("voltage", diagnosticSchema).
		MustBuild()
}

func buildTimingSystem() *schema.RecordSchema {
	return schema.NewSchema("timing_system").
		Field("type", schema.KindString).Vocab(timingTypes...).Default("GPS").
		Field("drift", schema.KindFloat).Default(0.0).Units("seconds").
		Field("uncertainty", schema.KindFloat).Default(0.0).Units("seconds").
		Field("comments", schema.KindString).
		MustBuild()
}

func buildDataLogger() *schema.RecordSchema {
	return schema.NewSchema("data_logger").
		Field("id", schema.KindString).
		Field("manufacturer", schema.KindString).
		Field("model", schema.KindString).
		Field("name", schema.KindString).
		Field("type", schema.KindString).
		Embed("firmware", softwareSchema).
		Embed("timing_system", timingSchema).
		Embed("power_source", batterySchema).
		MustBuild()
}

func buildElectrode() *schema.RecordSchema {
	return schema.NewSchema("electrode").
		Field("id", schema.KindString).
		Field("manufacturer", schema.KindString).
		Field("model", schema.KindString).
		Field("type", schema.KindString).
		Field("latitude", schema.KindFloat).Default(0.0).Units("degrees").Range(-90, 90).
		Field("longitude", schema.KindFloat).Default(0.0).Units("degrees").Range(-180, 180).
		Field("elevation", schema.KindFloat).Default(0.0).Units("meters").
		MustBuild()
}

func buildSensor() *schema.RecordSchema {
	return schema.NewSchema("sensor").
		Field("id", schema.KindString).
		Field("manufacturer", schema.KindString).
		Field("model", schema.KindString).
		Field("name", schema.KindString).
		Field("type", schema.KindString).
		MustBuild()
}

func buildOrientation() *schema.RecordSchema {
	return schema.NewSchema("orientation").
		Field("method", schema.KindString, schema.KindNull).Vocab(orientationMethods...).
		Field("reference_frame", schema.KindString).Vocab(referenceFrames...).Default("geographic").
		Field("angle_to_geographic_north", schema.KindFloat, schema.KindNull).Units("degrees").
		MustBuild()
}
