package mt

import (
	schema "github.com/kujaku11/mtschema"
)

var (
	electricSchema  = buildElectric()
	magneticSchema  = buildMagnetic()
	auxiliarySchema = buildAuxiliary()
	channelSet      = buildChannelSet()
)

// Electric returns the schema for an electric field channel.
func Electric() *schema.RecordSchema { return electricSchema }

// Magnetic returns the schema for a magnetic field channel.
func Magnetic() *schema.RecordSchema { return magneticSchema }

// Auxiliary returns the schema for an auxiliary channel (temperature, tilt,
// battery voltage and the like).
func Auxiliary() *schema.RecordSchema { return auxiliarySchema }

// Channel returns the discriminated set dispatching on a channel's type.
func Channel() *schema.SchemaSet { return channelSet }

// channelBase populates the attributes shared by every channel kind. Records
// are keyed by component ("ex", "hy", "temperature", ...).
func channelBase(name string, typ ChannelType) *schema.Builder {
	return schema.NewSchema(name).
		Field("type", schema.KindString).Required().Vocab(channelTypes...).Default(string(typ)).
		Field("component", schema.KindString).Required().Style(schema.StyleAlphaNumeric).
		Describe("channel component, e.g. ex, ey, hx, hy, hz, temperature").
		Field("channel_number", schema.KindInt).Required().Default(int64(0)).
		Field("measurement_azimuth", schema.KindFloat).Required().Default(0.0).
		Units("degrees").Range(-360, 360).
		Field("measurement_tilt", schema.KindFloat).Required().Default(0.0).
		Units("degrees").Range(-180, 180).
		Field("translated_azimuth", schema.KindFloat, schema.KindNull).Units("degrees").Range(-360, 360).
		Field("translated_tilt", schema.KindFloat, schema.KindNull).Units("degrees").Range(-180, 180).
		Field("sample_rate", schema.KindFloat).Required().Default(0.0).
		Units("samples per second").Min(0).
		Field("units", schema.KindString).Required().Vocab(unitsVocab...).Default("counts").
		Field("comments", schema.KindString).
		Field("filter.applied", schema.KindBoolList).Default([]bool{false}).
		Field("filter.name", schema.KindStringList).Style(schema.StyleNameList).Default([]string{}).
		Embed("time_period", timeSpanSchema).
		Embed("data_quality", dataQualitySchema).
		Key("component")
}

func buildElectric() *schema.RecordSchema {
	return channelBase("electric", ChannelElectric).
		Field("dipole_length", schema.KindFloat).Required().Default(0.0).
		Units("meters").Min(0).
		Field("contact_resistance.start", schema.KindFloat, schema.KindNull).Units("ohms").
		Field("contact_resistance.end", schema.KindFloat, schema.KindNull).Units("ohms").
		Field("ac.start", schema.KindFloat, schema.KindNull).Units("volts").
		Field("ac.end", schema.KindFloat, schema.KindNull).Units("volts").
		Field("dc.start", schema.KindFloat, schema.KindNull).Units("volts").
		Field("dc.end", schema.KindFloat, schema.KindNull).Units("volts").
		Embed("positive", electrodeSchema).
		Embed("negative", electrodeSchema).
		MustBuild()
}

func buildMagnetic() *schema.RecordSchema {
	return channelBase("magnetic", ChannelMagnetic).
		Field("h_field_min.start", schema.KindFloat, schema.KindNull).Units("nanotesla").
		Field("h_field_min.end", schema.KindFloat, schema.KindNull).Units("nanotesla").
		Field("h_field_max.start", schema.KindFloat, schema.KindNull).Units("nanotesla").
		Field("h_field_max.end", schema.KindFloat, schema.KindNull).Units("nanotesla").
		Embed("sensor", sensorSchema).
		Embed("location", locationSchema).
		MustBuild()
}

func buildAuxiliary() *schema.RecordSchema {
	return channelBase("auxiliary", ChannelAuxiliary).
		Embed("location", locationSchema).
		MustBuild()
}

func buildChannelSet() *schema.SchemaSet {
	return schema.NewSchemaSet("channel", "type").
		Variant(string(ChannelElectric), electricSchema).
		Variant(string(ChannelMagnetic), magneticSchema).
		Variant(string(ChannelAuxiliary), auxiliarySchema)
}
