package mt

import (
	schema "github.com/kujaku11/mtschema"
)

var (
	poleZeroSchema    = buildPoleZero()
	coefficientSchema = buildCoefficient()
	timeDelaySchema   = buildTimeDelay()
	firSchema         = buildFIR()
	fapSchema         = buildFAP()
	filterSet         = buildFilterSet()
)

// PoleZero returns the schema for a pole-zero (zpk) calibration filter.
func PoleZero() *schema.RecordSchema { return poleZeroSchema }

// Coefficient returns the schema for a scalar coefficient filter.
func Coefficient() *schema.RecordSchema { return coefficientSchema }

// TimeDelay returns the schema for a constant time-delay filter.
func TimeDelay() *schema.RecordSchema { return timeDelaySchema }

// FIR returns the schema for a finite-impulse-response filter.
func FIR() *schema.RecordSchema { return firSchema }

// FAP returns the schema for a frequency-amplitude-phase lookup table.
func FAP() *schema.RecordSchema { return fapSchema }

// Filter returns the discriminated set dispatching on a filter's type.
func Filter() *schema.SchemaSet { return filterSet }

// filterBase populates the attributes every filter kind shares. Records are
// keyed by name; units describe the conversion the filter applies.
func filterBase(name string, typ FilterType) *schema.Builder {
	return schema.NewSchema(name).
		Field("name", schema.KindString).Required().
		Field("type", schema.KindString).Required().Default(string(typ)).
		Vocab(string(FilterPoleZero), string(FilterCoefficient), string(FilterTimeDelay), string(FilterFIR), string(FilterFAP)).
		Field("units_in", schema.KindString).Required().
		Describe("units of the quantity entering the filter").
		Field("units_out", schema.KindString).Required().
		Describe("units of the quantity leaving the filter").
		Field("gain", schema.KindFloat).Default(1.0).
		Field("calibration_date", schema.KindDate, schema.KindNull).
		Field("comments", schema.KindString).
		Key("name")
}

func buildPoleZero() *schema.RecordSchema {
	return filterBase("pole_zero", FilterPoleZero).
		Field("normalization_factor", schema.KindFloat).Default(1.0).
		Field("poles", schema.KindStringList).Default([]string{}).
		Describe("complex poles, one per entry, e.g. -6.28+0.0j").
		Field("zeros", schema.KindStringList).Default([]string{}).
		Describe("complex zeros, one per entry, e.g. 0.0+0.0j").
		MustBuild()
}

func buildCoefficient() *schema.RecordSchema {
	return filterBase("coefficient", FilterCoefficient).MustBuild()
}

func buildTimeDelay() *schema.RecordSchema {
	return filterBase("time_delay", FilterTimeDelay).
		Field("delay", schema.KindFloat).Required().Default(0.0).Units("seconds").
		MustBuild()
}

func buildFIR() *schema.RecordSchema {
	return filterBase("fir", FilterFIR).
		Field("coefficients", schema.KindFloatList).Default([]float64{}).
		Field("symmetry", schema.KindString).Vocab(symmetries...).Default("none").
		Field("decimation_factor", schema.KindFloat).Default(1.0).Min(1).
		MustBuild()
}

func buildFAP() *schema.RecordSchema {
	return filterBase("fap", FilterFAP).
		Field("frequencies", schema.KindFloatList).Required().Units("hertz").
		Field("amplitudes", schema.KindFloatList).Required().
		Field("phases", schema.KindFloatList).Required().Units("degrees").
		MustBuild()
}

func buildFilterSet() *schema.SchemaSet {
	return schema.NewSchemaSet("filter", "type").
		Variant(string(FilterPoleZero), poleZeroSchema).
		Variant(string(FilterCoefficient), coefficientSchema).
		Variant(string(FilterTimeDelay), timeDelaySchema).
		Variant(string(FilterFIR), firSchema).
		Variant(string(FilterFAP), fapSchema)
}
