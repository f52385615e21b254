package mt

// Controlled vocabularies of the MT metadata standard. Each closed set is a
// string enum; schema fields reference the sets through vocab().

// Datum identifies the geodetic reference of survey coordinates.
type Datum string

const (
	DatumWGS84  Datum = "WGS84"
	DatumNAD27  Datum = "NAD27"
	DatumNAD83  Datum = "NAD83"
	DatumETRS89 Datum = "ETRS89"
	DatumGDA94  Datum = "GDA94"
	DatumPZ90   Datum = "PZ-90.11"
	DatumOther  Datum = "other"
)

// ReleaseLicense is the license the archived data is released under.
type ReleaseLicense string

const (
	LicenseCC0      ReleaseLicense = "CC0-1.0"
	LicenseCCBY     ReleaseLicense = "CC-BY-4.0"
	LicenseCCBYSA   ReleaseLicense = "CC-BY-SA-4.0"
	LicenseCCBYNC   ReleaseLicense = "CC-BY-NC-4.0"
	LicenseCCBYNCSA ReleaseLicense = "CC-BY-NC-SA-4.0"
)

// DataType classifies the recorded data by period band.
type DataType string

const (
	DataTypeBBMT  DataType = "BBMT"
	DataTypeLPMT  DataType = "LPMT"
	DataTypeULPMT DataType = "ULPMT"
	DataTypeAMT   DataType = "AMT"
	DataTypeRMT   DataType = "RMT"
	DataTypeMT    DataType = "MT"
)

// ChannelType discriminates the channel schemas.
type ChannelType string

const (
	ChannelElectric  ChannelType = "electric"
	ChannelMagnetic  ChannelType = "magnetic"
	ChannelAuxiliary ChannelType = "auxiliary"
)

// OrientationMethod describes how channel azimuths were determined.
type OrientationMethod string

const (
	OrientCompass         OrientationMethod = "compass"
	OrientGPS             OrientationMethod = "GPS"
	OrientTheodolite      OrientationMethod = "theodolite"
	OrientElectricCompass OrientationMethod = "electric_compass"
	OrientManual          OrientationMethod = "manual"
)

// ReferenceFrame is the coordinate frame azimuths are measured in.
type ReferenceFrame string

const (
	FrameGeographic  ReferenceFrame = "geographic"
	FrameGeomagnetic ReferenceFrame = "geomagnetic"
)

// DeclinationModel names the geomagnetic model used for declination.
type DeclinationModel string

const (
	DeclinationWMM     DeclinationModel = "WMM"
	DeclinationIGRF    DeclinationModel = "IGRF"
	DeclinationEMAG2   DeclinationModel = "EMAG2"
	DeclinationUnknown DeclinationModel = "unknown"
)

// ChannelLayout describes the geometry the channels were laid out in.
type ChannelLayout string

const (
	LayoutL ChannelLayout = "L"
	LayoutX ChannelLayout = "X"
)

// Units enumerates the physical units channel data can be recorded in.
type Units string

const (
	UnitsCounts        Units = "counts"
	UnitsDigitalCounts Units = "digital counts"
	UnitsMillivolts    Units = "millivolts"
	UnitsNanotesla     Units = "nanotesla"
	UnitsVolts         Units = "volts"
	UnitsCelsius       Units = "celsius"
	UnitsMeters        Units = "meters"
	UnitsUnknown       Units = "unknown"
)

// FilterType discriminates the filter schemas.
type FilterType string

const (
	FilterPoleZero    FilterType = "zpk"
	FilterCoefficient FilterType = "coefficient"
	FilterTimeDelay   FilterType = "time_delay"
	FilterFIR         FilterType = "fir"
	FilterFAP         FilterType = "fap"
)

// Symmetry describes FIR coefficient symmetry.
type Symmetry string

const (
	SymmetryNone Symmetry = "none"
	SymmetryOdd  Symmetry = "odd"
	SymmetryEven Symmetry = "even"
)

// TimingType names the clock source of a data logger.
type TimingType string

const (
	TimingGPS      TimingType = "GPS"
	TimingInternal TimingType = "internal clock"
)

// vocab renders a closed enum set as the schema builder's allowed strings.
func vocab[T ~string](vals ...T) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}

var datums = vocab(DatumWGS84, DatumNAD27, DatumNAD83, DatumETRS89, DatumGDA94, DatumPZ90, DatumOther)

var licenses = vocab(LicenseCC0, LicenseCCBY, LicenseCCBYSA, LicenseCCBYNC, LicenseCCBYNCSA)

var dataTypes = vocab(DataTypeBBMT, DataTypeLPMT, DataTypeULPMT, DataTypeAMT, DataTypeRMT, DataTypeMT)

var channelTypes = vocab(ChannelElectric, ChannelMagnetic, ChannelAuxiliary)

var orientationMethods = vocab(OrientCompass, OrientGPS, OrientTheodolite, OrientElectricCompass, OrientManual)

var referenceFrames = vocab(FrameGeographic, FrameGeomagnetic)

var declinationModels = vocab(DeclinationWMM, DeclinationIGRF, DeclinationEMAG2, DeclinationUnknown)

var channelLayouts = vocab(LayoutL, LayoutX)

var unitsVocab = vocab(UnitsCounts, UnitsDigitalCounts, UnitsMillivolts, UnitsNanotesla, UnitsVolts, UnitsCelsius, UnitsMeters, UnitsUnknown)

var symmetries = vocab(SymmetryNone, SymmetryOdd, SymmetryEven)

var timingTypes = vocab(TimingGPS, TimingInternal)
