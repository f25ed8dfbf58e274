package camb

import "github.com/jupiterrider/ffi"

/* types.go declares the record layouts shared with the compiled solver
library. Field order and widths are the binary contract: the library reads
these records in place, so reordering a field here breaks interoperability
even though everything would still compile. Booleans are single bytes, to
match the library's C-interoperable flags. */

// SplinedRecord mirrors the library's splined reionization record. The two
// leading flags are the header shared by every model record.
type SplinedRecord struct {
	Reionization  uint8
	UseSpline     uint8
	TimestepBoost float64
}

// TanhRecord mirrors the library's tanh reionization record.
type TanhRecord struct {
	Reionization           uint8
	UseSpline              uint8
	UseOpticalDepth        uint8
	Redshift               float64
	OpticalDepth           float64
	DeltaRedshift          float64
	Fraction               float64
	IncludeHeliumFullReion uint8
	HeliumRedshift         float64
	HeliumDeltaRedshift    float64
	HeliumRedshiftStart    float64
	TauSolveAccuracyBoost  float64
	TimestepBoost          float64
	MaxRedshift            float64
}

// ParamsRecord mirrors the library's cosmological parameter aggregate, with
// the active tanh model embedded the way the library expects for its
// tau inversion entry point.
type ParamsRecord struct {
	H0     float64
	OmegaB float64
	OmegaC float64
	OmegaL float64
	TCMB   float64
	YHe    float64
	Reion  TanhRecord
}

var FFITypeSplined = ffi.NewType(
	&ffi.TypeUint8,
	&ffi.TypeUint8,
	&ffi.TypeDouble,
)

var FFITypeTanh = ffi.NewType(
	&ffi.TypeUint8,
	&ffi.TypeUint8,
	&ffi.TypeUint8,
	&ffi.TypeDouble,
	&ffi.TypeDouble,
	&ffi.TypeDouble,
	&ffi.TypeDouble,
	&ffi.TypeUint8,
	&ffi.TypeDouble,
	&ffi.TypeDouble,
	&ffi.TypeDouble,
	&ffi.TypeDouble,
	&ffi.TypeDouble,
	&ffi.TypeDouble,
)

var FFITypeParams = ffi.NewType(
	&ffi.TypeDouble,
	&ffi.TypeDouble,
	&ffi.TypeDouble,
	&ffi.TypeDouble,
	&ffi.TypeDouble,
	&ffi.TypeDouble,
	&FFITypeTanh,
)
