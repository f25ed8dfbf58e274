package camb

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/cosmoglot/reion/lib/reion"
)

// Solver dispatches the reion.Solver operations to the loaded library. It
// holds no state of its own: the library owns the spline built from
// ingested tables. The zero value is ready to use once Load has succeeded.
type Solver struct{}

var _ reion.Solver = Solver{}

// SetTable hands the (z, Xe) table to the library's spline constructor.
// The buffers are passed by reference and must not be mutated or freed for
// the duration of the call; they are not retained afterwards.
func (Solver) SetTable(z, Xe []float64) error {
	if !loaded {
		return errNotLoaded()
	}
	if len(z) != len(Xe) {
		return fmt.Errorf("the z and Xe tables must have the same length, "+
			"but they have lengths %d and %d", len(z), len(Xe))
	}
	if len(z) == 0 {
		return fmt.Errorf("an empty (z, Xe) table was passed to SetTable")
	}

	count := int32(len(z))
	countPtr, zPtr, xePtr := &count, &z[0], &Xe[0]
	setTableFunc.Call(nil, unsafe.Pointer(&countPtr),
		unsafe.Pointer(&zPtr), unsafe.Pointer(&xePtr))
	runtime.KeepAlive(z)
	runtime.KeepAlive(Xe)
	return nil
}

// SetLogRegular hands a log-regularly sampled Xe curve to the library.
func (Solver) SetLogRegular(zmin, zmax float64, Xe []float64) error {
	if !loaded {
		return errNotLoaded()
	}
	if len(Xe) < 2 {
		return fmt.Errorf("SetLogRegular needs at least 2 Xe samples, "+
			"but got %d", len(Xe))
	}

	count := int32(len(Xe))
	zminPtr, zmaxPtr, countPtr, xePtr := &zmin, &zmax, &count, &Xe[0]
	setLogRegularFunc.Call(nil, unsafe.Pointer(&zminPtr),
		unsafe.Pointer(&zmaxPtr), unsafe.Pointer(&countPtr),
		unsafe.Pointer(&xePtr))
	runtime.KeepAlive(Xe)
	return nil
}

// GetZreFromTau marshals the parameter aggregate into the library's record
// layout and calls its tau inversion routine.
func (Solver) GetZreFromTau(params *reion.Params, tau float64) (float64, error) {
	if !loaded {
		return 0, errNotLoaded()
	}
	if err := params.Check(); err != nil {
		return 0, err
	}

	rec, err := newParamsRecord(params)
	if err != nil {
		return 0, err
	}

	recPtr, tauPtr := &rec, &tau
	var result float64
	getZreFromTauFunc.Call(unsafe.Pointer(&result),
		unsafe.Pointer(&recPtr), unsafe.Pointer(&tauPtr))
	runtime.KeepAlive(recPtr)
	return result, nil
}

// newTanhRecord flattens the Go-side model into the library's record.
func newTanhRecord(m *reion.Tanh) TanhRecord {
	return TanhRecord{
		Reionization:           boolByte(m.Reionization),
		UseSpline:              boolByte(m.UseSpline),
		UseOpticalDepth:        boolByte(m.UseOpticalDepth),
		Redshift:               m.Redshift,
		OpticalDepth:           m.OpticalDepth,
		DeltaRedshift:          m.DeltaRedshift,
		Fraction:               m.Fraction,
		IncludeHeliumFullReion: boolByte(m.IncludeHeliumFullReion),
		HeliumRedshift:         m.HeliumRedshift,
		HeliumDeltaRedshift:    m.HeliumDeltaRedshift,
		HeliumRedshiftStart:    m.HeliumRedshiftStart,
		TauSolveAccuracyBoost:  m.TauSolveAccuracyBoost,
		TimestepBoost:          m.TimestepBoost,
		MaxRedshift:            m.MaxRedshift,
	}
}

// newSplinedRecord flattens the Go-side splined model into the library's
// record.
func newSplinedRecord(m *reion.Splined) SplinedRecord {
	return SplinedRecord{
		Reionization:  boolByte(m.Reionization),
		UseSpline:     boolByte(m.UseSpline),
		TimestepBoost: m.TimestepBoost,
	}
}

func newParamsRecord(p *reion.Params) (ParamsRecord, error) {
	m, ok := p.Reion.(*reion.Tanh)
	if !ok {
		return ParamsRecord{}, fmt.Errorf("the library's GetZreFromTau "+
			"inverts the tanh parameterization, but the Params object "+
			"carries a %T", p.Reion)
	}

	return ParamsRecord{
		H0:     p.H0,
		OmegaB: p.OmegaB,
		OmegaC: p.OmegaC,
		OmegaL: p.OmegaL,
		TCMB:   p.TCMB,
		YHe:    p.YHe,
		Reion:  newTanhRecord(m),
	}, nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
