/*package native implements the reion.Solver contract in-process, so that a
reionization history can be computed without a compiled solver library. It
builds an interpolatory cubic spline from ingested tables, evaluates the
tanh parameterization, and inverts optical depths into reionization
redshifts by bisecting the electron scattering integral.
*/
package native

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/interp"

	"github.com/cosmoglot/reion/lib/reion"
)

// Solver is the in-process backend. The zero value is usable; the only
// state it accumulates is the spline built by SetTable/SetLogRegular.
// Methods are not safe for concurrent use.
type Solver struct {
	curve *curve
}

// curve is the spline state the solver owns after a table was ingested.
// Queries outside [zmin, zmax] clamp to the end values rather than
// extrapolate the cubic.
type curve struct {
	pred       interp.Predictor // nil for single-point tables
	zmin, zmax float64
	lo, hi     float64
}

func (c *curve) at(z float64) float64 {
	switch {
	case z <= c.zmin:
		return c.lo
	case z >= c.zmax:
		return c.hi
	default:
		return c.pred.Predict(z)
	}
}

// New creates an in-process solver with no table ingested.
func New() *Solver { return &Solver{} }

// SetTable builds a natural cubic spline through the given (z, Xe) samples.
// The z values must be strictly increasing and the two arrays must have
// equal length of at least 1. A single-point table degenerates to a
// constant curve. The input buffers are not retained.
func (s *Solver) SetTable(z, Xe []float64) error {
	if len(z) != len(Xe) {
		return fmt.Errorf("the z and Xe tables must have the same length, "+
			"but they have lengths %d and %d", len(z), len(Xe))
	}
	if len(z) == 0 {
		return fmt.Errorf("an empty (z, Xe) table was passed to SetTable")
	}
	if len(z) == 1 {
		s.curve = &curve{nil, z[0], z[0], Xe[0], Xe[0]}
		return nil
	}
	for i := 1; i < len(z); i++ {
		if z[i] <= z[i-1] {
			return fmt.Errorf("the z values must be strictly increasing "+
				"to be splined, but z[%d] = %g and z[%d] = %g",
				i-1, z[i-1], i, z[i])
		}
	}

	nc := &interp.NaturalCubic{}
	if err := nc.Fit(z, Xe); err != nil {
		return fmt.Errorf("the (z, Xe) table can't be splined: %w", err)
	}
	s.curve = &curve{nc, z[0], z[len(z)-1], Xe[0], Xe[len(Xe)-1]}
	return nil
}

// SetLogRegular ingests Xe samples spaced log-uniformly in z between zmin
// and zmax inclusive, with Xe[0] = Xe(zmin).
func (s *Solver) SetLogRegular(zmin, zmax float64, Xe []float64) error {
	if zmin <= 0 {
		return fmt.Errorf("SetLogRegular needs zmin > 0 to space samples "+
			"logarithmically, but zmin = %g", zmin)
	}
	if zmin >= zmax {
		return fmt.Errorf("SetLogRegular needs zmin < zmax, but got "+
			"zmin = %g and zmax = %g", zmin, zmax)
	}
	if len(Xe) < 2 {
		return fmt.Errorf("SetLogRegular needs at least 2 Xe samples, "+
			"but got %d", len(Xe))
	}

	z := make([]float64, len(Xe))
	floats.LogSpan(z, zmin, zmax)
	return s.SetTable(z, Xe)
}

// Xe returns the ionized fraction (electrons per hydrogen nucleus) at
// redshift z for the model carried by params. Splined models evaluate the
// ingested table; tanh models evaluate the parameterization directly.
func (s *Solver) Xe(params *reion.Params, z float64) (float64, error) {
	if err := params.Check(); err != nil {
		return 0, err
	}

	hd := params.Reion.Header()
	if !hd.Reionization {
		return 0, nil
	}
	if hd.UseSpline {
		if s.curve == nil {
			return 0, fmt.Errorf("the model says Xe(z) comes from a " +
				"spline table, but no table has been ingested yet")
		}
		return s.curve.at(z), nil
	}

	m, ok := params.Reion.(*reion.Tanh)
	if !ok {
		return 0, fmt.Errorf("the model %T doesn't use a spline table, "+
			"but it isn't the tanh parameterization either", params.Reion)
	}
	return tanhXe(m, newBackground(params).fHe, z), nil
}

// OpticalDepth integrates the electron scattering optical depth of the
// model carried by params from z = 0 out to zmax.
func (s *Solver) OpticalDepth(params *reion.Params, zmax float64) (float64, error) {
	if err := params.Check(); err != nil {
		return 0, err
	}
	if zmax < 0 {
		return 0, fmt.Errorf("OpticalDepth was asked to integrate out to "+
			"zmax = %g, but zmax must be non-negative", zmax)
	}
	if zmax == 0 {
		return 0, nil
	}

	bg := newBackground(params)
	zs := tauGrid(zmax, boostOf(params))
	ys := make([]float64, len(zs))
	for i := range zs {
		xe, err := s.Xe(params, zs[i])
		if err != nil {
			return 0, err
		}
		ys[i] = bg.dTauDz(zs[i], xe)
	}

	return integrate.Trapezoidal(zs, ys), nil
}

// GetZreFromTau inverts an optical depth into the mid-point reionization
// redshift by bisection. tau(z_re) is monotonically increasing, so the
// bracket [0, MaxRedshift] always contains at most one solution. The tanh
// model's other parameters (width, fraction, helium transition) are held
// fixed during the solve.
func (s *Solver) GetZreFromTau(params *reion.Params, tau float64) (float64, error) {
	if err := params.Check(); err != nil {
		return 0, err
	}
	model, ok := params.Reion.(*reion.Tanh)
	if !ok {
		return 0, fmt.Errorf("GetZreFromTau inverts the tanh "+
			"parameterization, but the Params object carries a %T",
			params.Reion)
	}
	if tau < 0 {
		return 0, fmt.Errorf("GetZreFromTau was given the negative "+
			"optical depth %g", tau)
	}

	maxZ := model.MaxRedshift
	if maxZ <= 0 {
		maxZ = 50
	}
	boost := boostOf(params)

	bg := newBackground(params)
	zs := tauGrid(maxZ, boost)
	ys := make([]float64, len(zs))

	// tauOf integrates the optical depth of a trial model with its
	// mid-point moved to zre.
	tauOf := func(zre float64) float64 {
		trial := *model
		trial.UseOpticalDepth = false
		trial.Redshift = zre
		for i := range zs {
			ys[i] = bg.dTauDz(zs[i], tanhXe(&trial, bg.fHe, zs[i]))
		}
		return integrate.Trapezoidal(zs, ys)
	}

	if tauMax := tauOf(maxZ); tau > tauMax {
		return 0, fmt.Errorf("no reionization redshift below MaxRedshift "+
			"= %g reaches tau = %g: even z_re = %g only gives tau = %g",
			maxZ, tau, maxZ, tauMax)
	}

	lo, hi := 0.0, maxZ
	tol := 1e-6 / boost
	for i := 0; i < 200 && hi-lo > tol; i++ {
		mid := (lo + hi) / 2
		if tauOf(mid) < tau {
			lo = mid
		} else {
			hi = mid
		}
	}

	return (lo + hi) / 2, nil
}

// boostOf returns the accuracy boost of the attached tanh model, if there
// is one, clamped to be at least 1.
func boostOf(params *reion.Params) float64 {
	boost := 1.0
	if m, ok := params.Reion.(*reion.Tanh); ok &&
		m.TauSolveAccuracyBoost > boost {
		boost = m.TauSolveAccuracyBoost
	}
	return boost
}

// tauGrid returns the redshift sampling used for the optical depth
// integrals. The resolution scales with the accuracy boost.
func tauGrid(zmax, boost float64) []float64 {
	n := int(math.Ceil(2048 * boost))
	zs := make([]float64, n+1)
	floats.Span(zs, 0, zmax)
	return zs
}
