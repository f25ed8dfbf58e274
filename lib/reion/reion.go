/*package reion defines the reionization model parameterizations which are
shared with the numerical solver. The types here are thin: they hold the
parameters, manage which parameterization is active, and hand tables and
inversion requests to a Solver backend. All the actual numerics (spline
construction, optical depth integration) live behind the Solver interface,
implemented in-process by lib/native and over a compiled solver library by
lib/camb.
*/
package reion

import (
	"fmt"
)

// Model is the header shared by every reionization parameterization. It is
// embedded as the first field of each concrete model so that the solver can
// read Reionization and UseSpline at a fixed offset without knowing which
// concrete model it was handed.
type Model struct {
	// Reionization is false when reionization is switched off entirely.
	// (This can be useful for matter power, which doesn't depend on it.)
	Reionization bool
	// UseSpline is true when Xe(z) comes from a tabulated spline rather
	// than the tanh parameterization.
	UseSpline bool
}

// ReionModel is implemented by every reionization parameterization. Header
// exposes the shared Model so callers and solvers can inspect the two
// discriminating flags generically.
type ReionModel interface {
	Header() *Model
}

// Solver is the numerical backend that owns spline state and performs the
// tau -> z_re inversion. The table-setting calls hand the raw float64 buffers
// to the backend; the buffers must stay valid for the duration of the call
// and are not retained afterwards. Solvers are not required to be reentrant,
// so callers sharing one across goroutines must serialize access themselves.
type Solver interface {
	// SetTable ingests an explicit (z, Xe) table for spline interpolation.
	SetTable(z, Xe []float64) error
	// SetLogRegular ingests Xe samples spaced log-uniformly in z between
	// zmin and zmax inclusive.
	SetLogRegular(zmin, zmax float64, Xe []float64) error
	// GetZreFromTau inverts an optical depth into the mid-point
	// reionization redshift for the model carried by params.
	GetZreFromTau(params *Params, tau float64) (float64, error)
}

// Params is the cosmological parameter aggregate handed to the solver for
// the tau -> z_re inversion. Only the fields the reionization history
// actually needs are carried here; the field order of the scalar block is
// part of the binary contract with the compiled solver and must not be
// reordered.
type Params struct {
	// H0 is the Hubble constant in km/s/Mpc.
	H0 float64
	// OmegaB and OmegaC are the baryon and cold dark matter densities in
	// units of the critical density. OmegaL is the cosmological constant
	// density, and anything left over is treated as curvature.
	OmegaB, OmegaC, OmegaL float64
	// TCMB is the CMB temperature today in K.
	TCMB float64
	// YHe is the helium mass fraction.
	YHe float64
	// Reion is the active reionization parameterization.
	Reion ReionModel
}

// Check returns an error if the parameter set isn't populated well enough
// for the solver to use it. It's called at the boundary before any solver
// call is made, so a half-built Params fails fast here rather than deep
// inside an integration.
func (p *Params) Check() error {
	if p == nil {
		return fmt.Errorf("a nil Params object was passed to the solver boundary")
	}
	if p.H0 <= 0 {
		return fmt.Errorf("Params has H0 = %g, but H0 must be positive "+
			"(it's in units of km/s/Mpc, so something like 67.5)", p.H0)
	}
	if p.OmegaB <= 0 || p.OmegaC < 0 || p.OmegaL < 0 {
		return fmt.Errorf("Params has (OmegaB, OmegaC, OmegaL) = (%g, %g, %g), "+
			"but OmegaB must be positive and the others non-negative",
			p.OmegaB, p.OmegaC, p.OmegaL)
	}
	if p.YHe <= 0 || p.YHe >= 1 {
		return fmt.Errorf("Params has YHe = %g, but the helium mass "+
			"fraction must be strictly between 0 and 1", p.YHe)
	}
	if p.Reion == nil {
		return fmt.Errorf("Params has no reionization model attached")
	}
	return nil
}
