package reion

import (
	"fmt"
)

/* tanh.go contains the default smooth-step x_e parameterization. The shape
is the (unphysical) tanh model described in Appendix B of arXiv:0804.3865,
plus an optional second, independent helium transition at low redshift. */

// Tanh parameterizes the ionization history as a tanh transition in
// (1+z)^(3/2), driven either by a mid-point redshift or by an optical depth
// that the solver inverts into one.
type Tanh struct {
	Model
	// UseOpticalDepth selects whether OpticalDepth or Redshift is the
	// authoritative primary parameter. Use SetTau and SetZrei rather than
	// assigning these three fields by hand.
	UseOpticalDepth bool
	// Redshift is the mid-point reionization redshift, used when
	// UseOpticalDepth is false.
	Redshift float64
	// OpticalDepth is the target optical depth, used when UseOpticalDepth
	// is true.
	OpticalDepth float64
	// DeltaRedshift is the duration of the transition.
	DeltaRedshift float64
	// Fraction is the ionized fraction once reionization completes, or -1
	// for full hydrogen ionization plus first ionization of helium.
	Fraction float64
	// IncludeHeliumFullReion turns on the second helium transition, with
	// its mid-point at HeliumRedshift, width HeliumDeltaRedshift, and
	// only included below HeliumRedshiftStart.
	IncludeHeliumFullReion bool
	HeliumRedshift         float64
	HeliumDeltaRedshift    float64
	HeliumRedshiftStart    float64
	// TauSolveAccuracyBoost scales the accuracy of the tau -> z_re solve,
	// and TimestepBoost scales the minimum number of time steps the solver
	// takes through reionization. Both are consumed by the solver only.
	TauSolveAccuracyBoost float64
	TimestepBoost         float64
	// MaxRedshift is the largest redshift allowed when mapping tau into a
	// reionization redshift.
	MaxRedshift float64

	solver Solver
}

// NewTanh creates a tanh model bound to the given solver backend, with the
// standard defaults: redshift-driven, delta z = 0.5, the -1 fraction
// sentinel, and helium second reionization at z = 3.5 switched on.
func NewTanh(solver Solver) *Tanh {
	return &Tanh{
		Model:                  Model{Reionization: true, UseSpline: false},
		Redshift:               10,
		DeltaRedshift:          0.5,
		Fraction:               -1,
		IncludeHeliumFullReion: true,
		HeliumRedshift:         3.5,
		HeliumDeltaRedshift:    0.4,
		HeliumRedshiftStart:    5.0,
		TauSolveAccuracyBoost:  1,
		TimestepBoost:          1,
		MaxRedshift:            50,
		solver:                 solver,
	}
}

// Header returns the shared model header.
func (t *Tanh) Header() *Model { return &t.Model }

// SetZrei puts the model in redshift-driven mode with mid-point redshift
// zrei. An optional trailing argument overrides DeltaRedshift. It returns
// the model so calls can be chained.
func (t *Tanh) SetZrei(zrei float64, deltaRedshift ...float64) *Tanh {
	t.UseOpticalDepth = false
	t.Redshift = zrei
	if len(deltaRedshift) > 0 {
		t.DeltaRedshift = deltaRedshift[0]
	}
	return t
}

// SetTau puts the model in optical-depth-driven mode with target optical
// depth tau. An optional trailing argument overrides DeltaRedshift. It
// returns the model so calls can be chained.
func (t *Tanh) SetTau(tau float64, deltaRedshift ...float64) *Tanh {
	t.UseOpticalDepth = true
	t.OpticalDepth = tau
	if len(deltaRedshift) > 0 {
		t.DeltaRedshift = deltaRedshift[0]
	}
	return t
}

// GetZre returns the mid-point reionization redshift. In optical-depth mode,
// or when an explicit tau override is supplied, it delegates to the solver's
// tau inversion with the effective tau (the override wins over the stored
// OpticalDepth). Otherwise it returns the stored Redshift without calling
// the solver at all.
func (t *Tanh) GetZre(params *Params, tau ...float64) (float64, error) {
	if !t.UseOpticalDepth && len(tau) == 0 {
		return t.Redshift, nil
	}

	if err := params.Check(); err != nil {
		return 0, err
	}
	if t.solver == nil {
		return 0, fmt.Errorf("the tanh model has no solver backend bound, " +
			"so tau can't be inverted into a redshift")
	}

	eff := t.OpticalDepth
	if len(tau) > 0 {
		eff = tau[0]
	}
	return t.solver.GetZreFromTau(params, eff)
}
