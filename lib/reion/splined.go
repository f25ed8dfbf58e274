package reion

import (
	"fmt"
)

/* splined.go contains the generic tabulated reionization model. The table
itself is owned by the solver once ingested: this type only remembers which
backend it handed the table to. */

// Splined stores a generic reionization model set from sampled
// (z_i, Xe(z_i)) values. The spline built from the table lives inside the
// solver backend, not here.
type Splined struct {
	Model
	// TimestepBoost scales the minimum number of time sampling steps the
	// solver takes through reionization.
	TimestepBoost float64

	solver Solver
}

// NewSplined creates a splined model bound to the given solver backend. No
// table is ingested yet; call SetScalarTable or SetLogRegular. Note that
// UseSpline is set here, on construction: the header flag has to agree with
// the concrete model or the solver would fall back to the tanh shape.
func NewSplined(solver Solver) *Splined {
	return &Splined{
		Model:         Model{Reionization: true, UseSpline: true},
		TimestepBoost: 1,
		solver:        solver,
	}
}

// NewSplinedTable creates a splined model and immediately ingests the given
// (z, Xe) table, as a convenience for callers that already have the samples
// in hand.
func NewSplinedTable(solver Solver, z, Xe []float64) (*Splined, error) {
	s := NewSplined(solver)
	if err := s.SetScalarTable(z, Xe); err != nil {
		return nil, err
	}
	return s, nil
}

// Header returns the shared model header.
func (s *Splined) Header() *Model { return &s.Model }

// SetScalarTable hands arrays of z and Xe(z) values to the solver for cubic
// spline interpolation. The z values must be increasing; that, and the
// length checks, are the solver's to enforce, and its errors propagate back
// unchanged. SetLogRegular is usually the better choice (it's faster and
// makes it easier to get fine enough spacing at low z).
func (s *Splined) SetScalarTable(z, Xe []float64) error {
	if s.solver == nil {
		return fmt.Errorf("the splined model has no solver backend bound")
	}
	return s.solver.SetTable(z, Xe)
}

// SetLogRegular hands the solver Xe samples spaced log-uniformly in z, with
// Xe[0] = Xe(zmin) and Xe[len(Xe)-1] = Xe(zmax). zmin and zmax are z values,
// not log(z) values.
func (s *Splined) SetLogRegular(zmin, zmax float64, Xe []float64) error {
	if s.solver == nil {
		return fmt.Errorf("the splined model has no solver backend bound")
	}
	return s.solver.SetLogRegular(zmin, zmax, Xe)
}
