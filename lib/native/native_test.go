package native

import (
	"math"
	"testing"

	"github.com/cosmoglot/reion/lib/eq"
	"github.com/cosmoglot/reion/lib/reion"
)

func testParams(model reion.ReionModel) *reion.Params {
	return &reion.Params{
		H0: 67.5, OmegaB: 0.049, OmegaC: 0.264, OmegaL: 0.685,
		TCMB: 2.7255, YHe: 0.246,
		Reion: model,
	}
}

func TestSetTablePassesThroughSamples(t *testing.T) {
	tests := []struct {
		z, Xe []float64
	}{
		{[]float64{5}, []float64{0.5}},
		{[]float64{0, 10}, []float64{1, 0}},
		{[]float64{0, 2, 5, 8, 12, 30},
			[]float64{1.16, 1.08, 1.0, 0.5, 0.05, 0.0}},
	}

	for i := range tests {
		solver := New()
		spl, err := reion.NewSplinedTable(solver, tests[i].z, tests[i].Xe)
		if err != nil {
			t.Fatalf("%d) NewSplinedTable returned the error '%s'.",
				i, err.Error())
		}
		params := testParams(spl)

		for j := range tests[i].z {
			xe, err := solver.Xe(params, tests[i].z[j])
			if err != nil {
				t.Fatalf("%d) Xe(%g) returned the error '%s'.",
					i, tests[i].z[j], err.Error())
			}
			if !eq.Float64Rel(xe, tests[i].Xe[j], 1e-8) {
				t.Errorf("%d) The spline doesn't pass through sample %d: "+
					"expected Xe(%g) = %g, got %g.",
					i, j, tests[i].z[j], tests[i].Xe[j], xe)
			}
		}
	}
}

func TestSetTableClampsOutsideRange(t *testing.T) {
	solver := New()
	z := []float64{2, 5, 10}
	Xe := []float64{1.0, 0.5, 0.0}
	if err := solver.SetTable(z, Xe); err != nil {
		t.Fatalf("SetTable returned the error '%s'.", err.Error())
	}

	spl := reion.NewSplined(solver)
	params := testParams(spl)

	low, err := solver.Xe(params, 0)
	if err != nil {
		t.Fatalf("Xe(0) returned the error '%s'.", err.Error())
	}
	high, err := solver.Xe(params, 40)
	if err != nil {
		t.Fatalf("Xe(40) returned the error '%s'.", err.Error())
	}

	if low != 1.0 || high != 0.0 {
		t.Errorf("Queries outside the table should clamp to the end "+
			"values (1, 0), got (%g, %g).", low, high)
	}
}

func TestSetTableErrors(t *testing.T) {
	tests := []struct {
		z, Xe []float64
	}{
		{[]float64{0, 1}, []float64{1}},
		{[]float64{}, []float64{}},
		{[]float64{0, 5, 3}, []float64{1, 0.5, 0}},
		{[]float64{0, 0, 3}, []float64{1, 0.5, 0}},
	}

	for i := range tests {
		solver := New()
		if err := solver.SetTable(tests[i].z, tests[i].Xe); err == nil {
			t.Errorf("%d) SetTable accepted the invalid table z = %g, "+
				"Xe = %g.", i, tests[i].z, tests[i].Xe)
		}
	}
}

func TestSetLogRegular(t *testing.T) {
	solver := New()
	Xe := []float64{1.1, 1.0, 0.7, 0.2, 0.0}
	if err := solver.SetLogRegular(0.5, 40, Xe); err != nil {
		t.Fatalf("SetLogRegular returned the error '%s'.", err.Error())
	}

	params := testParams(reion.NewSplined(solver))
	ends := []struct{ z, Xe float64 }{{0.5, 1.1}, {40, 0.0}}
	for i := range ends {
		xe, err := solver.Xe(params, ends[i].z)
		if err != nil {
			t.Fatalf("%d) Xe(%g) returned the error '%s'.",
				i, ends[i].z, err.Error())
		}
		if !eq.Float64Rel(xe, ends[i].Xe, 1e-8) {
			t.Errorf("%d) Expected Xe(%g) = %g at the grid end point, "+
				"got %g.", i, ends[i].z, ends[i].Xe, xe)
		}
	}
}

func TestSetLogRegularErrors(t *testing.T) {
	tests := []struct {
		zmin, zmax float64
		Xe         []float64
	}{
		{0, 10, []float64{1, 0}},
		{-1, 10, []float64{1, 0}},
		{10, 10, []float64{1, 0}},
		{20, 10, []float64{1, 0}},
		{1, 10, []float64{1}},
		{1, 10, []float64{}},
	}

	for i := range tests {
		solver := New()
		err := solver.SetLogRegular(tests[i].zmin, tests[i].zmax, tests[i].Xe)
		if err == nil {
			t.Errorf("%d) SetLogRegular accepted zmin = %g, zmax = %g, "+
				"len(Xe) = %d.", i, tests[i].zmin, tests[i].zmax,
				len(tests[i].Xe))
		}
	}
}

func TestXeWithoutTable(t *testing.T) {
	solver := New()
	params := testParams(reion.NewSplined(solver))
	if _, err := solver.Xe(params, 5); err == nil {
		t.Errorf("Xe on a splined model with no ingested table didn't " +
			"error.")
	}
}

func TestTanhXeShape(t *testing.T) {
	solver := New()
	m := reion.NewTanh(solver).SetZrei(8.0)
	params := testParams(m)
	fHe := newBackground(params).fHe

	xe := func(z float64) float64 {
		out, err := solver.Xe(params, z)
		if err != nil {
			t.Fatalf("Xe(%g) returned the error '%s'.", z, err.Error())
		}
		return out
	}

	// Today everything is ionized: hydrogen, plus helium twice.
	if !eq.Float64Rel(xe(0), 1+2*fHe, 1e-3) {
		t.Errorf("Expected Xe(0) = %g, got %g.", 1+2*fHe, xe(0))
	}
	// Well above the transition nothing is.
	if xe(40) > 1e-4 {
		t.Errorf("Expected Xe(40) to be roughly zero, got %g.", xe(40))
	}
	// The transition's mid-point sits at z_re.
	if !eq.Float64Rel(xe(8.0), (1+fHe)/2, 1e-3) {
		t.Errorf("Expected Xe(z_re) = %g, got %g.", (1+fHe)/2, xe(8.0))
	}
	// Monotone decline through the hydrogen transition.
	zs := []float64{6, 7, 8, 9, 10}
	for i := 1; i < len(zs); i++ {
		if xe(zs[i]) >= xe(zs[i-1]) {
			t.Errorf("Xe should fall with redshift through the "+
				"transition, but Xe(%g) = %g >= Xe(%g) = %g.",
				zs[i], xe(zs[i]), zs[i-1], xe(zs[i-1]))
		}
	}
}

func TestTanhXeFraction(t *testing.T) {
	solver := New()
	m := reion.NewTanh(solver).SetZrei(8.0)
	m.Fraction = 0.7
	m.IncludeHeliumFullReion = false
	params := testParams(m)

	xe, err := solver.Xe(params, 0)
	if err != nil {
		t.Fatalf("Xe(0) returned the error '%s'.", err.Error())
	}
	if !eq.Float64Rel(xe, 0.7, 1e-3) {
		t.Errorf("With Fraction = 0.7 and helium off, expected "+
			"Xe(0) = 0.7, got %g.", xe)
	}
}

func TestReionizationOff(t *testing.T) {
	solver := New()
	m := reion.NewTanh(solver).SetZrei(8.0)
	m.Reionization = false
	params := testParams(m)

	xe, err := solver.Xe(params, 0)
	if err != nil {
		t.Fatalf("Xe(0) returned the error '%s'.", err.Error())
	}
	if xe != 0 {
		t.Errorf("Expected Xe = 0 with reionization switched off, "+
			"got %g.", xe)
	}

	tau, err := solver.OpticalDepth(params, 50)
	if err != nil {
		t.Fatalf("OpticalDepth returned the error '%s'.", err.Error())
	}
	if tau != 0 {
		t.Errorf("Expected tau = 0 with reionization switched off, "+
			"got %g.", tau)
	}
}

func TestOpticalDepthScale(t *testing.T) {
	// For z_re around 8 the optical depth should land in the observed
	// ballpark, a few times 0.01.
	solver := New()
	m := reion.NewTanh(solver).SetZrei(8.0)
	params := testParams(m)

	tau, err := solver.OpticalDepth(params, m.MaxRedshift)
	if err != nil {
		t.Fatalf("OpticalDepth returned the error '%s'.", err.Error())
	}
	if tau < 0.02 || tau > 0.2 {
		t.Errorf("Expected tau(z_re = 8) of order 0.05, got %g.", tau)
	}

	// tau must grow with z_re.
	m2 := reion.NewTanh(solver).SetZrei(11.0)
	tau2, err := solver.OpticalDepth(testParams(m2), m2.MaxRedshift)
	if err != nil {
		t.Fatalf("OpticalDepth returned the error '%s'.", err.Error())
	}
	if tau2 <= tau {
		t.Errorf("tau should grow with z_re, but tau(11) = %g <= "+
			"tau(8) = %g.", tau2, tau)
	}
}

func TestGetZreFromTauRoundTrip(t *testing.T) {
	tests := []float64{6.0, 8.0, 11.5}

	for i := range tests {
		solver := New()
		m := reion.NewTanh(solver).SetZrei(tests[i])
		params := testParams(m)

		tau, err := solver.OpticalDepth(params, m.MaxRedshift)
		if err != nil {
			t.Fatalf("%d) OpticalDepth returned the error '%s'.",
				i, err.Error())
		}

		zre, err := solver.GetZreFromTau(params, tau)
		if err != nil {
			t.Fatalf("%d) GetZreFromTau returned the error '%s'.",
				i, err.Error())
		}
		if math.Abs(zre-tests[i]) > 0.01 {
			t.Errorf("%d) Round trip through tau didn't recover z_re: "+
				"expected %g, got %g.", i, tests[i], zre)
		}
	}
}

func TestGetZreFromTauMonotone(t *testing.T) {
	solver := New()
	m := reion.NewTanh(solver).SetTau(0.054)
	params := testParams(m)

	zre1, err := solver.GetZreFromTau(params, 0.04)
	if err != nil {
		t.Fatalf("GetZreFromTau(0.04) returned the error '%s'.", err.Error())
	}
	zre2, err := solver.GetZreFromTau(params, 0.08)
	if err != nil {
		t.Fatalf("GetZreFromTau(0.08) returned the error '%s'.", err.Error())
	}
	if zre2 <= zre1 {
		t.Errorf("z_re should grow with tau, but z_re(0.08) = %g <= "+
			"z_re(0.04) = %g.", zre2, zre1)
	}
}

func TestGetZreFromTauErrors(t *testing.T) {
	solver := New()

	// A tau no z_re below MaxRedshift can reach.
	m := reion.NewTanh(solver)
	m.MaxRedshift = 12
	if _, err := solver.GetZreFromTau(testParams(m), 0.3); err == nil {
		t.Errorf("GetZreFromTau accepted a tau that's out of range.")
	}

	// Negative tau.
	if _, err := solver.GetZreFromTau(testParams(m), -0.01); err == nil {
		t.Errorf("GetZreFromTau accepted a negative tau.")
	}

	// The attached model must be the tanh parameterization.
	spl := reion.NewSplined(solver)
	if _, err := solver.GetZreFromTau(testParams(spl), 0.05); err == nil {
		t.Errorf("GetZreFromTau accepted a splined model.")
	}
}

func TestGetZreThroughModel(t *testing.T) {
	// End to end through the reion API: SetTau then GetZre must agree with
	// integrating the returned redshift back into an optical depth.
	solver := New()
	m := reion.NewTanh(solver).SetTau(0.054)
	params := testParams(m)

	zre, err := m.GetZre(params)
	if err != nil {
		t.Fatalf("GetZre returned the error '%s'.", err.Error())
	}

	check := reion.NewTanh(solver).SetZrei(zre)
	tau, err := solver.OpticalDepth(testParams(check), check.MaxRedshift)
	if err != nil {
		t.Fatalf("OpticalDepth returned the error '%s'.", err.Error())
	}
	if !eq.Float64Rel(tau, 0.054, 1e-3) {
		t.Errorf("GetZre returned z_re = %g, which integrates back to "+
			"tau = %g instead of 0.054.", zre, tau)
	}
}
