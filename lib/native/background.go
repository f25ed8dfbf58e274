package native

import (
	"math"

	"github.com/cosmoglot/reion/lib/reion"
)

/* background.go contains the small slice of background cosmology that the
optical depth integral needs: H(z) and the present-day hydrogen and helium
abundances. Everything is in SI units internally. */

const (
	cLight       = 2.99792458e8     // speed of light, m/s
	sigmaThomson = 6.6524587321e-29 // Thomson cross section, m^2
	massHydrogen = 1.6735575e-27    // hydrogen atom mass, kg
	gravG        = 6.67430e-11      // Newton's constant, m^3/kg/s^2
	mpc          = 3.085677581491367e22 // one Mpc in m
	// massRatioHeH is the helium-to-hydrogen atomic mass ratio used to
	// convert the helium mass fraction into a number ratio.
	massRatioHeH = 3.9715
)

// background caches the derived background quantities for one Params set.
type background struct {
	h0SI                   float64 // H0 in 1/s
	omegaM, omegaK, omegaL float64
	nH0                    float64 // hydrogen number density today, 1/m^3
	fHe                    float64 // helium-to-hydrogen number ratio
}

func newBackground(p *reion.Params) *background {
	h0SI := p.H0 * 1000 / mpc
	rhoCrit := 3 * h0SI * h0SI / (8 * math.Pi * gravG)
	omegaM := p.OmegaB + p.OmegaC

	return &background{
		h0SI:   h0SI,
		omegaM: omegaM,
		omegaK: 1 - omegaM - p.OmegaL,
		omegaL: p.OmegaL,
		nH0:    (1 - p.YHe) * p.OmegaB * rhoCrit / massHydrogen,
		fHe:    p.YHe / (massRatioHeH * (1 - p.YHe)),
	}
}

// hubble returns H(z) in 1/s.
func (bg *background) hubble(z float64) float64 {
	a := 1 + z
	return bg.h0SI * math.Sqrt(((bg.omegaM*a+bg.omegaK)*a)*a + bg.omegaL)
}

// dTauDz is the optical depth integrand, d(tau)/dz = sigma_T c n_e(z) /
// ((1+z) H(z)), where n_e = n_H0 (1+z)^3 xe and xe counts electrons per
// hydrogen nucleus.
func (bg *background) dTauDz(z, xe float64) float64 {
	a := 1 + z
	return sigmaThomson * cLight * bg.nH0 * a * a * xe / bg.hubble(z)
}

// tanhXe evaluates the tanh parameterization at redshift z. The transition
// is a smooth step in y = (1+z)^(3/2), with width 1.5 sqrt(1+z_re) delta_z,
// so that the step has roughly constant duration in conformal time. fHe is
// the helium-to-hydrogen number ratio, which both resolves the -1 fraction
// sentinel and scales the second helium transition.
func tanhXe(m *reion.Tanh, fHe, z float64) float64 {
	if !m.Reionization {
		return 0
	}

	frac := m.Fraction
	if frac == -1 {
		frac = 1 + fHe
	}

	deltaY := 1.5 * math.Sqrt(1+m.Redshift) * m.DeltaRedshift
	var xe float64
	if deltaY <= 0 {
		// Zero-width transitions degenerate to a sharp step at z_re.
		if z <= m.Redshift {
			xe = frac
		}
	} else {
		yre := math.Pow(1+m.Redshift, 1.5)
		y := math.Pow(1+z, 1.5)
		xe = frac * (math.Tanh((yre-y)/deltaY) + 1) / 2
	}

	if m.IncludeHeliumFullReion && z < m.HeliumRedshiftStart {
		if m.HeliumDeltaRedshift > 0 {
			arg := (m.HeliumRedshift - z) / m.HeliumDeltaRedshift
			xe += fHe * (math.Tanh(arg) + 1) / 2
		} else if z <= m.HeliumRedshift {
			xe += fHe
		}
	}

	return xe
}
