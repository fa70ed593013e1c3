// Package salinity: the forward solve, salinity → conductivity ratio.

package salinity

import (
	"fmt"
	"math"

	"github.com/oceanum/seawater/ndarray"
	"github.com/oceanum/seawater/tempscale"
)

// newtonObserver, when non-nil, receives the residual magnitude of every
// √Rt Newton step. Set only from tests in this package.
var newtonObserver func(res float64)

// cndrAt solves one element. PSS-78 gives S as a polynomial in √Rt, so
// √Rt is found by Newton iteration with the analytic derivative, then
// the measured ratio R follows in closed form: R = Rt·rt·Rp(R) is a
// quadratic in R once Rp is written out (UNESCO eqns 3, 4).
func cndrAt(s, t90, p float64, opts Options) (float64, error) {
	t68 := tempscale.IPTS68(t90)
	delT := t68 - 15

	// Newton on rtx = √Rt. S ≈ 35·Rt near standard seawater, so √(S/35)
	// is a good seed everywhere in the valid domain.
	rtx := math.Sqrt(s / 35.0)
	converged := false
	for iter := 0; iter < opts.MaxIterations; iter++ {
		res := s - salsAt(rtx, delT)
		if newtonObserver != nil {
			newtonObserver(math.Abs(res))
		}
		if math.Abs(res) < opts.Tolerance {
			converged = true
			break
		}
		rtx += res / saldsAt(rtx, delT)
	}
	if !converged {
		return 0, fmt.Errorf("salinity: S=%g after %d iterations: %w", s, opts.MaxIterations, ErrConvergence)
	}

	// Fold the temperature and pressure corrections back in. With
	// Q = Rt·rt(T), the identity R = Q·Rp(R) expands to
	// A·R² + (B−A·Q)·R − Q·(B+C) = 0; the positive root is R.
	q := rtx * rtx * salrtAt(t68)
	a := pssD3 + pssD4*t68
	b := 1 + (pssD1+pssD2*t68)*t68
	c := p * (pssE1 + (pssE2+pssE3*p)*p)
	d := b - a*q

	return (math.Sqrt(d*d+4*a*q*(b+c)) - d) / (2 * a), nil
}

// ConductivityRatio computes the in-situ conductivity ratio
// R = C(S,T,P)/C(35,15,0) from practical salinity, ITS-90 temperature
// [°C] and pressure [db]. The inverse of Salinity; the two round-trip to
// within the configured tolerance.
func ConductivityRatio(s, t90, p *ndarray.Array, opts Options) (*ndarray.Array, error) {
	if err := checkOpts(opts); err != nil {
		return nil, err
	}
	bufs, reshape, err := ndarray.Align(s, t90, p)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(bufs[0]))
	for i := range out {
		if err = checkElem("salinity", bufs[0][i], bufs[1][i], bufs[2][i]); err != nil {
			return nil, err
		}
		if out[i], err = cndrAt(bufs[0][i], bufs[1][i], bufs[2][i], opts); err != nil {
			return nil, err
		}
	}

	return reshape.Restore(out)
}
