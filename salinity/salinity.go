// Package salinity: PSS-78 kernels and the conductivity→salinity solve.

package salinity

import (
	"fmt"
	"math"

	"github.com/oceanum/seawater/ndarray"
	"github.com/oceanum/seawater/tempscale"
)

// PSS-78 coefficients (UNESCO 1983, eqns 1–4). The a-set sums to 35 so
// that S(Rt=1, T68=15) = 35 exactly.
var (
	pssA = [6]float64{0.0080, -0.1692, 25.3851, 14.0941, -7.0261, 2.7081}
	pssB = [6]float64{0.0005, -0.0056, -0.0066, -0.0375, 0.0636, -0.0144}
)

const pssK = 0.0162

// salsAt evaluates practical salinity from rtx = √Rt and the IPTS-68
// temperature offset delT = T68 − 15. UNESCO eqns 1 and 2.
func salsAt(rtx, delT float64) float64 {
	var sum, dsum float64
	pow := 1.0
	for j := 0; j < 6; j++ {
		sum += pssA[j] * pow
		dsum += pssB[j] * pow
		pow *= rtx
	}

	return sum + delT/(1+pssK*delT)*dsum
}

// saldsAt is the analytic derivative dS/d√Rt used by the Newton solve.
func saldsAt(rtx, delT float64) float64 {
	var sum, dsum float64
	pow := 1.0
	for j := 1; j < 6; j++ {
		sum += float64(j) * pssA[j] * pow
		dsum += float64(j) * pssB[j] * pow
		pow *= rtx
	}

	return sum + delT/(1+pssK*delT)*dsum
}

// salrtAt is rt(T): the conductivity ratio of standard seawater (S=35)
// at temperature t68 relative to 15 °C. UNESCO eqn 3.
func salrtAt(t68 float64) float64 {
	const (
		c0 = 0.6766097
		c1 = 2.00564e-2
		c2 = 1.104259e-4
		c3 = -6.9698e-7
		c4 = 1.0031e-9
	)

	return c0 + (c1+(c2+(c3+c4*t68)*t68)*t68)*t68
}

// Pressure-correction coefficients of UNESCO eqn 4.
const (
	pssD1 = 3.426e-2
	pssD2 = 4.464e-4
	pssD3 = 4.215e-1
	pssD4 = -3.107e-3

	pssE1 = 2.070e-5
	pssE2 = -6.370e-10
	pssE3 = 3.989e-15
)

// salrpAt is Rp(R, T68, P): the pressure correction to the measured
// conductivity ratio. UNESCO eqn 4.
func salrpAt(r, t68, p float64) float64 {
	a := pssD3 + pssD4*t68
	b := 1 + (pssD1+pssD2*t68)*t68
	c := p * (pssE1 + (pssE2+pssE3*p)*p)

	return 1 + c/(b+a*r)
}

// saltAt is the closed-form PSS-78 salinity from the measured ratio:
// Rt = R/(Rp·rt), then S(√Rt, T68).
func saltAt(r, t90, p float64) float64 {
	t68 := tempscale.IPTS68(t90)
	rt := r / (salrpAt(r, t68, p) * salrtAt(t68))

	return salsAt(math.Sqrt(rt), t68-15)
}

// salinityAt solves one element: the closed-form estimate seeds a Newton
// refinement against the forward conductivity ratio, so the solution is
// a fixed point of the forward formula rather than of any one algebraic
// rearrangement.
func salinityAt(r, t90, p float64, opts Options) (float64, error) {
	s := saltAt(r, t90, p)
	if s < 0 || !finite(s) {
		return 0, fmt.Errorf("salinity: ratio %g maps outside the salinity domain: %w", r, ErrDomain)
	}

	// Finite-difference step for dR/dS; R is O(1) and smooth in S.
	const h = 1e-6
	for iter := 0; iter < opts.MaxIterations; iter++ {
		rc, err := cndrAt(s, t90, p, opts)
		if err != nil {
			return 0, err
		}
		res := rc - r
		if math.Abs(res) < opts.Tolerance {
			return s, nil
		}
		rch, err := cndrAt(s+h, t90, p, opts)
		if err != nil {
			return 0, err
		}
		s -= res / ((rch - rc) / h)
	}

	return 0, fmt.Errorf("salinity: ratio %g after %d iterations: %w", r, opts.MaxIterations, ErrConvergence)
}

// Salinity computes practical salinity from the in-situ conductivity
// ratio r, ITS-90 temperature [°C] and pressure [db]. Arrays broadcast
// per the ndarray contract; the result takes the shape and orientation
// of r. Each element iterates independently; the whole call fails if any
// element exceeds the cap.
func Salinity(r, t90, p *ndarray.Array, opts Options) (*ndarray.Array, error) {
	if err := checkOpts(opts); err != nil {
		return nil, err
	}
	bufs, reshape, err := ndarray.Align(r, t90, p)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(bufs[0]))
	for i := range out {
		if err = checkElem("conductivity ratio", bufs[0][i], bufs[1][i], bufs[2][i]); err != nil {
			return nil, err
		}
		if out[i], err = salinityAt(bufs[0][i], bufs[1][i], bufs[2][i], opts); err != nil {
			return nil, err
		}
	}

	return reshape.Restore(out)
}
