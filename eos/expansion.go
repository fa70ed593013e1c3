// Package eos: thermal expansion and saline contraction coefficients
// after McDougall (1987). The polynomials are fitted in potential
// temperature, so in-situ input is first referenced to the surface.

package eos

import (
	"github.com/oceanum/seawater/ndarray"
	"github.com/oceanum/seawater/tempscale"
)

// normalizeTheta resolves the tIsPotential switch: it returns potential
// temperature [°C, ITS-90] referenced to 0 db whichever scale the caller
// supplied t on. Every expansion-coefficient path goes through here; no
// other code interprets the flag.
func normalizeTheta(s, t90, p float64, tIsPotential bool) float64 {
	if tIsPotential {
		return t90
	}

	return ptmpAt(s, t90, p, 0)
}

// aonbAt is the thermal expansion / saline contraction ratio α/β
// [psu/°C]. theta68 is potential temperature on IPTS-68.
// Check value: 0.34763 at S=40, θ68=10, P=4000 db.
func aonbAt(s, theta68, p float64) float64 {
	t := theta68
	sm35 := s - 35

	poly1 := 0.665157e-1 + (0.170907e-1+(-0.203814e-3+(0.298357e-5-0.255019e-7*t)*t)*t)*t
	poly2 := 0.378110e-2 - 0.846960e-4*t
	poly2a := (-0.164759e-6 - 0.251520e-11*p) * p
	poly4 := 0.380374e-4 + (-0.933746e-6+0.791325e-8*t)*t

	return poly1 +
		sm35*(poly2+poly2a) +
		sm35*sm35*-0.678662e-5 +
		p*poly4 +
		0.512857e-12*p*p*t*t +
		-0.302285e-13*p*p*p
}

// betaAt is the saline contraction coefficient β [psu⁻¹].
// Check value: 0.72088e-3 at S=40, θ68=10, P=4000 db.
func betaAt(s, theta68, p float64) float64 {
	t := theta68
	sm35 := s - 35

	poly1 := 0.785567e-3 + (-0.301985e-5+(0.555579e-7-0.415613e-9*t)*t)*t
	poly2 := -0.356603e-6 + 0.788212e-8*t
	poly3 := (0.408195e-10 - 0.602281e-15*p) * p
	poly5 := -0.121555e-7 + (0.192867e-9-0.213127e-11*t)*t
	poly6 := 0.176621e-12 - 0.175379e-14*t

	return poly1 +
		sm35*(poly2+poly3) +
		sm35*sm35*0.515032e-8 +
		p*poly5 +
		p*p*poly6 +
		0.121551e-17*p*p*p
}

// expansionKernel maps a scalar (s, θ68, p) to one coefficient value.
type expansionKernel func(s, theta68, p float64) float64

// evalExpansion shares the Align / normalize / kernel pipeline between
// the three coefficient functions.
func evalExpansion(s, t90, p *ndarray.Array, tIsPotential bool, fn expansionKernel) (*ndarray.Array, error) {
	bufs, reshape, err := ndarray.Align(s, t90, p)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(bufs[0]))
	for i := range out {
		if err = checkSTP(bufs[0][i], bufs[1][i], bufs[2][i]); err != nil {
			return nil, err
		}
		theta := normalizeTheta(bufs[0][i], bufs[1][i], bufs[2][i], tIsPotential)
		out[i] = fn(bufs[0][i], tempscale.IPTS68(theta), bufs[2][i])
	}

	return reshape.Restore(out)
}

// AlphaBetaRatio computes α/β [psu/°C] after McDougall (1987). When
// tIsPotential is true, t90 is taken as potential temperature referenced
// to the surface; otherwise it is in-situ and converted internally.
func AlphaBetaRatio(s, t90, p *ndarray.Array, tIsPotential bool) (*ndarray.Array, error) {
	return evalExpansion(s, t90, p, tIsPotential, aonbAt)
}

// Beta computes the saline contraction coefficient β [psu⁻¹].
func Beta(s, t90, p *ndarray.Array, tIsPotential bool) (*ndarray.Array, error) {
	return evalExpansion(s, t90, p, tIsPotential, betaAt)
}

// Alpha computes the thermal expansion coefficient α [°C⁻¹] as the
// product (α/β)·β, keeping the three functions mutually consistent.
func Alpha(s, t90, p *ndarray.Array, tIsPotential bool) (*ndarray.Array, error) {
	return evalExpansion(s, t90, p, tIsPotential, func(sv, theta68, pv float64) float64 {
		return aonbAt(sv, theta68, pv) * betaAt(sv, theta68, pv)
	})
}
