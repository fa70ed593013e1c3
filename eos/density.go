// Package eos: the EOS-80 density chain.
// smow → dens0 → secant bulk modulus → in-situ density, exactly as laid
// out in UNESCO Technical Paper 44 (eqns 6–19), plus the specific volume
// anomaly and the sigma conveniences built on top.

package eos

import (
	"math"

	"github.com/oceanum/seawater/ndarray"
	"github.com/oceanum/seawater/tempscale"
)

// smowAt is the density of Standard Mean Ocean Water [kg/m³].
// UNESCO eqn 14; t68 on IPTS-68.
func smowAt(t68 float64) float64 {
	const (
		a0 = 999.842594
		a1 = 6.793952e-2
		a2 = -9.095290e-3
		a3 = 1.001685e-4
		a4 = -1.120083e-6
		a5 = 6.536332e-9
	)

	return a0 + (a1+(a2+(a3+(a4+a5*t68)*t68)*t68)*t68)*t68
}

// dens0At is seawater density at atmospheric pressure [kg/m³].
// UNESCO eqn 13.
func dens0At(s, t68 float64) float64 {
	const (
		b0 = 8.24493e-1
		b1 = -4.0899e-3
		b2 = 7.6438e-5
		b3 = -8.2467e-7
		b4 = 5.3875e-9

		c0 = -5.72466e-3
		c1 = 1.0227e-4
		c2 = -1.6546e-6

		d0 = 4.8314e-4
	)

	return smowAt(t68) +
		(b0+(b1+(b2+(b3+b4*t68)*t68)*t68)*t68)*s +
		(c0+(c1+c2*t68)*t68)*s*math.Sqrt(s) +
		d0*s*s
}

// seckAt is the secant bulk modulus K [bars]. UNESCO eqns 15–19;
// p in decibars (converted to bars internally).
func seckAt(s, t68, p float64) float64 {
	pb := p / 10.0 // bars, as used throughout the UNESCO pressure terms

	// Pure water terms, eqn 19.
	const (
		h0 = 3.239908
		h1 = 1.43713e-3
		h2 = 1.16092e-4
		h3 = -5.77905e-7
	)
	aw := h0 + (h1+(h2+h3*t68)*t68)*t68

	const (
		k0 = 8.50935e-5
		k1 = -6.12293e-6
		k2 = 5.2787e-8
	)
	bw := k0 + (k1+k2*t68)*t68

	const (
		e0 = 19652.21
		e1 = 148.4206
		e2 = -2.327105
		e3 = 1.360477e-2
		e4 = -5.155288e-5
	)
	kw := e0 + (e1+(e2+(e3+e4*t68)*t68)*t68)*t68

	// Seawater terms at atmospheric pressure, eqns 16–18.
	sr := math.Sqrt(s)

	const (
		i0 = 2.2838e-3
		i1 = -1.0981e-5
		i2 = -1.6078e-6
		j0 = 1.91075e-4
	)
	a := aw + (i0+(i1+i2*t68)*t68+j0*sr)*s

	const (
		m0 = -9.9348e-7
		m1 = 2.0816e-8
		m2 = 9.1697e-10
	)
	b := bw + (m0+(m1+m2*t68)*t68)*s

	const (
		f0 = 54.6746
		f1 = -0.603459
		f2 = 1.09987e-2
		f3 = -6.1670e-5

		g0 = 7.944e-2
		g1 = 1.6483e-2
		g2 = -5.3009e-4
	)
	k := kw + (f0+(f1+(f2+f3*t68)*t68)*t68+(g0+(g1+g2*t68)*t68)*sr)*s

	return k + (a+b*pb)*pb // eqn 15
}

// densityAt is in-situ density [kg/m³]. UNESCO eqn 7; t90 on ITS-90,
// converted once here.
func densityAt(s, t90, p float64) float64 {
	t68 := tempscale.IPTS68(t90)
	pb := p / 10.0

	return dens0At(s, t68) / (1 - pb/seckAt(s, t68, p))
}

// svanAt is the specific volume anomaly [m³/kg]: the in-situ specific
// volume minus that of standard seawater (S=35, T=0) at the same pressure.
// UNESCO eqn 9.
func svanAt(s, t90, p float64) float64 {
	return 1/densityAt(s, t90, p) - 1/densityAt(35, 0, p)
}

// Density computes in-situ seawater density [kg/m³] from practical
// salinity, ITS-90 temperature [°C] and pressure [db] using the EOS-80
// polynomial. Arrays broadcast per the ndarray contract; the result takes
// the shape and orientation of s.
func Density(s, t90, p *ndarray.Array) (*ndarray.Array, error) {
	bufs, reshape, err := ndarray.Align(s, t90, p)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(bufs[0]))
	for i := range out {
		if err = checkSTP(bufs[0][i], bufs[1][i], bufs[2][i]); err != nil {
			return nil, err
		}
		out[i] = densityAt(bufs[0][i], bufs[1][i], bufs[2][i])
	}

	return reshape.Restore(out)
}

// DensityAtmospheric computes density at zero gauge pressure [kg/m³].
func DensityAtmospheric(s, t90 *ndarray.Array) (*ndarray.Array, error) {
	bufs, reshape, err := ndarray.Align(s, t90)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(bufs[0]))
	for i := range out {
		if err = checkSTP(bufs[0][i], bufs[1][i], 0); err != nil {
			return nil, err
		}
		out[i] = dens0At(bufs[0][i], tempscale.IPTS68(bufs[1][i]))
	}

	return reshape.Restore(out)
}

// SMOW computes the density of Standard Mean Ocean Water [kg/m³].
func SMOW(t90 *ndarray.Array) (*ndarray.Array, error) {
	bufs, reshape, err := ndarray.Align(t90)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(bufs[0]))
	for i := range out {
		if err = checkSTP(0, bufs[0][i], 0); err != nil {
			return nil, err
		}
		out[i] = smowAt(tempscale.IPTS68(bufs[0][i]))
	}

	return reshape.Restore(out)
}

// SecantBulkModulus computes K(S,T,P) [bars], UNESCO eqn 15.
func SecantBulkModulus(s, t90, p *ndarray.Array) (*ndarray.Array, error) {
	bufs, reshape, err := ndarray.Align(s, t90, p)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(bufs[0]))
	for i := range out {
		if err = checkSTP(bufs[0][i], bufs[1][i], bufs[2][i]); err != nil {
			return nil, err
		}
		out[i] = seckAt(bufs[0][i], tempscale.IPTS68(bufs[1][i]), bufs[2][i])
	}

	return reshape.Restore(out)
}

// SpecificVolumeAnomaly computes svan [m³/kg] relative to standard
// seawater (35, 0°C) at the same pressure. Often quoted ×1e8 in the
// literature; this returns SI units.
func SpecificVolumeAnomaly(s, t90, p *ndarray.Array) (*ndarray.Array, error) {
	bufs, reshape, err := ndarray.Align(s, t90, p)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(bufs[0]))
	for i := range out {
		if err = checkSTP(bufs[0][i], bufs[1][i], bufs[2][i]); err != nil {
			return nil, err
		}
		out[i] = svanAt(bufs[0][i], bufs[1][i], bufs[2][i])
	}

	return reshape.Restore(out)
}

// SigmaT computes σt = ρ(S,T,P) − 1000 [kg/m³].
func SigmaT(s, t90, p *ndarray.Array) (*ndarray.Array, error) {
	rho, err := Density(s, t90, p)
	if err != nil {
		return nil, err
	}

	return shift(rho, -1000)
}

// shift adds a constant elementwise, preserving shape.
func shift(a *ndarray.Array, c float64) (*ndarray.Array, error) {
	bufs, reshape, err := ndarray.Align(a)
	if err != nil {
		return nil, err
	}
	for i := range bufs[0] {
		bufs[0][i] += c
	}

	return reshape.Restore(bufs[0])
}
