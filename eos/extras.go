// Package eos: heat capacity, sound speed and freezing point from the
// UNESCO 1983 report (eqns 26–37) and Millero & Leung (1976).

package eos

import (
	"math"

	"github.com/oceanum/seawater/ndarray"
	"github.com/oceanum/seawater/tempscale"
)

// cpAt is the specific heat capacity of seawater [J/(kg·°C)].
// UNESCO eqns 26, 28 and 29; p in decibars.
// Check value: 3849.500 at S=40, T68=40, P=10000 db.
func cpAt(s, t90, p float64) float64 {
	t68 := tempscale.IPTS68(t90)
	pb := p / 10.0
	sr := s * math.Sqrt(s)

	// Cp(S,T,0), eqn 26.
	cpst0 := (((2.093236e-5*t68-2.654387e-3)*t68+0.1412855)*t68-3.720283)*t68 + 4217.4 +
		(-7.64357+(0.1072763-1.38385e-3*t68)*t68)*s +
		(0.1770383+(-4.07718e-3+5.148e-5*t68)*t68)*sr

	// ΔCp(0,T,P), eqn 28.
	delCp0t0 := ((((6.136e-13*t68-6.5637e-11)*t68+2.6380e-9)*t68-5.422e-8)*pb +
		((((2.2956e-11*t68-4.0027e-9)*t68+2.87533e-7)*t68-1.08645e-5)*t68 + 2.4931e-4)) * pb
	delCp0t0 = (delCp0t0 +
		((((1.7168e-8*t68+2.0357e-6)*t68-3.13885e-4)*t68+1.45747e-2)*t68 - 4.9592e-1)) * pb

	// ΔCp(S,T,P), eqn 29.
	delCpstp := (((((-2.9179e-10*t68+2.5941e-8)*t68+9.802e-7)*t68-1.28315e-4)*t68+4.9247e-3)*s+
		((3.122e-8*t68-1.517e-6)*t68-1.2331e-4)*sr)*pb +
		(((1.8448e-11*t68-2.3905e-9)*t68+1.17054e-7)*t68-2.9558e-6)*s*pb*pb +
		9.971e-8*sr*pb*pb +
		(((3.513e-13*t68-1.7682e-11)*t68+5.540e-10)*s-
			1.4300e-12*t68*sr)*pb*pb*pb

	return cpst0 + delCp0t0 + delCpstp
}

// svelAt is the speed of sound in seawater [m/s]. UNESCO eqns 33–37;
// p in decibars.
// Check value: 1731.995 at S=40, T68=40, P=10000 db.
func svelAt(s, t90, p float64) float64 {
	t68 := tempscale.IPTS68(t90)
	pb := p / 10.0

	// Pure water term Cw, eqn 34.
	cw := ((((-2.3643e-12*t68+3.8504e-10)*t68-9.7729e-9)*pb+
		((((1.0405e-12*t68-2.5335e-10)*t68+2.5974e-8)*t68-1.7107e-6)*t68+3.1260e-5))*pb+
		((((-6.1185e-10*t68+1.3621e-7)*t68-8.1788e-6)*t68+6.8982e-4)*t68+0.153563))*pb +
		((((3.1464e-9*t68-1.47800e-6)*t68+3.3420e-4)*t68-5.80852e-2)*t68+5.03711)*t68 + 1402.388

	// A, eqn 35.
	a := (((-3.389e-13*t68+6.649e-12)*t68+1.100e-10)*pb+
		(((7.988e-12*t68-1.6002e-10)*t68+9.1041e-9)*t68-3.9064e-7))*pb +
		((((-2.0122e-10*t68+1.0507e-8)*t68-6.4885e-8)*t68-1.2580e-5)*t68+9.4742e-5)
	a = a*pb + (((-3.21e-8*t68+2.006e-6)*t68+7.164e-5)*t68-1.262e-2)*t68 + 1.389

	// B, eqn 36.
	b := -1.922e-2 - 4.42e-5*t68 + (7.3637e-5+1.7945e-7*t68)*pb

	// D, eqn 37.
	d := 1.727e-3 - 7.9836e-6*pb

	return cw + a*s + b*s*math.Sqrt(s) + d*s*s
}

// fpAt is the freezing point of seawater [°C, ITS-90] at pressure p [db],
// after Millero & Leung (1976) as adopted in UNESCO TR44.
// Check value: T68 = -2.588567 at S=40, P=500 db.
func fpAt(s, p float64) float64 {
	t68 := -0.0575*s + 1.710523e-3*s*math.Sqrt(s) - 2.154996e-4*s*s - 7.53e-4*p

	return tempscale.ITS90(t68)
}

// HeatCapacity computes the specific heat capacity Cp [J/(kg·°C)].
func HeatCapacity(s, t90, p *ndarray.Array) (*ndarray.Array, error) {
	bufs, reshape, err := ndarray.Align(s, t90, p)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(bufs[0]))
	for i := range out {
		if err = checkSTP(bufs[0][i], bufs[1][i], bufs[2][i]); err != nil {
			return nil, err
		}
		out[i] = cpAt(bufs[0][i], bufs[1][i], bufs[2][i])
	}

	return reshape.Restore(out)
}

// SoundSpeed computes the speed of sound [m/s].
func SoundSpeed(s, t90, p *ndarray.Array) (*ndarray.Array, error) {
	bufs, reshape, err := ndarray.Align(s, t90, p)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(bufs[0]))
	for i := range out {
		if err = checkSTP(bufs[0][i], bufs[1][i], bufs[2][i]); err != nil {
			return nil, err
		}
		out[i] = svelAt(bufs[0][i], bufs[1][i], bufs[2][i])
	}

	return reshape.Restore(out)
}

// FreezingPoint computes the freezing point of seawater [°C, ITS-90].
// The fit is valid for practical salinity 4–40 and assumes air-saturated
// water; no error is raised outside that band beyond the usual domain
// checks.
func FreezingPoint(s, p *ndarray.Array) (*ndarray.Array, error) {
	bufs, reshape, err := ndarray.Align(s, p)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(bufs[0]))
	for i := range out {
		if err = checkSTP(bufs[0][i], 0, bufs[1][i]); err != nil {
			return nil, err
		}
		out[i] = fpAt(bufs[0][i], bufs[1][i])
	}

	return reshape.Restore(out)
}
