// Package eos: adiabatic lapse rate and potential temperature.
// The lapse rate is the Bryden (1973) polynomial as given in UNESCO TR44;
// potential temperature integrates it with the classic 4-stage
// Runge-Kutta scheme of Fofonoff (UNESCO eqn 31).

package eos

import (
	"math"

	"github.com/oceanum/seawater/ndarray"
	"github.com/oceanum/seawater/tempscale"
)

// adtgAt is the adiabatic temperature gradient [°C/db].
// t90 on ITS-90; the polynomial itself is in IPTS-68.
// Check value: 3.255976e-4 at S=40, T68=40, P=10000 db.
func adtgAt(s, t90, p float64) float64 {
	t68 := tempscale.IPTS68(t90)

	const (
		a0 = 3.5803e-5
		a1 = 8.5258e-6
		a2 = -6.836e-8
		a3 = 6.6228e-10

		b0 = 1.8932e-6
		b1 = -4.2393e-8

		c0 = 1.8741e-8
		c1 = -6.7795e-10
		c2 = 8.733e-12
		c3 = -5.4481e-14

		d0 = -1.1351e-10
		d1 = 2.7759e-12

		e0 = -4.6206e-13
		e1 = 1.8676e-14
		e2 = -2.1687e-16
	)

	return a0 + (a1+(a2+a3*t68)*t68)*t68 +
		(b0+b1*t68)*(s-35) +
		((c0+(c1+(c2+c3*t68)*t68)*t68)+(d0+d1*t68)*(s-35))*p +
		(e0+(e1+e2*t68)*t68)*p*p
}

// ptmpAt is potential temperature [°C, ITS-90] relative to pref [db],
// via 4th-order Runge-Kutta integration of the adiabatic lapse rate.
// Check value: θ68 = 36.89073 at S=40, T68=40, P=10000, pref=0.
func ptmpAt(s, t90, p, pref float64) float64 {
	sq2 := math.Sqrt2
	delP := pref - p

	// Stage 1.
	delTh := delP * adtgAt(s, t90, p)
	th := tempscale.IPTS68(t90) + 0.5*delTh
	q := delTh

	// Stage 2.
	delTh = delP * adtgAt(s, tempscale.ITS90(th), p+0.5*delP)
	th += (1 - 1/sq2) * (delTh - q)
	q = (2-sq2)*delTh + (-2+3/sq2)*q

	// Stage 3.
	delTh = delP * adtgAt(s, tempscale.ITS90(th), p+0.5*delP)
	th += (1 + 1/sq2) * (delTh - q)
	q = (2+sq2)*delTh + (-2-3/sq2)*q

	// Stage 4.
	delTh = delP * adtgAt(s, tempscale.ITS90(th), p+delP)

	return tempscale.ITS90(th + (delTh-2*q)/6)
}

// pdenAt is potential density [kg/m³]: in-situ density the parcel would
// have if moved adiabatically to the reference pressure.
func pdenAt(s, t90, p, pref float64) float64 {
	return densityAt(s, ptmpAt(s, t90, p, pref), pref)
}

// AdiabaticLapseRate computes Γ [°C/db] from practical salinity, ITS-90
// temperature and pressure [db].
func AdiabaticLapseRate(s, t90, p *ndarray.Array) (*ndarray.Array, error) {
	bufs, reshape, err := ndarray.Align(s, t90, p)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(bufs[0]))
	for i := range out {
		if err = checkSTP(bufs[0][i], bufs[1][i], bufs[2][i]); err != nil {
			return nil, err
		}
		out[i] = adtgAt(bufs[0][i], bufs[1][i], bufs[2][i])
	}

	return reshape.Restore(out)
}

// PotentialTemperature computes θ [°C, ITS-90] relative to the reference
// pressure pref [db]. pref broadcasts like any secondary argument; a
// scalar references the whole field to one level.
func PotentialTemperature(s, t90, p, pref *ndarray.Array) (*ndarray.Array, error) {
	bufs, reshape, err := ndarray.Align(s, t90, p, pref)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(bufs[0]))
	for i := range out {
		if err = checkSTP(bufs[0][i], bufs[1][i], bufs[2][i]); err != nil {
			return nil, err
		}
		if bufs[3][i] < 0 || !finite(bufs[3][i]) {
			return nil, errPref(bufs[3][i])
		}
		out[i] = ptmpAt(bufs[0][i], bufs[1][i], bufs[2][i], bufs[3][i])
	}

	return reshape.Restore(out)
}

// Temperature recovers in-situ temperature [°C, ITS-90] from potential
// temperature relative to pref: the inverse of PotentialTemperature,
// obtained by integrating with the pressure arguments swapped.
func Temperature(s, theta90, p, pref *ndarray.Array) (*ndarray.Array, error) {
	bufs, reshape, err := ndarray.Align(s, theta90, p, pref)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(bufs[0]))
	for i := range out {
		if err = checkSTP(bufs[0][i], bufs[1][i], bufs[2][i]); err != nil {
			return nil, err
		}
		if bufs[3][i] < 0 || !finite(bufs[3][i]) {
			return nil, errPref(bufs[3][i])
		}
		out[i] = ptmpAt(bufs[0][i], bufs[1][i], bufs[3][i], bufs[2][i])
	}

	return reshape.Restore(out)
}

// PotentialDensity computes ρθ [kg/m³] relative to pref [db].
func PotentialDensity(s, t90, p, pref *ndarray.Array) (*ndarray.Array, error) {
	bufs, reshape, err := ndarray.Align(s, t90, p, pref)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(bufs[0]))
	for i := range out {
		if err = checkSTP(bufs[0][i], bufs[1][i], bufs[2][i]); err != nil {
			return nil, err
		}
		if bufs[3][i] < 0 || !finite(bufs[3][i]) {
			return nil, errPref(bufs[3][i])
		}
		out[i] = pdenAt(bufs[0][i], bufs[1][i], bufs[2][i], bufs[3][i])
	}

	return reshape.Restore(out)
}

// SigmaTheta computes σθ = ρθ(S,T,P,pref) − 1000 [kg/m³].
func SigmaTheta(s, t90, p, pref *ndarray.Array) (*ndarray.Array, error) {
	rho, err := PotentialDensity(s, t90, p, pref)
	if err != nil {
		return nil, err
	}

	return shift(rho, -1000)
}
