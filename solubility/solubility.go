package solubility

import (
	"errors"
	"fmt"
	"math"

	"github.com/oceanum/seawater/ndarray"
	"github.com/oceanum/seawater/tempscale"
)

// ErrDomain is returned for negative salinity or non-finite input.
var ErrDomain = errors.New("solubility: input outside physical domain")

// weissFit holds one gas's coefficients for eqn 4 of Weiss (1970).
type weissFit struct {
	a1, a2, a3, a4 float64
	b1, b2, b3     float64
}

var (
	fitO2 = weissFit{-173.4292, 249.6339, 143.3483, -21.8492, -0.033096, 0.014259, -0.0017000}
	fitN2 = weissFit{-172.4965, 248.4262, 143.0738, -21.7120, -0.049781, 0.025018, -0.0034861}
	fitAr = weissFit{-173.5146, 245.4510, 141.8222, -21.8020, -0.034474, 0.014934, -0.0017729}
)

// at evaluates the fit at one (s, t90) element. T is absolute IPTS-68.
func (w weissFit) at(s, t90 float64) float64 {
	tk := (273.15 + tempscale.IPTS68(t90)) / 100

	lnC := w.a1 + w.a2/tk + w.a3*math.Log(tk) + w.a4*tk +
		s*(w.b1+(w.b2+w.b3*tk)*tk)

	return math.Exp(lnC)
}

// eval shares the Align/validate/kernel pipeline across the three gases.
func eval(s, t90 *ndarray.Array, fit weissFit) (*ndarray.Array, error) {
	bufs, reshape, err := ndarray.Align(s, t90)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(bufs[0]))
	for i := range out {
		sv, tv := bufs[0][i], bufs[1][i]
		if sv < 0 {
			return nil, fmt.Errorf("solubility: salinity %g: %w", sv, ErrDomain)
		}
		if math.IsNaN(sv) || math.IsInf(sv, 0) || math.IsNaN(tv) || math.IsInf(tv, 0) {
			return nil, fmt.Errorf("solubility: non-finite input: %w", ErrDomain)
		}
		out[i] = fit.at(sv, tv)
	}

	return reshape.Restore(out)
}

// SaturationO2 computes the oxygen saturation concentration [ml/l] from
// practical salinity and ITS-90 temperature [°C]. The result takes the
// shape and orientation of s.
func SaturationO2(s, t90 *ndarray.Array) (*ndarray.Array, error) {
	return eval(s, t90, fitO2)
}

// SaturationN2 computes the nitrogen saturation concentration [ml/l].
func SaturationN2(s, t90 *ndarray.Array) (*ndarray.Array, error) {
	return eval(s, t90, fitN2)
}

// SaturationAr computes the argon saturation concentration [ml/l].
func SaturationAr(s, t90 *ndarray.Array) (*ndarray.Array, error) {
	return eval(s, t90, fitAr)
}
