// Package tempscale converts between the two standardized temperature
// scales the reference equations are written against: IPTS-68 (the scale
// of the UNESCO 1983 polynomials) and ITS-90 (the scale of modern CTD
// data). The conversion is the fixed affine factor T68 = 1.00024 · T90.
//
// Every public entry point in this library takes ITS-90; kernels that
// implement pre-1990 reference equations convert exactly once, on entry,
// through this package. The scale is always named in the parameter
// (t90 or t68), never inferred.
package tempscale

import "github.com/oceanum/seawater/ndarray"

// Ratio is the fixed IPTS-68/ITS-90 scale factor (Saunders, 1990).
const Ratio = 1.00024

// IPTS68 converts an ITS-90 temperature [°C] to IPTS-68.
// Pure, total; exact round-trip with ITS90 to floating-point precision.
func IPTS68(t90 float64) float64 { return t90 * Ratio }

// ITS90 converts an IPTS-68 temperature [°C] to ITS-90.
func ITS90(t68 float64) float64 { return t68 / Ratio }

// IPTS68Array converts elementwise over an array of any rank.
func IPTS68Array(t90 *ndarray.Array) *ndarray.Array {
	return apply(t90, IPTS68)
}

// ITS90Array converts elementwise over an array of any rank.
func ITS90Array(t68 *ndarray.Array) *ndarray.Array {
	return apply(t68, ITS90)
}

// apply maps f elementwise, preserving shape and orientation. Conversion
// cannot change shape, so the restore step never fails; an empty array
// comes back as an untouched clone.
func apply(a *ndarray.Array, f func(float64) float64) *ndarray.Array {
	if a == nil {
		return nil
	}
	bufs, reshape, err := ndarray.Align(a)
	if err != nil {
		return a.Clone()
	}
	for i, v := range bufs[0] {
		bufs[0][i] = f(v)
	}
	out, _ := reshape.Restore(bufs[0])

	return out
}
