// SPDX-License-Identifier: MIT
// Package ndarray: shape-aware structural helpers.
// SliceAxis, Diff, PairMean and CumSum are the building blocks of the
// vertical finite-difference and integration code. All loops run in fixed
// row-major order; missing trailing axes are treated as extent 1, so one
// triple loop serves every rank.

package ndarray

import "fmt"

// SliceAxis returns the half-open window [lo, hi) of a along the given
// axis, preserving rank and orientation. Complexity: O(result size).
func SliceAxis(a *Array, axis, lo, hi int) (*Array, error) {
	if a == nil || a.Len() == 0 {
		return nil, ErrEmpty
	}
	if axis < 0 || axis >= a.shape.Rank() {
		return nil, fmt.Errorf("ndarray: slice axis %d of %s: %w", axis, a.shape, ErrOutOfRange)
	}
	if lo < 0 || hi > a.shape.Dim(axis) || lo >= hi {
		return nil, fmt.Errorf("ndarray: slice [%d,%d) of %s: %w", lo, hi, a.shape, ErrOutOfRange)
	}

	dims := a.shape.Dims()
	dims[axis] = hi - lo
	out := Shape{dims: dims, col: a.shape.col}

	d1, d2 := a.shape.Dim(1), a.shape.Dim(2)
	n0, n1, n2 := out.Dim(0), out.Dim(1), out.Dim(2)
	var off [3]int
	off[axis] = lo

	buf := make([]float64, out.Size())
	idx := 0
	for i := 0; i < n0; i++ {
		for j := 0; j < n1; j++ {
			for k := 0; k < n2; k++ {
				buf[idx] = a.data[((i+off[0])*d1+(j+off[1]))*d2+(k+off[2])]
				idx++
			}
		}
	}

	return fromBuf(buf, out), nil
}

// Diff returns adjacent differences a[i+1]-a[i] along the given axis,
// which must hold at least two entries. The result has one fewer entry
// along that axis and the same rank and orientation.
func Diff(a *Array, axis int) (*Array, error) {
	return pairwise(a, axis, func(lo, hi float64) float64 { return hi - lo })
}

// PairMean returns adjacent means (a[i]+a[i+1])/2 along the given axis:
// the mid-point values paired with Diff.
func PairMean(a *Array, axis int) (*Array, error) {
	return pairwise(a, axis, func(lo, hi float64) float64 { return (lo + hi) / 2 })
}

// pairwise applies f to each adjacent pair along axis.
func pairwise(a *Array, axis int, f func(lo, hi float64) float64) (*Array, error) {
	n := 0
	if a != nil {
		n = a.shape.Dim(axis)
	}
	upper, err := SliceAxis(a, axis, 0, n-1)
	if err != nil {
		return nil, err
	}
	lower, err := SliceAxis(a, axis, 1, n)
	if err != nil {
		return nil, err
	}
	buf := make([]float64, len(upper.data))
	for i := range buf {
		buf[i] = f(upper.data[i], lower.data[i])
	}

	return fromBuf(buf, upper.shape), nil
}

// CumSum returns the running sum along the given axis, same shape as a.
// Used by the geopotential integrator to accumulate trapezoid segments
// from the surface downward.
func CumSum(a *Array, axis int) (*Array, error) {
	if a == nil || a.Len() == 0 {
		return nil, ErrEmpty
	}
	if axis < 0 || axis >= a.shape.Rank() {
		return nil, fmt.Errorf("ndarray: cumsum axis %d of %s: %w", axis, a.shape, ErrOutOfRange)
	}

	d0, d1, d2 := a.shape.Dim(0), a.shape.Dim(1), a.shape.Dim(2)
	stride := [3]int{d1 * d2, d2, 1}[axis]
	n := a.shape.Dim(axis)

	buf := a.Values()
	for i := 0; i < d0; i++ {
		for j := 0; j < d1; j++ {
			for k := 0; k < d2; k++ {
				// Accumulate only from the start of each run along axis.
				if [3]int{i, j, k}[axis] != 0 {
					continue
				}
				base := (i*d1+j)*d2 + k
				for step := 1; step < n; step++ {
					buf[base+step*stride] += buf[base+(step-1)*stride]
				}
			}
		}
	}

	return fromBuf(buf, a.shape), nil
}
