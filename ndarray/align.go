// SPDX-License-Identifier: MIT
// Package ndarray: broadcasting and shape restoration.
// Align is the single normalization step the rest of the library is built
// on: it materializes every argument as a buffer of the primary's shape,
// so numeric kernels run one flat deterministic loop and never branch on
// rank. The paired Reshaper is the denormalization step.

package ndarray

import "fmt"

// Reshaper restores raw result buffers to the shape the caller handed in.
// Obtained from Align; the zero value is unusable.
type Reshaper struct {
	shape Shape
}

// Shape returns the shape the reshaper restores to.
func (r Reshaper) Shape() Shape { return r.shape }

// Restore wraps a result buffer in the primary argument's exact shape and
// orientation. The buffer must hold exactly Shape().Size() elements;
// ownership of buf transfers to the returned Array.
func (r Reshaper) Restore(buf []float64) (*Array, error) {
	if len(buf) != r.shape.Size() {
		return nil, fmt.Errorf("ndarray: restore %d values into %s: %w",
			len(buf), r.shape, ErrShapeMismatch)
	}

	return fromBuf(buf, r.shape), nil
}

// RestoreReduced wraps a result buffer in the primary's shape with one
// fewer entry along the given axis. This is the output shape of every
// mid-point quantity: N-1 values along the vertical for N levels, with
// orientation and higher dimensions untouched.
func (r Reshaper) RestoreReduced(buf []float64, axis int) (*Array, error) {
	red, err := r.shape.reduced(axis)
	if err != nil {
		return nil, fmt.Errorf("ndarray: reduce %s along axis %d: %w", r.shape, axis, err)
	}
	if len(buf) != red.Size() {
		return nil, fmt.Errorf("ndarray: restore %d values into %s: %w",
			len(buf), red, ErrShapeMismatch)
	}

	return fromBuf(buf, red), nil
}

// Align normalizes secondary arrays against the primary and returns
// elementwise-aligned buffers of the primary's shape (bufs[0] for the
// primary, bufs[i+1] for secondary[i]) plus the Reshaper for results.
//
// A secondary is compatible when its shape is one of:
//   - scalar (rank 0): repeated everywhere;
//   - the primary's dimensions (rank-1 orientation is not compared);
//   - the primary's dimensions with the level axis dropped: a
//     per-station field such as latitude, repeated down every profile;
//   - against a rank-3 primary, a station vector (length = stations),
//     repeated over levels and time.
//
// Anything else fails with ErrShapeMismatch before any numeric work.
// Complexity: O(len(secondary) · primary.Len()) time and space.
func Align(primary *Array, secondary ...*Array) ([][]float64, Reshaper, error) {
	if primary == nil || primary.Len() == 0 {
		return nil, Reshaper{}, ErrEmpty
	}
	bufs := make([][]float64, 1+len(secondary))
	bufs[0] = primary.Values()
	for i, s := range secondary {
		if s == nil || s.Len() == 0 {
			return nil, Reshaper{}, ErrEmpty
		}
		buf, err := broadcast(s, primary.shape)
		if err != nil {
			return nil, Reshaper{}, fmt.Errorf("ndarray: argument %d is %s against %s: %w",
				i+1, s.shape, primary.shape, err)
		}
		bufs[i+1] = buf
	}

	return bufs, Reshaper{shape: primary.shape}, nil
}

// broadcast materializes s as a buffer of shape dst.
func broadcast(s *Array, dst Shape) ([]float64, error) {
	// Same dimensions: verbatim copy, orientation ignored on input.
	if s.shape.sameDims(dst) {
		return s.Values(), nil
	}

	size := dst.Size()
	out := make([]float64, size)

	// Scalar: repeat everywhere.
	if s.shape.Rank() == 0 {
		for i := range out {
			out[i] = s.data[0]
		}

		return out, nil
	}

	levels := dst.Dim(0)
	inner := size / levels // station (× time) block length

	// Per-station field: primary dims with the level axis dropped.
	if perStation(s.shape, dst) {
		for i := 0; i < levels; i++ {
			copy(out[i*inner:(i+1)*inner], s.data)
		}

		return out, nil
	}

	// Station vector against a rank-3 primary: repeat over levels and time.
	if dst.Rank() == 3 && s.shape.Rank() == 1 && s.shape.Dim(0) == dst.Dim(1) {
		steps := dst.Dim(2)
		for i := 0; i < levels; i++ {
			for j := 0; j < dst.Dim(1); j++ {
				base := (i*dst.Dim(1) + j) * steps
				for k := 0; k < steps; k++ {
					out[base+k] = s.data[j]
				}
			}
		}

		return out, nil
	}

	return nil, ErrShapeMismatch
}

// perStation reports whether s matches dst with the level axis dropped:
// a rank-1 station vector against a grid, or a stations×time grid against
// a cube. Rank-1 orientation is not compared.
func perStation(s, dst Shape) bool {
	if s.Rank() != dst.Rank()-1 {
		return false
	}
	for a := 0; a < s.Rank(); a++ {
		if s.Dim(a) != dst.Dim(a+1) {
			return false
		}
	}

	return true
}
