// SPDX-License-Identifier: MIT
// Package ndarray: the Array container.
// Array is the canonical internal representation every numeric component
// consumes: a flat row-major float64 buffer plus a Shape descriptor.
// Arrays are value data: constructors copy their input, accessors copy
// their output, and no method mutates the receiver after construction.

package ndarray

import (
	"fmt"
	"strings"
)

// Array is an immutable rank-0..3 numeric array stored as a flat
// row-major buffer over (level, station, time).
type Array struct {
	data  []float64
	shape Shape
}

// Scalar wraps a single value as a rank-0 Array.
func Scalar(v float64) *Array {
	return &Array{data: []float64{v}, shape: ScalarShape()}
}

// Column builds a rank-1 column (vertical) Array, the natural orientation
// of a single cast profile. A call with no values yields an empty Array,
// rejected by Align with ErrEmpty.
func Column(vs ...float64) *Array {
	return vector(vs, true)
}

// Row builds a rank-1 row Array.
func Row(vs ...float64) *Array {
	return vector(vs, false)
}

func vector(vs []float64, col bool) *Array {
	data := make([]float64, len(vs))
	copy(data, vs)

	return &Array{data: data, shape: VectorShape(len(vs), col)}
}

// FromRows builds a rank-2 (levels × stations) Array from nested slices,
// one inner slice per level. Rows of differing length yield ErrRagged;
// an empty outer or inner slice yields ErrEmpty.
func FromRows(rows [][]float64) (*Array, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for _, r := range rows {
		if len(r) != cols {
			return nil, ErrRagged
		}
		data = append(data, r...)
	}

	return &Array{data: data, shape: GridShape(len(rows), cols)}, nil
}

// FromCube builds a rank-3 (levels × stations × time) Array from nested
// slices indexed [level][station][step]. Ragged input yields ErrRagged.
func FromCube(cube [][][]float64) (*Array, error) {
	if len(cube) == 0 || len(cube[0]) == 0 || len(cube[0][0]) == 0 {
		return nil, ErrEmpty
	}
	stations, steps := len(cube[0]), len(cube[0][0])
	data := make([]float64, 0, len(cube)*stations*steps)
	for _, grid := range cube {
		if len(grid) != stations {
			return nil, ErrRagged
		}
		for _, r := range grid {
			if len(r) != steps {
				return nil, ErrRagged
			}
			data = append(data, r...)
		}
	}

	return &Array{data: data, shape: CubeShape(len(cube), stations, steps)}, nil
}

// Full builds an Array of the given shape with every element set to v.
func Full(shape Shape, v float64) *Array {
	data := make([]float64, shape.Size())
	for i := range data {
		data[i] = v
	}

	return &Array{data: data, shape: shape}
}

// fromBuf wraps a buffer without copying. Internal: callers must hand over
// ownership of buf.
func fromBuf(buf []float64, shape Shape) *Array {
	return &Array{data: buf, shape: shape}
}

// Shape returns the shape descriptor.
func (a *Array) Shape() Shape { return a.shape }

// Rank returns the number of axes.
func (a *Array) Rank() int { return a.shape.Rank() }

// Len returns the total number of elements.
func (a *Array) Len() int { return len(a.data) }

// Values returns a copy of the flat row-major buffer.
func (a *Array) Values() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)

	return out
}

// At returns the element at the given per-axis indices. The number of
// indices must equal the rank (zero indices for a scalar).
func (a *Array) At(idx ...int) (float64, error) {
	if len(idx) != a.shape.Rank() {
		return 0, fmt.Errorf("ndarray: At(%v) on %s: %w", idx, a.shape, ErrOutOfRange)
	}
	flat := 0
	for ax, i := range idx {
		if i < 0 || i >= a.shape.Dim(ax) {
			return 0, fmt.Errorf("ndarray: At(%v) on %s: %w", idx, a.shape, ErrOutOfRange)
		}
		flat = flat*a.shape.Dim(ax) + i
	}

	return a.data[flat], nil
}

// Float extracts the value of a rank-0 Array.
func (a *Array) Float() (float64, error) {
	if a.shape.Rank() != 0 {
		return 0, ErrNotScalar
	}

	return a.data[0], nil
}

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	return fromBuf(a.Values(), a.shape)
}

// String renders the array deterministically for diagnostics and golden
// tests: scalars as a bare number, rows as "[a, b]", columns as "[a; b]",
// grids one bracketed row per level, cubes one grid block per time step.
func (a *Array) String() string {
	switch a.shape.Rank() {
	case 0:
		return fmt.Sprintf("%g", a.data[0])
	case 1:
		sep := ", "
		if a.shape.IsColumn() {
			sep = "; "
		}

		return "[" + joinVals(a.data, sep) + "]"
	case 2:
		return a.gridString(a.data)
	default:
		var b strings.Builder
		levels, stations, steps := a.shape.Dim(0), a.shape.Dim(1), a.shape.Dim(2)
		slab := make([]float64, levels*stations)
		for k := 0; k < steps; k++ {
			fmt.Fprintf(&b, "t=%d\n", k)
			for i := 0; i < levels; i++ {
				for j := 0; j < stations; j++ {
					slab[i*stations+j] = a.data[(i*stations+j)*steps+k]
				}
			}
			b.WriteString(a.gridString(slab))
		}

		return b.String()
	}
}

// gridString renders a levels×stations slab one bracketed row per level.
func (a *Array) gridString(buf []float64) string {
	var b strings.Builder
	stations := a.shape.Dim(1)
	for i := 0; i < a.shape.Dim(0); i++ {
		b.WriteString("[" + joinVals(buf[i*stations:(i+1)*stations], ", ") + "]\n")
	}

	return b.String()
}

func joinVals(vs []float64, sep string) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%g", v)
	}

	return strings.Join(parts, sep)
}
