// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"
	"strings"
)

// Shape describes the rank, dimensions and rank-1 orientation of an Array.
// The zero value is the scalar shape. Shape values are immutable; Dims
// returns a copy of the dimension slice.
type Shape struct {
	dims []int // len == rank, each entry >= 1
	col  bool  // rank-1 only: column (vertical) orientation
}

// ScalarShape returns the rank-0 shape.
func ScalarShape() Shape { return Shape{} }

// VectorShape returns a rank-1 shape of n elements; col selects column
// (vertical) orientation.
func VectorShape(n int, col bool) Shape {
	return Shape{dims: []int{n}, col: col}
}

// GridShape returns a rank-2 (levels × stations) shape.
func GridShape(levels, stations int) Shape {
	return Shape{dims: []int{levels, stations}}
}

// CubeShape returns a rank-3 (levels × stations × time) shape.
func CubeShape(levels, stations, steps int) Shape {
	return Shape{dims: []int{levels, stations, steps}}
}

// Rank returns the number of axes (0 for a scalar).
func (s Shape) Rank() int { return len(s.dims) }

// Size returns the total number of elements (1 for a scalar).
func (s Shape) Size() int {
	n := 1
	for _, d := range s.dims {
		n *= d
	}

	return n
}

// Dim returns the extent along axis a, or 1 when a >= Rank.
// Treating missing trailing axes as extent 1 keeps the row-major index
// arithmetic uniform across ranks.
func (s Shape) Dim(a int) int {
	if a < 0 || a >= len(s.dims) {
		return 1
	}

	return s.dims[a]
}

// Dims returns a copy of the dimension slice (empty for a scalar).
func (s Shape) Dims() []int {
	out := make([]int, len(s.dims))
	copy(out, s.dims)

	return out
}

// IsColumn reports whether a rank-1 shape has column orientation.
// Always false for other ranks.
func (s Shape) IsColumn() bool { return len(s.dims) == 1 && s.col }

// sameDims reports dimension equality, ignoring rank-1 orientation.
func (s Shape) sameDims(o Shape) bool {
	if len(s.dims) != len(o.dims) {
		return false
	}
	for i := range s.dims {
		if s.dims[i] != o.dims[i] {
			return false
		}
	}

	return true
}

// Equal reports full shape equality, including rank-1 orientation.
func (s Shape) Equal(o Shape) bool {
	return s.sameDims(o) && s.IsColumn() == o.IsColumn()
}

// reduced returns the shape with one fewer entry along axis a.
// The axis must exist and must hold at least two entries, otherwise the
// reduction has no mid-points to carry.
func (s Shape) reduced(a int) (Shape, error) {
	if a < 0 || a >= len(s.dims) {
		return Shape{}, ErrOutOfRange
	}
	if s.dims[a] < 2 {
		return Shape{}, ErrShapeMismatch
	}
	dims := s.Dims()
	dims[a]--

	return Shape{dims: dims, col: s.col}, nil
}

// String renders the shape for diagnostics: "scalar", "row[4]", "col[4]",
// "[4x3]" or "[4x3x2]".
func (s Shape) String() string {
	switch len(s.dims) {
	case 0:
		return "scalar"
	case 1:
		if s.col {
			return fmt.Sprintf("col[%d]", s.dims[0])
		}

		return fmt.Sprintf("row[%d]", s.dims[0])
	default:
		parts := make([]string, len(s.dims))
		for i, d := range s.dims {
			parts[i] = fmt.Sprintf("%d", d)
		}

		return "[" + strings.Join(parts, "x") + "]"
	}
}
