package ndarray_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/oceanum/seawater/ndarray"
)

// The String renderings are the stable diagnostic surface golden-value
// harnesses diff against; pin them byte-for-byte.

// TestString_Scalar pins the rank-0 rendering.
func TestString_Scalar(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "scalar", []byte(ndarray.Scalar(3.5).String()))
}

// TestString_Row pins the row rendering, comma-separated.
func TestString_Row(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "row", []byte(ndarray.Row(1, 2.5, -3).String()))
}

// TestString_Column pins the column rendering, semicolon-separated.
func TestString_Column(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "column", []byte(ndarray.Column(1, 2).String()))
}

// TestString_Grid pins the rank-2 rendering, one bracketed row per level.
func TestString_Grid(t *testing.T) {
	a, err := ndarray.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "grid", []byte(a.String()))
}

// TestString_Cube pins the rank-3 rendering, one grid block per step.
func TestString_Cube(t *testing.T) {
	a, err := ndarray.FromCube([][][]float64{
		{{1, 2}, {3, 4}},
		{{5, 6}, {7, 8}},
	})
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "cube", []byte(a.String()))
}
