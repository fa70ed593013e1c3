package earth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanum/seawater/earth"
	"github.com/oceanum/seawater/ndarray"
)

// One degree of latitude is sixty nautical miles under plane sailing.
const oneDegreeM = 60 * 1852.0

// TestDistance_DueNorth checks a meridional leg: full degree length and a
// +90° bearing.
func TestDistance_DueNorth(t *testing.T) {
	dist, bearing, err := earth.Distance(ndarray.Column(0, 0), ndarray.Column(10, 11))
	require.NoError(t, err)

	assert.InDelta(t, oneDegreeM, dist.Values()[0], 1e-6, "one degree of latitude")
	assert.InDelta(t, 90, bearing.Values()[0], 1e-9, "north is +90°")
}

// TestDistance_DueEastAtEquator checks a zonal leg on the equator, where
// a degree of longitude is not foreshortened.
func TestDistance_DueEastAtEquator(t *testing.T) {
	dist, bearing, err := earth.Distance(ndarray.Column(10, 11), ndarray.Column(0, 0))
	require.NoError(t, err)

	assert.InDelta(t, oneDegreeM, dist.Values()[0], 1e-6, "one degree of longitude at the equator")
	assert.InDelta(t, 0, bearing.Values()[0], 1e-9, "east is 0°")
}

// TestDistance_Foreshortening verifies the cos(lat) departure scaling: a
// degree of longitude at 60° is half its equatorial length.
func TestDistance_Foreshortening(t *testing.T) {
	dist, _, err := earth.Distance(ndarray.Column(10, 11), ndarray.Column(60, 60))
	require.NoError(t, err)

	assert.InDelta(t, oneDegreeM/2, dist.Values()[0], 1.0, "cos(60°) = 1/2")
}

// TestDistance_DateLineWrap ensures the shorter way around the date line
// is taken.
func TestDistance_DateLineWrap(t *testing.T) {
	dist, _, err := earth.Distance(ndarray.Column(179.5, -179.5), ndarray.Column(0, 0))
	require.NoError(t, err)

	assert.InDelta(t, oneDegreeM, dist.Values()[0], 1e-6, "one degree across the date line")
}

// TestDistance_MultiLeg checks output length and orientation over a
// three-station section.
func TestDistance_MultiLeg(t *testing.T) {
	dist, bearing, err := earth.Distance(ndarray.Row(0, 0, 0), ndarray.Row(0, 1, 3))
	require.NoError(t, err)

	assert.Equal(t, 2, dist.Len(), "one leg per station pair")
	assert.False(t, dist.Shape().IsColumn(), "row orientation preserved")
	assert.InDelta(t, 2*oneDegreeM, dist.Values()[1], 1e-6, "two-degree leg")
	assert.Equal(t, 2, bearing.Len(), "bearings pair with legs")
}

// TestDistance_Errors covers shape failure modes.
func TestDistance_Errors(t *testing.T) {
	_, _, err := earth.Distance(ndarray.Column(0), ndarray.Column(0))
	assert.ErrorIs(t, err, ndarray.ErrShapeMismatch, "a single station has no legs")

	_, _, err = earth.Distance(ndarray.Scalar(0), ndarray.Scalar(0))
	assert.ErrorIs(t, err, ndarray.ErrShapeMismatch, "positions must be rank-1")

	_, _, err = earth.Distance(ndarray.Column(0, 1), ndarray.Column(0, 1, 2))
	assert.ErrorIs(t, err, ndarray.ErrShapeMismatch, "lengths must match")
}
