package stability_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanum/seawater/earth"
	"github.com/oceanum/seawater/eos"
	"github.com/oceanum/seawater/ndarray"
	"github.com/oceanum/seawater/stability"
)

// A stably stratified two-level cast: warm over cold at constant
// salinity.
var (
	stableS = ndarray.Column(35, 35)
	stableT = ndarray.Column(20, 10)
	stableP = ndarray.Column(0, 1000)
)

// TestBuoyancyFrequency_StableProfile verifies N² > 0 for density
// increasing with pressure and the mid-point output shape.
func TestBuoyancyFrequency_StableProfile(t *testing.T) {
	res, err := stability.BuoyancyFrequency(stableS, stableT, stableP)
	require.NoError(t, err)

	assert.Equal(t, 1, res.N2.Len(), "one mid-point for two levels")
	assert.True(t, res.N2.Shape().IsColumn(), "column input, column output")
	assert.Greater(t, res.N2.Values()[0], 0.0, "stable stratification has N² > 0")

	assert.Equal(t, []float64{500}, res.MidPressure.Values(), "mid-point pressure")
	assert.Nil(t, res.MidLatitude, "no latitude, no mid-latitude output")
	assert.Nil(t, res.PotentialVorticity, "no latitude, no vorticity output")
}

// TestBuoyancyFrequency_UnstableProfile verifies the sign flips when
// dense water overlies light water.
func TestBuoyancyFrequency_UnstableProfile(t *testing.T) {
	res, err := stability.BuoyancyFrequency(
		ndarray.Column(35, 35), ndarray.Column(5, 25), ndarray.Column(0, 1000))
	require.NoError(t, err)

	assert.Less(t, res.N2.Values()[0], 0.0, "inverted stratification has N² < 0")
}

// TestBuoyancyFrequency_TypicalMagnitude sanity-checks N against the
// ocean's interior range (N of order 1e-3..1e-2 rad/s for this gradient).
func TestBuoyancyFrequency_TypicalMagnitude(t *testing.T) {
	res, err := stability.BuoyancyFrequency(stableS, stableT, stableP)
	require.NoError(t, err)

	n := math.Sqrt(res.N2.Values()[0])
	assert.Greater(t, n, 1e-3, "stratification should be resolvable")
	assert.Less(t, n, 1e-2, "stratification should be oceanic, not step-like")
}

// TestBuoyancyFrequency_MatchesReferenceFormula pins N² against
// N² = −g·Δρθ/(Δz·ρ̄) computed by hand from the same potential-density,
// depth and gravity chain, for both the constant-g and the local-gravity
// branches.
func TestBuoyancyFrequency_MatchesReferenceFormula(t *testing.T) {
	midP := ndarray.Scalar(500)
	upArr, upErr := eos.PotentialDensity(
		ndarray.Scalar(35), ndarray.Scalar(20), ndarray.Scalar(0), midP)
	up := scalarOf(t, upArr, upErr)
	loArr, loErr := eos.PotentialDensity(
		ndarray.Scalar(35), ndarray.Scalar(10), ndarray.Scalar(1000), midP)
	lo := scalarOf(t, loArr, loErr)
	mid := (up + lo) / 2

	plain, err := stability.BuoyancyFrequency(stableS, stableT, stableP)
	require.NoError(t, err)
	want := -earth.StandardGravity * (up - lo) / (1000 * mid)
	assert.InEpsilon(t, want, plain.N2.Values()[0], 1e-12, "constant-g branch")

	const lat = 30.0
	zUp := earth.DepthAt(0, lat)
	zLo := earth.DepthAt(1000, lat)
	gMid := (earth.GravityAt(lat, -zUp) + earth.GravityAt(lat, -zLo)) / 2
	local, err := stability.BuoyancyFrequency(stableS, stableT, stableP,
		stability.WithLatitude(ndarray.Scalar(lat)))
	require.NoError(t, err)
	want = -gMid * (up - lo) / ((zLo - zUp) * mid)
	assert.InEpsilon(t, want, local.N2.Values()[0], 1e-12, "local-gravity branch")
}

func scalarOf(t *testing.T, a *ndarray.Array, err error) float64 {
	t.Helper()
	require.NoError(t, err)
	v, err := a.Float()
	require.NoError(t, err)

	return v
}

// TestBuoyancyFrequency_VorticitySignFlips verifies the potential
// vorticity convention: flipping the hemisphere flips the sign and
// keeps the magnitude.
func TestBuoyancyFrequency_VorticitySignFlips(t *testing.T) {
	north, err := stability.BuoyancyFrequency(stableS, stableT, stableP,
		stability.WithLatitude(ndarray.Scalar(30)))
	require.NoError(t, err)
	south, err := stability.BuoyancyFrequency(stableS, stableT, stableP,
		stability.WithLatitude(ndarray.Scalar(-30)))
	require.NoError(t, err)

	qn := north.PotentialVorticity.Values()[0]
	qs := south.PotentialVorticity.Values()[0]
	assert.Greater(t, qn, 0.0, "stable northern column has positive q")
	assert.InDelta(t, qn, -qs, math.Abs(qn)*1e-12, "sign flips, magnitude holds")

	assert.Equal(t, []float64{30}, north.MidLatitude.Values(), "mid latitude reported")
}

// TestBuoyancyFrequency_LatitudeChangesGravityOnly verifies N² with and
// without latitude agree to the percent level: the same water column,
// slightly different g and z.
func TestBuoyancyFrequency_LatitudeChangesGravityOnly(t *testing.T) {
	plain, err := stability.BuoyancyFrequency(stableS, stableT, stableP)
	require.NoError(t, err)
	local, err := stability.BuoyancyFrequency(stableS, stableT, stableP,
		stability.WithLatitude(ndarray.Scalar(45)))
	require.NoError(t, err)

	a := plain.N2.Values()[0]
	b := local.N2.Values()[0]
	assert.InDelta(t, a, b, math.Abs(a)*0.02, "the two gravity models agree closely")
}

// TestBuoyancyFrequency_GridBroadcast verifies a two-station grid with a
// per-station latitude vector.
func TestBuoyancyFrequency_GridBroadcast(t *testing.T) {
	s, err := ndarray.FromRows([][]float64{{35, 34}, {35, 34}, {35, 34}})
	require.NoError(t, err)
	tt, err := ndarray.FromRows([][]float64{{20, 18}, {15, 14}, {10, 10}})
	require.NoError(t, err)
	p, err := ndarray.FromRows([][]float64{{0, 0}, {500, 500}, {1000, 1000}})
	require.NoError(t, err)

	res, err := stability.BuoyancyFrequency(s, tt, p,
		stability.WithLatitude(ndarray.Row(30, -30)))
	require.NoError(t, err)

	assert.Equal(t, []int{2, 2}, res.N2.Shape().Dims(), "mid-points × stations")
	for _, v := range res.N2.Values() {
		assert.Greater(t, v, 0.0, "both columns are stable")
	}
	q := res.PotentialVorticity.Values()
	assert.Greater(t, q[0], 0.0, "northern station")
	assert.Less(t, q[1], 0.0, "southern station")
}

// TestBuoyancyFrequency_NeedsTwoLevels ensures the shape guard fires.
func TestBuoyancyFrequency_NeedsTwoLevels(t *testing.T) {
	_, err := stability.BuoyancyFrequency(
		ndarray.Column(35), ndarray.Column(10), ndarray.Column(100))
	assert.ErrorIs(t, err, ndarray.ErrShapeMismatch, "one level has no pairs")

	_, err = stability.BuoyancyFrequency(nil, nil, nil)
	assert.ErrorIs(t, err, ndarray.ErrShapeMismatch, "nil primary must error")
}
