package earth_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanum/seawater/earth"
	"github.com/oceanum/seawater/ndarray"
)

// TestCoriolisAt_SignAndMagnitude pins f at the reference latitudes: zero
// at the equator, 2Ω at the pole, antisymmetric across hemispheres.
func TestCoriolisAt_SignAndMagnitude(t *testing.T) {
	assert.InDelta(t, 0, earth.CoriolisAt(0), 1e-20, "no rotation component at the equator")
	assert.InDelta(t, 2*earth.Omega, earth.CoriolisAt(90), 1e-12, "full rotation at the pole")
	assert.InDelta(t, earth.Omega, earth.CoriolisAt(30), 1e-12, "sin(30°) = 1/2")
	assert.Equal(t, -earth.CoriolisAt(45), earth.CoriolisAt(-45), "antisymmetric in latitude")
}

// TestGravityAt_SurfaceValues pins the UNESCO surface polynomial at the
// equator and checks the poleward increase and free-air decrease.
func TestGravityAt_SurfaceValues(t *testing.T) {
	assert.InDelta(t, 9.780318, earth.GravityAt(0, 0), 1e-9, "equatorial surface gravity")
	assert.Greater(t, earth.GravityAt(90, 0), earth.GravityAt(0, 0), "gravity grows poleward")
	assert.Greater(t, earth.GravityAt(45, -5000), earth.GravityAt(45, 0), "gravity grows with depth")
}

// TestDepthAt_UnescoCheckValue pins the published conversion:
// 9712.653 m at 10000 db, 30° latitude.
func TestDepthAt_UnescoCheckValue(t *testing.T) {
	assert.InDelta(t, 9712.653, earth.DepthAt(10000, 30), 1e-2, "UNESCO check value")
	assert.InDelta(t, 0, earth.DepthAt(0, 30), 1e-12, "zero pressure is the surface")
}

// TestPressureAt_SaundersCheckValue pins the published conversion:
// 7500.00 db at 7321.45 m, 30° latitude.
func TestPressureAt_SaundersCheckValue(t *testing.T) {
	assert.InDelta(t, 7500.00, earth.PressureAt(7321.45, 30), 0.1, "Saunders check value")
}

// TestDepthPressure_RoundTrip verifies the two conversions agree to about
// a part in a thousand; they are independent fits, not exact inverses.
func TestDepthPressure_RoundTrip(t *testing.T) {
	for _, p := range []float64{10, 100, 1000, 5000, 10000} {
		d := earth.DepthAt(p, 45)
		assert.InDelta(t, p, earth.PressureAt(d, 45), p*2e-3, "depth→pressure tracks pressure→depth")
	}
}

// TestCoriolis_ArrayShape checks the elementwise wrapper preserves
// orientation.
func TestCoriolis_ArrayShape(t *testing.T) {
	f, err := earth.Coriolis(ndarray.Column(0, 90))
	require.NoError(t, err)

	assert.True(t, f.Shape().IsColumn(), "column stays a column")
	vs := f.Values()
	assert.InDelta(t, 0, vs[0], 1e-20)
	assert.InDelta(t, 2*earth.Omega, vs[1], 1e-12)
}

// TestDepth_LatitudeBroadcast checks a scalar latitude broadcasting over
// a pressure profile.
func TestDepth_LatitudeBroadcast(t *testing.T) {
	d, err := earth.Depth(ndarray.Column(0, 10000), ndarray.Scalar(30))
	require.NoError(t, err)

	vs := d.Values()
	assert.InDelta(t, 0, vs[0], 1e-12)
	assert.InDelta(t, 9712.653, vs[1], 1e-2)
}

// TestSurfaceWaveSpeedAt_Limits checks the shallow- and deep-water limits
// of the dispersion relation.
func TestSurfaceWaveSpeedAt_Limits(t *testing.T) {
	// Shallow water: c → √(g·h).
	shallow := earth.SurfaceWaveSpeedAt(10000, 10)
	assert.InDelta(t, math.Sqrt(earth.StandardGravity*10), shallow, 0.05, "long waves feel the bottom")

	// Deep water: c → √(g/k), independent of further depth.
	deep1 := earth.SurfaceWaveSpeedAt(100, 4000)
	deep2 := earth.SurfaceWaveSpeedAt(100, 8000)
	assert.InDelta(t, deep1, deep2, 1e-9, "depth-independent once deep")
}
