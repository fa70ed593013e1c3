package eos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanum/seawater/eos"
	"github.com/oceanum/seawater/ndarray"
	"github.com/oceanum/seawater/tempscale"
)

// TestHeatCapacity_UnescoCheckValue pins Cp = 3849.500 J/(kg·°C) at
// S=40, T68=40, P=10000 db.
func TestHeatCapacity_UnescoCheckValue(t *testing.T) {
	got, err := eos.HeatCapacity(
		ndarray.Scalar(40), ndarray.Scalar(tempscale.ITS90(40)), ndarray.Scalar(10000))
	require.NoError(t, err)

	v, err := got.Float()
	require.NoError(t, err)
	assert.InDelta(t, 3849.500, v, 1e-2, "UNESCO check value")
}

// TestHeatCapacity_FreshWaterMagnitude sanity-checks the classic
// ~4186 J/(kg·°C) of fresh water at 15 °C.
func TestHeatCapacity_FreshWaterMagnitude(t *testing.T) {
	got, err := eos.HeatCapacity(ndarray.Scalar(0), ndarray.Scalar(15), ndarray.Scalar(0))
	require.NoError(t, err)

	v, err := got.Float()
	require.NoError(t, err)
	assert.InDelta(t, 4186, v, 5, "fresh water heat capacity")
}

// TestSoundSpeed_UnescoCheckValue pins c = 1731.995 m/s at S=40,
// T68=40, P=10000 db.
func TestSoundSpeed_UnescoCheckValue(t *testing.T) {
	got, err := eos.SoundSpeed(
		ndarray.Scalar(40), ndarray.Scalar(tempscale.ITS90(40)), ndarray.Scalar(10000))
	require.NoError(t, err)

	v, err := got.Float()
	require.NoError(t, err)
	assert.InDelta(t, 1731.995, v, 1e-2, "UNESCO check value")
}

// TestSoundSpeed_SurfaceMagnitude checks the familiar ~1500 m/s of the
// upper ocean and the increase with pressure.
func TestSoundSpeed_SurfaceMagnitude(t *testing.T) {
	surface, err := eos.SoundSpeed(ndarray.Scalar(35), ndarray.Scalar(10), ndarray.Scalar(0))
	require.NoError(t, err)
	deep, err := eos.SoundSpeed(ndarray.Scalar(35), ndarray.Scalar(10), ndarray.Scalar(5000))
	require.NoError(t, err)

	sv, _ := surface.Float()
	dv, _ := deep.Float()
	assert.InDelta(t, 1490, sv, 10, "upper-ocean sound speed")
	assert.Greater(t, dv, sv, "sound speed grows with pressure")
}

// TestFreezingPoint_UnescoCheckValue pins T68 = -2.588567 °C at S=40,
// P=500 db.
func TestFreezingPoint_UnescoCheckValue(t *testing.T) {
	got, err := eos.FreezingPoint(ndarray.Scalar(40), ndarray.Scalar(500))
	require.NoError(t, err)

	v, err := got.Float()
	require.NoError(t, err)
	assert.InDelta(t, -2.588567, tempscale.IPTS68(v), 1e-5, "UNESCO check value")
}

// TestFreezingPoint_Depression verifies salt and pressure both depress
// the freezing point.
func TestFreezingPoint_Depression(t *testing.T) {
	at := func(s, p float64) float64 {
		a, err := eos.FreezingPoint(ndarray.Scalar(s), ndarray.Scalar(p))
		require.NoError(t, err)
		v, err := a.Float()
		require.NoError(t, err)

		return v
	}

	assert.Less(t, at(35, 0), at(20, 0), "saltier water freezes colder")
	assert.Less(t, at(35, 1000), at(35, 0), "pressure depresses the freezing point")
	assert.InDelta(t, -1.9, at(35, 0), 0.05, "standard seawater freezes near -1.9 °C")
}

// TestExtras_DomainErrors spot-checks the shared validation.
func TestExtras_DomainErrors(t *testing.T) {
	_, err := eos.SoundSpeed(ndarray.Scalar(35), ndarray.Scalar(10), ndarray.Scalar(-1))
	assert.ErrorIs(t, err, eos.ErrDomain, "negative pressure must error")

	_, err = eos.FreezingPoint(ndarray.Scalar(-1), ndarray.Scalar(0))
	assert.ErrorIs(t, err, eos.ErrDomain, "negative salinity must error")
}
