package earth

import (
	"math"

	"github.com/oceanum/seawater/ndarray"
)

// Physical constants, read-only for the life of the process.
const (
	// Omega is the Earth's angular rotation rate [rad/s]. The precise
	// published value; the older 7.29e-5 shorthand under-resolves f by
	// enough to matter in geostrophic shear.
	Omega = 7.292e-5

	// StandardGravity [m/s²] is used by the stability calculator when no
	// latitude is supplied.
	StandardGravity = 9.8

	// EarthRadius [m], mean radius for the free-air gravity correction.
	EarthRadius = 6371000.0

	// DegToRad converts decimal degrees to radians.
	DegToRad = math.Pi / 180.0

	// DBToPascal converts pressure from decibars to Pascals.
	DBToPascal = 1e4
)

// CoriolisAt returns f = 2·Ω·sin(lat) [rad/s] for a latitude in decimal
// degrees. The sign follows the rotation directly: positive north of the
// equator, negative south.
func CoriolisAt(lat float64) float64 {
	return 2 * Omega * math.Sin(lat*DegToRad)
}

// Coriolis evaluates the Coriolis parameter elementwise over latitudes of
// any rank, preserving shape and orientation.
func Coriolis(lat *ndarray.Array) (*ndarray.Array, error) {
	bufs, reshape, err := ndarray.Align(lat)
	if err != nil {
		return nil, err
	}
	for i, v := range bufs[0] {
		bufs[0][i] = CoriolisAt(v)
	}

	return reshape.Restore(bufs[0])
}

// GravityAt returns the acceleration due to gravity [m/s²] at a latitude
// [decimal degrees] and height above the sea surface [m, negative below],
// using the UNESCO 1983 surface polynomial with a free-air correction.
func GravityAt(lat, height float64) float64 {
	x := math.Sin(lat * DegToRad)
	x *= x
	g := 9.780318 * (1.0 + (5.2788e-3+2.36e-5*x)*x)

	return g / ((1 + height/EarthRadius) * (1 + height/EarthRadius))
}

// Gravity evaluates GravityAt elementwise; height may be a scalar, a
// matching-shape array or a per-station field against lat.
func Gravity(lat, height *ndarray.Array) (*ndarray.Array, error) {
	bufs, reshape, err := ndarray.Align(lat, height)
	if err != nil {
		return nil, err
	}
	for i := range bufs[0] {
		bufs[0][i] = GravityAt(bufs[0][i], bufs[1][i])
	}

	return reshape.Restore(bufs[0])
}

// DepthAt converts pressure [db] to depth [m] at a latitude [decimal
// degrees] with the UNESCO 1983 formula.
// Check value: 9712.653 m at 10000 db, 30°N.
func DepthAt(p, lat float64) float64 {
	const (
		c1 = 9.72659
		c2 = -2.2512e-5
		c3 = 2.279e-10
		c4 = -1.82e-15

		gamDash = 2.184e-6 // mean vertical gravity gradient [s⁻²]
	)
	x := math.Sin(lat * DegToRad)
	x *= x
	g := 9.780318 * (1.0 + (5.2788e-3+2.36e-5*x)*x)

	return ((((c4*p+c3)*p+c2)*p + c1) * p) / (g + gamDash*0.5*p)
}

// Depth converts pressures to depths elementwise; lat may be a scalar or
// a per-station field against p.
func Depth(p, lat *ndarray.Array) (*ndarray.Array, error) {
	bufs, reshape, err := ndarray.Align(p, lat)
	if err != nil {
		return nil, err
	}
	for i := range bufs[0] {
		bufs[0][i] = DepthAt(bufs[0][i], bufs[1][i])
	}

	return reshape.Restore(bufs[0])
}

// PressureAt converts depth [m] to pressure [db] at a latitude [decimal
// degrees] with Saunders' (1981) closed form.
// Check value: 7500.00 db at 7321.45 m, 30°N.
func PressureAt(depth, lat float64) float64 {
	x := math.Sin(math.Abs(lat) * DegToRad)
	c1 := 5.92e-3 + x*x*5.25e-3

	return ((1 - c1) - math.Sqrt((1-c1)*(1-c1)-8.84e-6*depth)) / 4.42e-6
}

// Pressure converts depths to pressures elementwise; lat may be a scalar
// or a per-station field against depth.
func Pressure(depth, lat *ndarray.Array) (*ndarray.Array, error) {
	bufs, reshape, err := ndarray.Align(depth, lat)
	if err != nil {
		return nil, err
	}
	for i := range bufs[0] {
		bufs[0][i] = PressureAt(bufs[0][i], bufs[1][i])
	}

	return reshape.Restore(bufs[0])
}

// SurfaceWaveSpeedAt returns the phase speed [m/s] of a surface gravity
// wave of the given wavelength [m] in water of the given depth [m].
func SurfaceWaveSpeedAt(wavelength, depth float64) float64 {
	k := 2 * math.Pi / wavelength

	return math.Sqrt(StandardGravity * math.Tanh(k*depth) / k)
}
