package earth

import (
	"fmt"
	"math"

	"github.com/oceanum/seawater/ndarray"
)

// Plane-sailing unit factors (Pond & Pickard p.303).
const (
	degToNauticalMile = 60.0
	nauticalMileToM   = 1852.0
)

// Distance computes the plane-sailing distance [m] and bearing [degrees,
// east = 0, north = +90] between successive positions along a section.
// lon and lat are rank-1 arrays of equal length n ≥ 2; both results have
// n-1 entries and keep the input orientation. Longitude differences are
// wrapped across the date line.
func Distance(lon, lat *ndarray.Array) (dist, bearing *ndarray.Array, err error) {
	if lon == nil || lat == nil || lon.Rank() != 1 || lat.Rank() != 1 {
		return nil, nil, fmt.Errorf("earth: Distance needs rank-1 positions: %w", ndarray.ErrShapeMismatch)
	}
	bufs, reshape, err := ndarray.Align(lon, lat)
	if err != nil {
		return nil, nil, err
	}
	n := len(bufs[0])
	if n < 2 {
		return nil, nil, fmt.Errorf("earth: Distance needs at least two positions: %w", ndarray.ErrShapeMismatch)
	}

	lons, lats := bufs[0], bufs[1]
	d := make([]float64, n-1)
	b := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		dlon := lons[i+1] - lons[i]
		if math.Abs(dlon) > 180 {
			// Shorter way around the date line.
			dlon = -sign(dlon) * (360 - math.Abs(dlon))
		}
		dlat := lats[i+1] - lats[i]
		// Departure: east-west degrees scaled by cos of the mean latitude.
		mid := (math.Abs(lats[i+1]) + math.Abs(lats[i])) / 2 * DegToRad
		dep := math.Cos(mid) * dlon

		d[i] = degToNauticalMile * math.Hypot(dlat, dep) * nauticalMileToM
		b[i] = math.Atan2(dlat, dep) / DegToRad
	}

	dist, err = reshape.RestoreReduced(d, 0)
	if err != nil {
		return nil, nil, err
	}
	bearing, err = reshape.RestoreReduced(b, 0)
	if err != nil {
		return nil, nil, err
	}

	return dist, bearing, nil
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}

	return 1
}
