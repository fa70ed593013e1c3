package geostrophy

import (
	"fmt"
	"math"

	"github.com/oceanum/seawater/earth"
	"github.com/oceanum/seawater/eos"
	"github.com/oceanum/seawater/ndarray"
)

type config struct {
	pref float64
}

// Option configures GeopotentialAnomaly.
type Option func(*config)

// WithReferencePressure sets the reference level [db] the anomaly is
// integrated from. The default is 0, the sea surface.
func WithReferencePressure(pref float64) Option {
	return func(c *config) { c.pref = pref }
}

// GeopotentialAnomaly integrates specific-volume anomaly with respect to
// pressure from the reference level to each sample level, trapezoidally
// between adjacent levels along axis 0. The result has the shape and
// orientation of s: a cumulative anomaly profile [J/kg] per station.
func GeopotentialAnomaly(s, t90, p *ndarray.Array, opts ...Option) (*ndarray.Array, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.pref < 0 || math.IsNaN(cfg.pref) || math.IsInf(cfg.pref, 0) {
		return nil, fmt.Errorf("geostrophy: reference pressure %g: %w", cfg.pref, eos.ErrDomain)
	}

	bufs, reshape, err := ndarray.Align(s, t90, p)
	if err != nil {
		return nil, err
	}
	sFull, err := reshape.Restore(bufs[0])
	if err != nil {
		return nil, err
	}
	tFull, err := reshape.Restore(bufs[1])
	if err != nil {
		return nil, err
	}
	pFull, err := reshape.Restore(bufs[2])
	if err != nil {
		return nil, err
	}

	svn, err := eos.SpecificVolumeAnomaly(sFull, tFull, pFull)
	if err != nil {
		return nil, err
	}

	d0 := sFull.Shape().Dim(0)
	d1 := sFull.Shape().Dim(1)
	d2 := sFull.Shape().Dim(2)

	sv := svn.Values()
	pv := pFull.Values()
	seg := make([]float64, d0*d1*d2)

	// Segment 0 spans reference level → first sample with the first
	// sample's svan; deeper segments are trapezoids between neighbours.
	for j := 0; j < d1; j++ {
		for k := 0; k < d2; k++ {
			top := (j)*d2 + k
			seg[top] = sv[top] * (pv[top] - cfg.pref) * earth.DBToPascal
			for i := 1; i < d0; i++ {
				at := (i*d1+j)*d2 + k
				prev := ((i-1)*d1+j)*d2 + k
				seg[at] = 0.5 * (sv[at] + sv[prev]) * (pv[at] - pv[prev]) * earth.DBToPascal
			}
		}
	}

	ga, err := reshape.Restore(seg)
	if err != nil {
		return nil, err
	}

	return ndarray.CumSum(ga, 0)
}

// GeostrophicVelocity differences geopotential anomaly between adjacent
// stations along axis 1 and divides by f·L, yielding velocity [m/s]
// relative to the anomaly's reference level at each station-pair
// mid-point. dist holds the pair separations [m] (one fewer than the
// station count); lat holds either per-station latitudes, pair-averaged
// internally, or per-pair mid-latitudes directly.
func GeostrophicVelocity(ga, dist, lat *ndarray.Array) (*ndarray.Array, error) {
	if ga == nil || ga.Rank() < 2 {
		return nil, fmt.Errorf("geostrophy: velocity needs a stations axis: %w", ndarray.ErrShapeMismatch)
	}
	n := ga.Shape().Dim(1)
	if n < 2 {
		return nil, fmt.Errorf("geostrophy: velocity needs at least two stations: %w", ndarray.ErrShapeMismatch)
	}
	if dist == nil || dist.Len() != n-1 {
		return nil, fmt.Errorf("geostrophy: need %d station separations: %w", n-1, ndarray.ErrShapeMismatch)
	}

	midLat, err := pairLatitudes(lat, n)
	if err != nil {
		return nil, err
	}
	f, err := earth.Coriolis(midLat)
	if err != nil {
		return nil, err
	}

	// lf = f·L per station pair.
	lbufs, lreshape, err := ndarray.Align(f, dist)
	if err != nil {
		return nil, err
	}
	for i := range lbufs[0] {
		lbufs[0][i] *= lbufs[1][i]
	}
	lf, err := lreshape.Restore(lbufs[0])
	if err != nil {
		return nil, err
	}

	dga, err := ndarray.Diff(ga, 1)
	if err != nil {
		return nil, err
	}

	// Broadcast the per-pair divisor across levels (and time, if any).
	vbufs, vreshape, err := ndarray.Align(dga, lf)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(vbufs[0]))
	for i := range out {
		out[i] = -vbufs[0][i] / vbufs[1][i]
	}

	return vreshape.Restore(out)
}

// GeostrophicVelocityFromPosition derives the station separations from
// decimal-degree positions with the plane-sailing formula, then applies
// GeostrophicVelocity. lon and lat are rank-1 with one entry per station.
func GeostrophicVelocityFromPosition(ga, lon, lat *ndarray.Array) (*ndarray.Array, error) {
	dist, _, err := earth.Distance(lon, lat)
	if err != nil {
		return nil, err
	}

	return GeostrophicVelocity(ga, dist, lat)
}

// pairLatitudes normalizes lat to one mid-latitude per station pair.
func pairLatitudes(lat *ndarray.Array, stations int) (*ndarray.Array, error) {
	switch {
	case lat == nil:
		return nil, fmt.Errorf("geostrophy: latitude is required: %w", ndarray.ErrShapeMismatch)
	case lat.Len() == stations:
		return ndarray.PairMean(lat, 0)
	case lat.Len() == stations-1:
		return lat, nil
	}

	return nil, fmt.Errorf("geostrophy: %d latitudes for %d stations: %w", lat.Len(), stations, ndarray.ErrShapeMismatch)
}
