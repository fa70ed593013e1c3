package stability

import (
	"fmt"

	"github.com/oceanum/seawater/earth"
	"github.com/oceanum/seawater/eos"
	"github.com/oceanum/seawater/ndarray"
)

// Result bundles the mid-point outputs of BuoyancyFrequency.
//
// Fields:
//   - N2: buoyancy frequency squared [rad²/s²], one entry per adjacent
//     level pair.
//   - MidPressure: pressure at each pair mid-point [db].
//   - MidLatitude: latitude at each mid-point; nil unless WithLatitude
//     was supplied.
//   - PotentialVorticity: planetary potential vorticity [m⁻¹·s⁻¹]; nil
//     unless WithLatitude was supplied.
type Result struct {
	N2                 *ndarray.Array
	MidPressure        *ndarray.Array
	MidLatitude        *ndarray.Array
	PotentialVorticity *ndarray.Array
}

type config struct {
	lat *ndarray.Array
}

// Option configures BuoyancyFrequency.
type Option func(*config)

// WithLatitude supplies latitudes [decimal degrees]: a scalar or a
// per-station field broadcast against the profile grid. It switches
// gravity and the pressure-to-depth conversion to the local formulas and
// enables the potential vorticity output. Absence means constant gravity
// and no vorticity; no placeholder array is ever required.
func WithLatitude(lat *ndarray.Array) Option {
	return func(c *config) { c.lat = lat }
}

// BuoyancyFrequency computes N² between vertically adjacent levels of a
// profile grid. s, t90 and p broadcast per the ndarray contract; axis 0
// of the primary input s is the vertical and must hold at least two
// levels. Outputs keep s's rank and orientation with one fewer entry
// along axis 0.
func BuoyancyFrequency(s, t90, p *ndarray.Array, opts ...Option) (*Result, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if s == nil || s.Shape().Dim(0) < 2 {
		return nil, fmt.Errorf("stability: need at least two levels along axis 0: %w", ndarray.ErrShapeMismatch)
	}

	// Broadcast everything to the primary grid once; all pairwise work
	// then runs on same-shape arrays.
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

	n := sFull.Shape().Dim(0)
	sUp, err := ndarray.SliceAxis(sFull, 0, 0, n-1)
	if err != nil {
		return nil, err
	}
	sLo, err := ndarray.SliceAxis(sFull, 0, 1, n)
	if err != nil {
		return nil, err
	}
	tUp, err := ndarray.SliceAxis(tFull, 0, 0, n-1)
	if err != nil {
		return nil, err
	}
	tLo, err := ndarray.SliceAxis(tFull, 0, 1, n)
	if err != nil {
		return nil, err
	}
	pUp, err := ndarray.SliceAxis(pFull, 0, 0, n-1)
	if err != nil {
		return nil, err
	}
	pLo, err := ndarray.SliceAxis(pFull, 0, 1, n)
	if err != nil {
		return nil, err
	}
	midP, err := ndarray.PairMean(pFull, 0)
	if err != nil {
		return nil, err
	}

	// Potential density of both samples referenced to the pair mid-point.
	pdenUp, err := eos.PotentialDensity(sUp, tUp, pUp, midP)
	if err != nil {
		return nil, err
	}
	pdenLo, err := eos.PotentialDensity(sLo, tLo, pLo, midP)
	if err != nil {
		return nil, err
	}

	// Gravity and vertical spacing: local if latitude is known, the
	// constant-g decibar approximation otherwise.
	var gMid, difZ *ndarray.Array
	var latFull *ndarray.Array
	if cfg.lat != nil {
		lbufs, lreshape, lerr := ndarray.Align(sFull, cfg.lat)
		if lerr != nil {
			return nil, lerr
		}
		if latFull, err = lreshape.Restore(lbufs[1]); err != nil {
			return nil, err
		}
		depth, derr := earth.Depth(pFull, latFull)
		if derr != nil {
			return nil, derr
		}
		height, herr := negate(depth)
		if herr != nil {
			return nil, herr
		}
		g, gerr := earth.Gravity(latFull, height)
		if gerr != nil {
			return nil, gerr
		}
		if gMid, err = ndarray.PairMean(g, 0); err != nil {
			return nil, err
		}
		if difZ, err = ndarray.Diff(depth, 0); err != nil {
			return nil, err
		}
	} else {
		if difZ, err = ndarray.Diff(pFull, 0); err != nil {
			return nil, err
		}
	}

	up := pdenUp.Values()
	lo := pdenLo.Values()
	dz := difZ.Values()
	var gv []float64
	if gMid != nil {
		gv = gMid.Values()
	}
	n2 := make([]float64, len(up))
	for i := range n2 {
		g := earth.StandardGravity
		if gv != nil {
			g = gv[i]
		}
		mid := (up[i] + lo[i]) / 2
		n2[i] = -g * (up[i] - lo[i]) / (dz[i] * mid)
	}

	out := &Result{MidPressure: midP}
	_, oreshape, err := ndarray.Align(midP)
	if err != nil {
		return nil, err
	}
	if out.N2, err = oreshape.Restore(n2); err != nil {
		return nil, err
	}

	if cfg.lat != nil {
		if out.MidLatitude, err = ndarray.PairMean(latFull, 0); err != nil {
			return nil, err
		}
		f, ferr := earth.Coriolis(out.MidLatitude)
		if ferr != nil {
			return nil, ferr
		}
		fv := f.Values()
		q := make([]float64, len(up))
		for i := range q {
			mid := (up[i] + lo[i]) / 2
			q[i] = -fv[i] * (up[i] - lo[i]) / (dz[i] * mid)
		}
		if out.PotentialVorticity, err = oreshape.Restore(q); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// negate flips the sign of every element, turning depth into height.
func negate(a *ndarray.Array) (*ndarray.Array, error) {
	bufs, reshape, err := ndarray.Align(a)
	if err != nil {
		return nil, err
	}
	for i := range bufs[0] {
		bufs[0][i] = -bufs[0][i]
	}

	return reshape.Restore(bufs[0])
}
