// Package salinity defines options for the PSS-78 solvers.
package salinity

// Options configures the Newton iterations of Salinity and
// ConductivityRatio.
//
// Fields:
//   - Tolerance: convergence criterion on the residual magnitude
//     (salinity units for the forward solve, ratio units for the
//     refinement). Must be positive.
//   - MaxIterations: hard cap on Newton steps per element; exceeding it
//     fails the whole call with ErrConvergence rather than returning a
//     stale estimate.
//
// Example:
//
//	opts := salinity.DefaultOptions()
//	s, err := salinity.Salinity(r, t, p, opts)
//	if err != nil {
//	  // handle ErrConvergence / ErrDomain / shape errors
//	}
type Options struct {
	Tolerance     float64
	MaxIterations int
}

// DefaultOptions returns the standard configuration: 1e-10 tolerance and
// a cap of 100 iterations.
func DefaultOptions() Options {
	return Options{
		Tolerance:     1e-10,
		MaxIterations: 100,
	}
}
