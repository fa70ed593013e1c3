package salinity

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrConvergence is returned when Newton iteration exhausts its
	// iteration cap before the residual meets the tolerance.
	ErrConvergence = errors.New("salinity: iteration did not converge")

	// ErrDomain is returned for inputs outside the physically valid
	// range: negative salinity, conductivity ratio or pressure, or any
	// non-finite value.
	ErrDomain = errors.New("salinity: input outside physical domain")

	// ErrBadOptions is returned when Options carry a non-positive
	// tolerance or iteration cap.
	ErrBadOptions = errors.New("salinity: invalid options")
)

// checkOpts validates an Options value before any numeric work.
func checkOpts(opts Options) error {
	if opts.Tolerance <= 0 {
		return fmt.Errorf("salinity: tolerance %g: %w", opts.Tolerance, ErrBadOptions)
	}
	if opts.MaxIterations <= 0 {
		return fmt.Errorf("salinity: iteration cap %d: %w", opts.MaxIterations, ErrBadOptions)
	}

	return nil
}

// checkElem validates one (value, temperature, pressure) element, where
// value is either a salinity or a conductivity ratio.
func checkElem(label string, v, t, p float64) error {
	if v < 0 {
		return fmt.Errorf("salinity: %s %g: %w", label, v, ErrDomain)
	}
	if p < 0 {
		return fmt.Errorf("salinity: pressure %g: %w", p, ErrDomain)
	}
	if !finite(v) || !finite(t) || !finite(p) {
		return fmt.Errorf("salinity: non-finite input: %w", ErrDomain)
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
