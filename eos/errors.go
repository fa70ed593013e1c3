package eos

import (
	"errors"
	"fmt"
	"math"
)

// ErrDomain is returned when an input lies outside the physically valid
// range of the reference polynomials (negative salinity or pressure, or a
// non-finite value). Raised eagerly: the whole call fails before any
// result is produced.
var ErrDomain = errors.New("eos: input outside physical domain")

// checkSTP validates one (salinity, temperature, pressure) element.
func checkSTP(s, t, p float64) error {
	if s < 0 {
		return fmt.Errorf("eos: salinity %g: %w", s, ErrDomain)
	}
	if p < 0 {
		return fmt.Errorf("eos: pressure %g: %w", p, ErrDomain)
	}
	if !finite(s) || !finite(t) || !finite(p) {
		return fmt.Errorf("eos: non-finite input: %w", ErrDomain)
	}

	return nil
}

// errPref flags an invalid reference pressure.
func errPref(pref float64) error {
	return fmt.Errorf("eos: reference pressure %g: %w", pref, ErrDomain)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
