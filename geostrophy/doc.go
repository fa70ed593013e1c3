// Package geostrophy integrates specific-volume anomaly vertically into
// geopotential anomaly and differences it horizontally into geostrophic
// velocity, after Pond & Pickard (1986, eqn 8.9A).
//
// What:
//
//   - GeopotentialAnomaly: trapezoidal integration of svan with respect
//     to pressure from the reference level down to each sample level,
//     cumulative along axis 0. The segment from the reference pressure to
//     the first sample uses the first sample's svan, so the profile is
//     anchored at the reference level rather than at the first sample.
//   - GeostrophicVelocity: differences the anomaly between horizontally
//     adjacent stations (axis 1) and divides by f times the separation,
//     giving the velocity shear relative to the reference level at each
//     station-pair mid-point. GeostrophicVelocityFromPosition derives the
//     separations from longitude/latitude with the plane-sailing formula.
//
// Conventions:
//
//   - Axis 0 is the vertical, axis 1 is the station axis; time, if
//     present, is axis 2. Velocity output drops one station, keeps all
//     levels.
//   - Units: anomaly in J/kg (m²/s²), distances in metres, velocity in
//     m/s. Pressure integration converts decibars to Pascals.
//   - Two stations with identical profiles give exactly zero velocity:
//     the difference is taken before any division, so no rounding from
//     the f·dist factor can leak in.
//
// Errors: a velocity call needs at least two stations along axis 1 and a
// latitude field of matching extent; violations surface as
// ndarray.ErrShapeMismatch. Domain violations come from the eos package.
package geostrophy
