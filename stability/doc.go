// Package stability derives vertical water-column stability from adjacent
// sample levels: buoyancy frequency squared (N², the Brunt–Väisälä
// frequency) and, when latitude is supplied, planetary potential
// vorticity.
//
// What:
//
//   - For each pair of vertically adjacent levels the potential density
//     of both samples is referenced to the mean pressure of the pair, so
//     the finite-difference gradient is adiabatically consistent:
//     N² = −g²/ρ · Δρ/Δz evaluated at the mid-point.
//   - With latitude given, gravity and the pressure-to-depth conversion
//     use the local formulas and q = −f/ρ · Δρ/Δz is returned alongside;
//     its sign follows the Coriolis parameter directly, so it flips with
//     the hemisphere. Without latitude, gravity is the standard constant,
//     decibars stand in for metres, and the vorticity output is nil.
//
// Conventions:
//
//   - Axis 0 is the vertical; results carry one fewer level along it and
//     otherwise keep the primary input's rank and orientation.
//   - Levels are taken as given, surface first. Order is not enforced; an
//     unsorted profile produces mid-points between whatever neighbours it
//     has.
//
// Errors: fewer than two levels along axis 0 is ndarray.ErrShapeMismatch;
// domain violations surface from the eos package.
package stability
