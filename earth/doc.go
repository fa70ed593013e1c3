// Package earth holds the fixed physical constants of the rotating Earth
// and the position/geometry conversions built on them.
//
// What:
//
//   - Named immutable constants: the Coriolis rotation rate Omega (the
//     precise published 7.292e-5 rad/s), StandardGravity, EarthRadius and
//     the decibar→Pascal factor.
//   - Coriolis parameter f = 2·Ω·sin(lat): the single source of the
//     rotation sign convention used by stability and geostrophy.
//   - Gravity as a function of latitude and height (UNESCO surface
//     polynomial with free-air correction).
//   - Depth ↔ pressure conversions (UNESCO 1983; Saunders 1981).
//   - Plane-sailing distance and bearing between successive stations.
//
// Why:
//
//   - Every consumer of rotation or gravity reads the same read-only
//     values, initialized at compile time; nothing here mutates, so
//     concurrent use needs no coordination.
//
// Errors:
//
//   - Shape errors surface as ndarray.ErrShapeMismatch; Distance requires
//     rank-1 positions with at least two stations.
package earth
