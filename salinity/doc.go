// Package salinity implements the Practical Salinity Scale 1978 (PSS-78):
// practical salinity from conductivity ratio and the iterative inverse,
// conductivity ratio from practical salinity.
//
// What:
//
//   - Salinity(R, T90, P): practical salinity from the in-situ
//     conductivity ratio R = C(S,T,P)/C(35,15,0). The PSS-78 estimate is
//     closed-form; a Newton refinement against the forward ratio then
//     drives the residual below the configured tolerance so the
//     round-trip with ConductivityRatio closes to 1e-10.
//   - ConductivityRatio(S, T90, P): the forward problem. PSS-78 defines
//     S(Rt), so Rt is recovered by Newton iteration on √Rt with the
//     analytic dS/d√Rt, then the pressure and temperature corrections are
//     folded back in closed form (the quadratic of UNESCO eqns 3, 4).
//   - Both operate elementwise over rank 0–3 arrays; each element
//     converges independently under a shared iteration cap.
//
// Conventions:
//
//   - Temperatures are ITS-90 at the API; kernels convert to IPTS-68
//     once, since PSS-78 is defined on the older scale.
//   - Pressure in decibars, salinity in practical salinity units.
//
// Errors:
//
//   - ErrConvergence: the iteration cap was reached before the residual
//     met the tolerance. Surfaced for the whole call; a stale estimate is
//     never returned.
//   - ErrDomain: negative salinity, conductivity ratio or pressure, or a
//     non-finite input.
//   - Shape errors surface as ndarray.ErrShapeMismatch.
package salinity
