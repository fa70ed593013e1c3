// Package eos evaluates the International Equation of State of Seawater
// 1980 (EOS-80) and the companion UNESCO 1983 polynomials: density and its
// building blocks, specific volume anomaly, potential temperature and the
// adiabatic lapse rate, thermal expansion / saline contraction
// coefficients, heat capacity, sound speed and the freezing point.
//
// What:
//
//   - Direct polynomial/rational evaluation in (S, T, P); no iteration.
//   - Every entry point takes ITS-90 temperature and converts to IPTS-68
//     exactly once, at the kernel boundary, because the reference
//     polynomials are defined on the older scale. Kernel parameters are
//     named t68 where that scale applies.
//   - All functions accept arrays of rank 0–3 and return the same shape
//     and orientation, per the ndarray broadcasting contract.
//
// Why:
//
//   - These are the canonical reference equations CTD pipelines reduce
//     against; determinism and exact reproduction of the published check
//     values is the whole contract.
//
// Conventions:
//
//   - Salinity in PSS-78 practical salinity units, pressure in decibars
//     (kernels convert to bars where the UNESCO formulas demand it),
//     density in kg/m³.
//   - The tIsPotential switch of the expansion-coefficient functions is
//     resolved in a single shared normalization step used by every code
//     path; no branch may interpret the flag on its own.
//
// Errors:
//
//   - ErrDomain: negative salinity, negative pressure or non-finite input,
//     raised eagerly for the whole call rather than letting NaN propagate
//     into downstream integration.
//   - Shape errors surface as ndarray.ErrShapeMismatch.
package eos
