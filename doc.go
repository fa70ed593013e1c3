// Package seawater computes physical properties of seawater from in-situ
// CTD measurements, following the UNESCO 1983 / EOS-80 reference equations
// on the ITS-90 temperature scale.
//
// 🌊 What is seawater?
//
//	A pure-Go, dependency-free library that brings together:
//		• Equation of state: density, specific volume anomaly, potential
//		  temperature, adiabatic lapse rate, expansion/contraction ratios
//		• Practical salinity: PSS-78 forward and Newton-inverted
//		  conductivity ratio
//		• Water-column diagnostics: buoyancy frequency N², potential
//		  vorticity, geopotential anomaly, geostrophic velocity
//		• Gas solubility: O₂, N₂ and Ar saturation (Weiss 1970)
//
// ✨ Why choose seawater?
//
//   - Shape faithful – scalars, row/column profiles, 2-D station grids and
//     3-D station-time grids all come back in the orientation you gave
//   - Scale explicit – every entry point takes ITS-90; IPTS-68 conversion
//     happens exactly once, at the kernel boundary
//   - Deterministic – pure functions over immutable inputs, safe for
//     concurrent batches with no coordination
//
// Everything is organized under eight subpackages:
//
//	ndarray/    - rank-0..3 arrays, broadcasting & orientation-preserving restore
//	tempscale/  - ITS-90 ↔ IPTS-68 affine conversion
//	earth/      - gravity, Coriolis, depth/pressure, plane-sailing distance
//	eos/        - EOS-80 polynomial core (density, θ, Γ, α, β, cp, c, fp)
//	salinity/   - PSS-78 salinity and the iterative conductivity inversion
//	stability/  - N² and potential vorticity at level mid-points
//	geostrophy/ - geopotential anomaly and geostrophic shear
//	solubility/ - dissolved O₂/N₂/Ar saturation
//
// Typical flow: normalize shapes via ndarray, standardize temperature via
// tempscale, derive density/salinity in eos and salinity, then feed ordered
// profiles to stability and geostrophy.
//
//	go get github.com/oceanum/seawater
package seawater
