// Package solubility evaluates the equilibrium saturation concentration
// of dissolved atmospheric gases in seawater from the Weiss (1970) fits,
//
//	ln C = a1 + a2(100/T) + a3 ln(T/100) + a4(T/100) + S(b1 + b2(T/100) + b3(T/100)²)
//
// with T the absolute IPTS-68 temperature. One coefficient set per gas
// (O₂, N₂, Ar); concentrations are ml/l from moist air at one atmosphere
// total pressure. Closed-form, no iteration, no pressure dependence.
//
// Inputs broadcast per the ndarray contract; temperatures are ITS-90 at
// the API and converted internally. Shape errors surface as
// ndarray.ErrShapeMismatch; non-finite or negative-salinity inputs fail
// with ErrDomain.
package solubility
