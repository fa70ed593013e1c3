// Package ndarray normalizes heterogeneous-rank numeric inputs (scalars,
// 1-D profiles, 2-D station grids, 3-D station-time grids) into a single
// canonical representation (a flat float64 buffer plus a shape
// descriptor) and restores the caller's original shape on output.
//
// What:
//
//   - Array wraps rank-0..3 data; rank-1 arrays remember row vs column
//     orientation, so a column profile never comes back as a row.
//   - Align broadcasts secondary arguments (scalars, same-shape arrays,
//     per-station fields) against a primary array and hands back a
//     Reshaper for the result buffer.
//   - Reshaper.Restore rebuilds the primary's exact shape;
//     RestoreReduced rebuilds it with one fewer entry along an axis,
//     for quantities computed at mid-points between levels.
//   - SliceAxis, Diff, PairMean and CumSum are the shape-aware helpers the
//     vertical and horizontal finite-difference code is built from.
//
// Why:
//
//   - Every numeric component consumes the same flat buffer layout, so
//     shape branching lives here and nowhere else.
//   - Orientation preservation is the contract: past defects in this
//     domain came from silently transposing row vectors.
//
// Conventions:
//
//   - Axis 0 is always the vertical (level) axis, axis 1 the station axis,
//     axis 2 the time axis. Storage is row-major over (level, station, time).
//
// Errors:
//
//   - ErrShapeMismatch: secondary shape incompatible with the primary.
//   - ErrEmpty: an array with no elements entered a computation.
//   - ErrRagged: nested-slice constructor rows of differing lengths.
//   - ErrOutOfRange: index or axis outside the valid range.
//   - ErrNotScalar: scalar extraction from a non-scalar array.
package ndarray
