// Package matrix is a dense float64 matrix algebra library.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix with bounds-checked accessors, mutable row
//     views and in-place row/column primitives (scale, divide, subtract,
//     add-scaled, swap, identity).
//   - Supporting operators: Add, Sub, Scale, Mul, Transpose, Equal, AllClose.
//   - Pivot Search (RepairPivots): zero-pivot repair by row exchange with an
//     explicit permutation sign.
//   - Determinant via the Bareiss fraction-free elimination.
//   - Inverse via Gauss-Jordan elimination on an identity partner, failing with
//     ErrSingular instead of dividing by zero.
//
// All algorithms are O(n³) at most, single-threaded and synchronous. Matrices
// share no storage: kernels that need scratch space deep-copy their input, so
// a caller's matrix is never modified by Determinant or Inverse.
//
// Numeric knobs (snap epsilon, pivot tolerance, pivot strategy, NaN/Inf policy)
// and logging (logrus, Debug level) are passed per call as functional options.
package matrix
