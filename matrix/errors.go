// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Kernels wrap with fmt.Errorf("<Op>: %w", ErrX); callers match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> square -> NaN/Inf -> singular.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row) and row primitives MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	// Also returned for ragged input rows in NewFromRows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// by the numeric policy (Set, NewFromRows, inverse results).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned by Inverse when no usable pivot exists in some column.
	// Determinant never returns it: a singular matrix has determinant 0.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrZeroDivisor is returned by DivideRow when the divisor is exactly zero.
	ErrZeroDivisor = errors.New("matrix: division by zero")
)

// ErrShapeMismatch names the same condition as ErrDimensionMismatch.
// errors.Is(err, ErrShapeMismatch) is true wherever ErrDimensionMismatch is returned.
var ErrShapeMismatch = ErrDimensionMismatch
