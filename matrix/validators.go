// SPDX-License-Identifier: MIT

// Package matrix: central validators.
// Every kernel routes its preconditions through these helpers so that the
// same condition always yields the same sentinel. Validators never mutate
// their inputs and wrap sentinels with their own tag; callers add the
// operation tag on top (errors.Is still matches).
package matrix

import (
	"fmt"
	"math"
)

const zeroTol = 0.0

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// ValidateNotNil rejects a nil Matrix, including a typed-nil *Dense.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape requires identical Rows() and Cols().
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare requires Rows() == Cols().
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateBinarySameShape combines nil checks on both operands with ValidateSameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil is the precondition of Determinant and Inverse.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible requires non-nil operands with a.Cols() == b.Rows().
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRectangular checks that rows is a non-empty, non-ragged 2D slice.
// Returns the common column count on success.
//
// Errors:
//   - ErrInvalidDimensions when rows or the first row is empty.
//   - ErrDimensionMismatch when any row length differs from the first.
func ValidateRectangular(rows [][]float64) (int, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, validatorErrorf("ValidateRectangular", ErrInvalidDimensions)
	}
	cols := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return 0, validatorErrorf(fmt.Sprintf("ValidateRectangular: row %d", i), ErrDimensionMismatch)
		}
	}

	return cols, nil
}

// validateTol normalizes a comparison tolerance: NaN/Inf rejected, negatives abs-ed.
func validateTol(tol float64) (float64, error) {
	if isNonFinite(tol) {
		return 0, ErrNaNInf
	}
	if tol < zeroTol {
		tol = -tol
	}

	return tol, nil
}

// validateIndex bounds-checks a single row or column index against n.
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrIndexOutOfBounds
	}

	return nil
}
