// SPDX-License-Identifier: MIT

// Package matrix - element-wise comparisons.
// Equal is exact (bitwise float equality, NaN != NaN); AllClose tolerates
// rounding with |a-b| <= atol + rtol*|b|.
package matrix

import "math"

// Equal reports whether a and b have the same shape and identical entries.
// Errors: ErrNilMatrix.
func Equal(a, b Matrix) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if ValidateSameShape(a, b) != nil {
		return false, nil
	}

	return allClose(a, b, 0, 0), nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes (ErrDimensionMismatch otherwise).
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances fail with ErrNaNInf.
//
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	var err error
	if rtol, err = validateTol(rtol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if atol, err = validateTol(atol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err = ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	return allClose(a, b, rtol, atol), nil
}

// allClose assumes validated, same-shape operands and non-negative tolerances.
func allClose(a, b Matrix, rtol, atol float64) bool {
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx, av := range da.data {
				if !closeTo(av, db.data[idx], rtol, atol) {
					return false // early-exit on first violation
				}
			}

			return true
		}
	}

	var av, bv float64
	r, c := a.Rows(), a.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j) // in range after shape validation
			bv, _ = b.At(i, j)
			if !closeTo(av, bv, rtol, atol) {
				return false
			}
		}
	}

	return true
}

func closeTo(a, b, rtol, atol float64) bool {
	if a == b {
		return true
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
