// SPDX-License-Identifier: MIT

// Package matrix - inverse via Gauss-Jordan elimination with pivot repair.
//
// Purpose:
//   - Reduce A to the identity while applying every row operation to an identity
//     matrix in lockstep; the partner ends up holding A⁻¹.
//   - Detect singular input (no usable pivot in some column) and fail with
//     ErrSingular instead of dividing by zero.
//
// Contract:
//   - The caller's matrix is numerically unchanged after the call. Inverse works on a
//     deep copy; InverseInPlace eliminates on the caller's storage and restores it
//     from a backup before returning, on success and on failure alike.

package matrix

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Inverse returns A⁻¹ for a square, non-singular A.
// MAIN DESCRIPTION:
//   - Gauss-Jordan: for each column, repair the pivot (lockstep row swap), divide the
//     pivot row by the pivot, then clear the column in every other row with
//     row[r] -= factor * row[col], on both the working copy and the identity partner.
//
// Implementation:
//   - Stage 1: validate non-nil, square; deep-copy; reject non-finite entries.
//   - Stage 2: out := I(n) (numeric policy from options).
//   - Stage 3: for col = 0..n-1: pivotStep (ErrSingular if none), normalize, eliminate.
//   - Stage 4: reject non-finite results (overflow) with ErrNaNInf.
//
// Behavior highlights:
//   - Single-pass elimination (no scale-up / subtract / scale-down round trip).
//   - Rows whose factor is exactly 0 are skipped.
//
// Inputs:
//   - m: square matrix, any Matrix implementation.
//   - opts: WithPivotTolerance, WithPivotStrategy, WithLogger, WithValidateNaNInf.
//
// Returns:
//   - Matrix: newly allocated *Dense holding the inverse.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrSingular.
//
// Determinism:
//   - Fixed col→r loop order.
//
// Complexity:
//   - Time O(n³), Space O(n²) (working copy + result).
//
// Notes:
//   - Prefer WithPivotStrategy(PivotMaxAbs) for ill-conditioned input; the default
//     only swaps on exact (or tolerance) zeros.
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	work, err := denseCopyOf(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err = checkFinite(work); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)
	inv, err := gaussJordan(work, &o)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

// InverseInPlace computes d⁻¹ by eliminating directly on d's storage and restores
// d's original data before returning.
//
// Errors:
//   - Same as Inverse. d is restored in every case.
func InverseInPlace(d *Dense, opts ...Option) (*Dense, error) {
	if err := ValidateSquareNonNil(d); err != nil {
		return nil, matrixErrorf(opInverseInPlace, err)
	}
	if err := checkFinite(d); err != nil {
		return nil, matrixErrorf(opInverseInPlace, err)
	}
	backup := d.clone()
	defer copy(d.data, backup.data)

	o := gatherOptions(opts...)
	inv, err := gaussJordan(d, &o)
	if err != nil {
		return nil, matrixErrorf(opInverseInPlace, err)
	}

	return inv, nil
}

// gaussJordan reduces work to the identity in place and returns the lockstep partner.
func gaussJordan(work *Dense, o *Options) (*Dense, error) {
	n := work.r
	out, err := newDenseWithPolicy(n, n, o.validateNaNInf)
	if err != nil {
		return nil, err
	}
	out.toIdentity()

	rep := newPivotReport()
	var (
		col, r        int
		scale, factor float64
	)
	for col = 0; col < n; col++ {
		if !pivotStep(work, out, col, o, opInverse, &rep) {
			return nil, fmt.Errorf("column %d: %w", col, ErrSingular)
		}
		// Normalize the pivot row to a leading 1.
		scale = work.data[col*n+col]
		work.divideRow(col, scale)
		out.divideRow(col, scale)

		for r = 0; r < n; r++ {
			if r == col {
				continue
			}
			factor = work.data[r*n+col]
			if factor == 0 {
				continue
			}
			work.addScaledRow(r, col, -factor)
			out.addScaledRow(r, col, -factor)
		}
	}
	if err = checkFinite(out); err != nil {
		return nil, err
	}
	o.log.WithFields(logrus.Fields{
		logFieldOp:    opInverse,
		logFieldSize:  n,
		logFieldSwaps: len(rep.Swaps),
	}).Debug(logMsgEliminationDone)

	return out, nil
}
