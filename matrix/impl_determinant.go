// SPDX-License-Identifier: MIT

// Package matrix - determinant via Bareiss fraction-free elimination.
//
// Purpose:
//   - Compute det(A) for square A in O(n³) on a private working copy.
//   - Repair zero pivots by row exchange at every step and apply the permutation
//     sign once at the end.
//
// Numeric policy:
//   - Over integers/rationals Bareiss is exact; in float64 every division rounds,
//     so results for integer input are exact only while intermediates stay below 2^53.
//   - A singular matrix is a valid input: Determinant returns (0, nil), never ErrSingular.

package matrix

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Determinant computes det(m) with the Bareiss algorithm.
// MAIN DESCRIPTION:
//   - Fraction-free Gaussian elimination: for k = 0..n-2 and r, c in (k, n)
//     a[r][c] = (a[k][k]*a[r][c] - a[r][k]*a[k][c]) / p, then p = a[k][k] (p starts at 1).
//     The determinant is sign * a[n-1][n-1].
//
// Implementation:
//   - Stage 1: validate non-nil, square; deep-copy into a *Dense working matrix.
//   - Stage 2: reject non-finite entries (they would poison every pivot).
//   - Stage 3: per step, pivotStep on the working copy; no usable pivot ⇒ return 0.
//   - Stage 4: Bareiss update of the trailing submatrix; advance p. A non-finite
//     intermediate aborts with ErrNaNInf instead of returning ±Inf or NaN.
//   - Stage 5: return sign * a[n-1][n-1].
//
// Behavior highlights:
//   - The caller's matrix is never mutated (pivot repair runs on the copy).
//   - Row swaps flip an explicit sign; no -1 scaling of the data.
//
// Inputs:
//   - m: square matrix, any Matrix implementation (n ≥ 1).
//   - opts: WithPivotTolerance, WithPivotStrategy, WithLogger. The tolerance applies
//     to the Gaussian-elimination pivot a[k][k]/p, so Determinant, IsSingular and
//     Inverse reach the same singularity verdict under one tolerance.
//
// Returns:
//   - float64: determinant (0 for singular input).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrNaNInf for non-finite entries, or when an intermediate a[k][k]*a[r][c]
//     overflows even though det(m) itself may be representable.
//
// Determinism:
//   - Fixed k→r→c loop order; identical inputs give bit-identical results.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the working copy.
func Determinant(m Matrix, opts ...Option) (float64, error) {
	det, _, err := determinant(m, opts...)

	return det, err
}

// DeterminantReport is Determinant plus the pivot search outcome on the
// working copy (swaps performed, parity, first singular column).
func DeterminantReport(m Matrix, opts ...Option) (float64, PivotReport, error) {
	return determinant(m, opts...)
}

// IsSingular reports whether elimination finds no usable pivot in some column.
// Under the default tolerance this agrees with Determinant(m) == 0.
func IsSingular(m Matrix, opts ...Option) (bool, error) {
	_, rep, err := determinant(m, opts...)
	if err != nil {
		return false, err
	}

	return rep.Singular, nil
}

func determinant(m Matrix, opts ...Option) (float64, PivotReport, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, PivotReport{}, matrixErrorf(opDeterminant, err)
	}
	work, err := denseCopyOf(m)
	if err != nil {
		return 0, PivotReport{}, matrixErrorf(opDeterminant, err)
	}
	if err = checkFinite(work); err != nil {
		return 0, PivotReport{}, matrixErrorf(opDeterminant, err)
	}
	o := gatherOptions(opts...)
	det, rep, err := bareiss(work, &o)
	if err != nil {
		return 0, rep, matrixErrorf(opDeterminant, err)
	}

	return det, rep, nil
}

// bareiss runs the elimination in place on work and returns (det, report).
//
// The diagonal value seen at step k is a ratio of leading minors scaled by the
// previous pivot, so the zero test is |a[k][k]| <= tol*|p|: the same test
// Gauss-Jordan applies to its (unscaled) pivot. The final entry uses that test too.
// A non-finite intermediate (the products are squares of leading minors) stops
// the elimination with ErrNaNInf.
func bareiss(work *Dense, o *Options) (float64, PivotReport, error) {
	n := work.r
	a := work.data
	rep := newPivotReport()
	step := *o // per-step copy carrying the scaled tolerance

	var (
		k, r, c         int
		rowK, rowR      int     // flat offsets of rows k and r
		akk, ark, pivot float64 // current pivot, multiplier, previous pivot
		v, last         float64
		overflow        bool
	)
	pivot = 1
	for k = 0; k < n-1; k++ {
		step.pivotTol = o.pivotTol * math.Abs(pivot)
		if !pivotStep(work, nil, k, &step, opDeterminant, &rep) {
			return 0, rep, nil
		}
		rowK = k * n
		akk = a[rowK+k]
		for r = k + 1; r < n; r++ {
			rowR = r * n
			ark = a[rowR+k]
			for c = k + 1; c < n; c++ {
				v = (akk*a[rowR+c] - ark*a[rowK+c]) / pivot
				overflow = overflow || isNonFinite(v)
				a[rowR+c] = v
			}
		}
		if overflow {
			o.log.WithFields(logrus.Fields{
				logFieldOp:   opDeterminant,
				logFieldStep: k,
			}).Debug(logMsgOverflow)

			return 0, rep, fmt.Errorf("step %d: %w", k, ErrNaNInf)
		}
		pivot = akk
	}

	last = a[(n-1)*n+(n-1)]
	if isZeroPivot(last, o.pivotTol*math.Abs(pivot)) {
		rep.Singular = true
		rep.Column = n - 1
		o.log.WithFields(logrus.Fields{
			logFieldOp:   opDeterminant,
			logFieldStep: n - 1,
		}).Debug(logMsgSingular)

		return 0, rep, nil
	}
	o.log.WithFields(logrus.Fields{
		logFieldOp:    opDeterminant,
		logFieldSize:  n,
		logFieldSign:  rep.Sign,
		logFieldSwaps: len(rep.Swaps),
	}).Debug(logMsgEliminationDone)

	return rep.Sign * last, rep, nil
}

// denseCopyOf returns an independent *Dense holding m's values.
// *Dense inputs are cloned with one copy; other implementations go through At.
func denseCopyOf(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.clone(), nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := newDenseWithPolicy(rows, cols, false)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// checkFinite returns ErrNaNInf (with coordinates) for the first non-finite entry.
func checkFinite(d *Dense) error {
	for idx, v := range d.data {
		if isNonFinite(v) {
			return fmt.Errorf("(%d,%d): %w", idx/d.c, idx%d.c, ErrNaNInf)
		}
	}

	return nil
}
