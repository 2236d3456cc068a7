// SPDX-License-Identifier: MIT

// Package matrix - Pivot Search (zero-pivot repair by row exchange).
//
// Purpose:
//   - Make a square matrix usable for elimination by ensuring no zero sits on the
//     diagonal at the moment a pivot is used.
//   - Track the permutation parity explicitly (PivotReport.Sign) instead of folding
//     a -1 factor into the data on every swap.
//
// Two entry points share one step function:
//   - RepairPivots: the standalone scan over all diagonal positions of a matrix as given.
//   - pivotStep: one elimination step, called by Determinant and Inverse on their
//     reduced working copy, so zeros created by earlier updates are repaired as well.

package matrix

import (
	"math"

	"github.com/sirupsen/logrus"
)

const (
	opRepairPivots = "RepairPivots"

	signPositive = 1.0
	signNegative = -1.0
	noColumn     = -1
)

// PivotReport describes the outcome of a pivot search.
type PivotReport struct {
	// Singular is authoritative: once true, no further elimination may be attempted.
	Singular bool
	// Column is the diagonal position that could not be repaired, or -1.
	Column int
	// Sign is the parity of the performed swaps: +1 (even) or -1 (odd).
	Sign float64
	// Swaps lists the exchanges in the order they were applied.
	Swaps []RowSwap
}

func newPivotReport() PivotReport {
	return PivotReport{Column: noColumn, Sign: signPositive}
}

// RepairPivots scans the diagonal of d in order and swaps rows in place so that
// every diagonal entry is nonzero.
// MAIN DESCRIPTION:
//   - For each k in [0, n): if |d[k][k]| <= tol, take the first row below k with a
//     usable entry in column k (or, under PivotMaxAbs, the largest one) and swap it
//     into position k. When no such row exists the scan halts with Singular=true.
//
// Implementation:
//   - Stage 1: validate d non-nil and square.
//   - Stage 2: run pivotStep for k = 0..n-1 (half-open ranges, no pre-increment tricks).
//
// Behavior highlights:
//   - Structural scan only: no elimination is performed, so the matrix keeps its row
//     space and the determinant changes by exactly Sign.
//   - A zero diagonal entry with nothing usable below it is reported as singular even
//     when elimination could still resolve it (e.g. the last diagonal entry). The
//     kernels avoid this by searching on the reduced matrix at each step.
//
// Inputs:
//   - d: square matrix, mutated in place.
//   - opts: WithPivotTolerance, WithPivotStrategy, WithLogger.
//
// Returns:
//   - PivotReport with Singular/Column/Sign/Swaps.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n²) worst case (n columns × n candidate rows, plus O(n) per swap).
func RepairPivots(d *Dense, opts ...Option) (PivotReport, error) {
	if err := ValidateSquareNonNil(d); err != nil {
		return PivotReport{}, matrixErrorf(opRepairPivots, err)
	}
	o := gatherOptions(opts...)
	rep := newPivotReport()
	for k := 0; k < d.r; k++ {
		if !pivotStep(d, nil, k, &o, opRepairPivots, &rep) {
			break
		}
	}

	return rep, nil
}

// pivotStep ensures a usable pivot at (k,k) of d, swapping rows of d (and of the
// lockstep partner, when non-nil) as needed. Returns false when column k has no
// usable entry at or below row k; rep is updated either way.
func pivotStep(d, partner *Dense, k int, o *Options, op string, rep *PivotReport) bool {
	r, ok := selectPivotRow(d, k, o)
	if !ok {
		rep.Singular = true
		rep.Column = k
		o.log.WithFields(logrus.Fields{
			logFieldOp:       op,
			logFieldStep:     k,
			logFieldStrategy: o.strategy.String(),
		}).Debug(logMsgSingular)

		return false
	}
	if r == k {
		return true
	}

	d.swapRows(k, r)
	if partner != nil {
		partner.swapRows(k, r)
	}
	rep.Sign = -rep.Sign
	rep.Swaps = append(rep.Swaps, RowSwap{Step: k, With: r})
	o.log.WithFields(logrus.Fields{
		logFieldOp:   op,
		logFieldStep: k,
		logFieldRow:  k,
		logFieldWith: r,
	}).Debug(logMsgPivotSwap)

	return true
}

// selectPivotRow picks the pivot row for column k among rows [k, n).
// Returns (row, true) on success or (-1, false) when every candidate is ~0.
func selectPivotRow(d *Dense, k int, o *Options) (int, bool) {
	var r int
	switch o.strategy {
	case PivotMaxAbs:
		best, bestAbs := noColumn, o.pivotTol
		var a float64
		for r = k; r < d.r; r++ {
			a = math.Abs(d.data[r*d.c+k])
			if a > bestAbs { // strict: ties keep the earlier (upper) row
				best, bestAbs = r, a
			}
		}

		return best, best != noColumn
	default:
		if !isZeroPivot(d.data[k*d.c+k], o.pivotTol) {
			return k, true
		}
		for r = k + 1; r < d.r; r++ {
			if !isZeroPivot(d.data[r*d.c+k], o.pivotTol) {
				return r, true
			}
		}

		return noColumn, false
	}
}

// isZeroPivot reports |v| <= tol. NaN is never a usable pivot.
func isZeroPivot(v, tol float64) bool {
	return math.IsNaN(v) || math.Abs(v) <= tol
}
