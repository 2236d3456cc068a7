// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// Kernels accept any Matrix and return *Dense; *Dense operands unlock the
// flat-slice fast paths.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Each method enforces bounds checking and returns clear errors on misuse.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrIndexOutOfBounds if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrIndexOutOfBounds if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix shares no storage with the original.
	Clone() Matrix
}

// RowSwap records a single row exchange performed by the pivot search.
type RowSwap struct {
	Step int // elimination step (diagonal position) that needed repair
	With int // row that was swapped into position Step
}

// PivotStrategy selects how a replacement pivot row is chosen.
type PivotStrategy int

const (
	// PivotFirstNonZero picks the first row below the diagonal with a nonzero
	// entry in the pivot column. Rows are only swapped when the diagonal is zero.
	PivotFirstNonZero PivotStrategy = iota

	// PivotMaxAbs picks the row (diagonal included) with the largest magnitude
	// in the pivot column (classic partial pivoting). Rows are swapped whenever
	// a strictly larger candidate exists below the diagonal.
	PivotMaxAbs
)

// String returns the strategy name used in log fields.
func (s PivotStrategy) String() string {
	switch s {
	case PivotFirstNonZero:
		return "first-nonzero"
	case PivotMaxAbs:
		return "max-abs"
	default:
		return "unknown"
	}
}
