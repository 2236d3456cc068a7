// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, scalar scaling, matrix multiplication
// and transpose. All functions perform strict fail-fast validation and return
// clear errors on dimension mismatches.
//
// Purpose:
//   - Supporting operators for the elimination kernels and their callers.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Policy:
//   - Inputs are never mutated; every result is a freshly allocated *Dense.
//   - *Dense operands take a flat-slice fast path; other implementations go through At.
//   - Results carry the numeric policy from options; with validation on, a non-finite
//     result (overflow) fails with ErrNaNInf instead of being returned.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value of dot-product accumulators.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd            = "Add"
	opSub            = "Sub"
	opMul            = "Mul"
	opTranspose      = "Transpose"
	opScale          = "Scale"
	opDeterminant    = "Determinant"
	opInverse        = "Inverse"
	opInverseInPlace = "InverseInPlace"
	opPrint          = "Fprint"
	opEqual          = "Equal"
	opAllClose       = "AllClose"
	opFromRows       = "NewFromRows"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// finishResult applies the snap epsilon and the numeric policy to a fresh result.
func finishResult(res *Dense, o *Options, opTag string) (*Dense, error) {
	snapZeros(res.data, o.eps)
	if res.validateNaNInf {
		if err := checkFinite(res); err != nil {
			return nil, matrixErrorf(opTag, err)
		}
	}

	return res, nil
}

// snapZeros sets every |x| <= eps to exactly 0. eps == 0 disables snapping.
func snapZeros(data []float64, eps float64) {
	if eps == 0 {
		return
	}
	for idx, v := range data {
		if math.Abs(v) <= eps {
			data[idx] = 0
		}
	}
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (ShapeMismatch), ErrNaNInf (overflow under policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string, opts []Option) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	o := gatherOptions(opts...)

	rows, cols := a.Rows(), a.Cols()
	res, err := newDenseWithPolicy(rows, cols, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res.finish(&o, opTag)
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res.finish(&o, opTag)
}

// finish is finishResult as a method, returning the Matrix interface.
func (m *Dense) finish(o *Options, opTag string) (Matrix, error) {
	res, err := finishResult(m, o, opTag)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Errors: ErrNilMatrix, ErrShapeMismatch (== ErrDimensionMismatch) when shapes differ.
func Add(a, b Matrix, opts ...Option) (Matrix, error) { return addSub(a, b, +1, opAdd, opts) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Errors: ErrNilMatrix, ErrShapeMismatch (== ErrDimensionMismatch) when shapes differ.
func Sub(a, b Matrix, opts ...Option) (Matrix, error) { return addSub(a, b, -1, opSub, opts) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//   - Stage 3: snap |x| <= eps to 0 (WithSnapEpsilon), enforce numeric policy.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (inner mismatch), ErrNaNInf (overflow under policy).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	o := gatherOptions(opts...)

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := newDenseWithPolicy(aRows, bCols, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res.finish(&o, opMul)
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res.finish(&o, opMul)
}

// Scale returns alpha*m as a new Dense. No shape precondition.
// Results with |x| <= eps are snapped to 0 when WithSnapEpsilon is set.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf when alpha or the product is non-finite under the policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64, opts ...Option) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf && isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := newDenseWithPolicy(rows, cols, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		for idx, v := range dm.data {
			res.data[idx] = v * alpha
		}

		return res.finish(&o, opScale)
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res.finish(&o, opScale)
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Transpose only permutes positions, so Transpose(Transpose(m)) equals m bit for bit.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := newDenseWithPolicy(cols, rows, false) // values are copied, not computed
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		res.validateNaNInf = dm.validateNaNInf

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}
	res.validateNaNInf = DefaultValidateNaNInf

	return res, nil
}
