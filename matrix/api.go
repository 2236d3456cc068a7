// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Each facade delegates to the canonical implementation; no logic is duplicated.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns an r×c zero matrix. Alias of NewDense for discoverability.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions for n <= 0.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	m.toIdentity()

	return m, nil
}

// NewFromRows builds a Dense from a row-major 2D slice. The input is copied;
// later changes to rows do not affect the matrix.
//
// Errors:
//   - ErrInvalidDimensions for an empty outer or first inner slice.
//   - ErrDimensionMismatch for ragged rows.
//   - ErrNaNInf for non-finite values under the numeric policy.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	cols, err := ValidateRectangular(rows)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	o := gatherOptions(opts...)
	m, err := newDenseWithPolicy(len(rows), cols, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, src := range rows {
		copy(m.row(i), src)
	}
	if m.validateNaNInf {
		if err = checkFinite(m); err != nil {
			return nil, matrixErrorf(opFromRows, err)
		}
	}

	return m, nil
}

// ToRows copies m into a freshly allocated row-major 2D slice.
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	d, err := denseCopyOf(m)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, d.r)
	for i := range out {
		out[i] = append([]float64(nil), d.row(i)...)
	}

	return out, nil
}

// CloneMatrix returns a deep copy of m (nil for nil).
func CloneMatrix(m Matrix) Matrix {
	if ValidateNotNil(m) != nil {
		return nil
	}

	return m.Clone()
}

// ZerosLike returns a zero matrix with m's shape.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns the identity with m's (square) shape.
// Errors: ErrNilMatrix, ErrNonSquare.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, err
	}

	return NewIdentity(m.Rows())
}

// ---------- Algebra facades ----------

// Sum is an alias for Add.
func Sum(a, b Matrix, opts ...Option) (Matrix, error) { return Add(a, b, opts...) }

// Diff is an alias for Sub.
func Diff(a, b Matrix, opts ...Option) (Matrix, error) { return Sub(a, b, opts...) }

// Product is an alias for Mul.
func Product(a, b Matrix, opts ...Option) (Matrix, error) { return Mul(a, b, opts...) }

// T is a short alias for Transpose.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// ScaleBy is an alias for Scale.
func ScaleBy(m Matrix, alpha float64, opts ...Option) (Matrix, error) {
	return Scale(m, alpha, opts...)
}

// Det is a short alias for Determinant.
func Det(m Matrix, opts ...Option) (float64, error) { return Determinant(m, opts...) }

// InverseOf is an alias for Inverse.
func InverseOf(m Matrix, opts ...Option) (Matrix, error) { return Inverse(m, opts...) }
