// SPDX-License-Identifier: MIT

// Package matrix - in-place row/column primitives on *Dense.
//
// Purpose:
//   - Elementary row operations used by the elimination kernels (Determinant, Inverse).
//   - Public methods validate indices (ErrIndexOutOfBounds) and scalars (numeric policy);
//     unexported twins skip validation for hot loops whose indices are correct by construction.
//
// Sign convention:
//   - SwapRows/SwapCols only exchange data. They do NOT negate the matrix; the
//     permutation sign is tracked by the pivot search (PivotReport.Sign) instead.
//
// Complexity quicksheet:
//   - Row ops: O(c); column swap: O(r); ToIdentity: O(n²).

package matrix

import "fmt"

const (
	ctxScaleRow     = "ScaleRow"
	ctxDivideRow    = "DivideRow"
	ctxSubtractRow  = "SubtractRow"
	ctxAddScaledRow = "AddScaledRow"
	ctxSwapRows     = "SwapRows"
	ctxSwapCols     = "SwapCols"
	ctxToIdentity   = "ToIdentity"
)

// rowOpErrorf wraps err as "Dense.<op>(a,b): %w" (a,b are the op's indices).
func rowOpErrorf(op string, a, b int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", op, a, b, err)
}

// ScaleRow multiplies every entry of row i by factor.
// Errors: ErrIndexOutOfBounds; ErrNaNInf when factor is non-finite under the numeric policy.
func (m *Dense) ScaleRow(i int, factor float64) error {
	if err := validateIndex(i, m.r); err != nil {
		return rowOpErrorf(ctxScaleRow, i, i, err)
	}
	if m.validateNaNInf && isNonFinite(factor) {
		return rowOpErrorf(ctxScaleRow, i, i, ErrNaNInf)
	}
	m.scaleRow(i, factor)

	return nil
}

// DivideRow divides every entry of row i by factor.
// Unlike the internal kernel, the public method refuses factor == 0 (ErrZeroDivisor).
func (m *Dense) DivideRow(i int, factor float64) error {
	if err := validateIndex(i, m.r); err != nil {
		return rowOpErrorf(ctxDivideRow, i, i, err)
	}
	if factor == 0 {
		return rowOpErrorf(ctxDivideRow, i, i, ErrZeroDivisor)
	}
	if m.validateNaNInf && isNonFinite(factor) {
		return rowOpErrorf(ctxDivideRow, i, i, ErrNaNInf)
	}
	m.divideRow(i, factor)

	return nil
}

// SubtractRow performs row[target] -= row[source] elementwise.
// target == source is legal and zeroes the row.
func (m *Dense) SubtractRow(target, source int) error {
	if err := validateIndex(target, m.r); err != nil {
		return rowOpErrorf(ctxSubtractRow, target, source, err)
	}
	if err := validateIndex(source, m.r); err != nil {
		return rowOpErrorf(ctxSubtractRow, target, source, err)
	}
	m.subRow(target, source)

	return nil
}

// AddScaledRow performs row[target] += factor * row[source] elementwise.
// This is the single-pass form of "scale source, subtract, scale back".
func (m *Dense) AddScaledRow(target, source int, factor float64) error {
	if err := validateIndex(target, m.r); err != nil {
		return rowOpErrorf(ctxAddScaledRow, target, source, err)
	}
	if err := validateIndex(source, m.r); err != nil {
		return rowOpErrorf(ctxAddScaledRow, target, source, err)
	}
	if m.validateNaNInf && isNonFinite(factor) {
		return rowOpErrorf(ctxAddScaledRow, target, source, ErrNaNInf)
	}
	m.addScaledRow(target, source, factor)

	return nil
}

// SwapRows exchanges rows i and j in place. i == j is a no-op.
func (m *Dense) SwapRows(i, j int) error {
	if err := validateIndex(i, m.r); err != nil {
		return rowOpErrorf(ctxSwapRows, i, j, err)
	}
	if err := validateIndex(j, m.r); err != nil {
		return rowOpErrorf(ctxSwapRows, i, j, err)
	}
	m.swapRows(i, j)

	return nil
}

// SwapCols exchanges columns i and j in place. i == j is a no-op.
func (m *Dense) SwapCols(i, j int) error {
	if err := validateIndex(i, m.c); err != nil {
		return rowOpErrorf(ctxSwapCols, i, j, err)
	}
	if err := validateIndex(j, m.c); err != nil {
		return rowOpErrorf(ctxSwapCols, i, j, err)
	}
	m.swapCols(i, j)

	return nil
}

// ToIdentity overwrites m with the identity: 1 on the main diagonal, 0 elsewhere.
// Errors: ErrNonSquare for non-square m (m is left untouched).
func (m *Dense) ToIdentity() error {
	if m.r != m.c {
		return fmt.Errorf("Dense.%s: %w", ctxToIdentity, ErrNonSquare)
	}
	m.toIdentity()

	return nil
}

// ---------- unchecked kernels ----------

func (m *Dense) scaleRow(i int, factor float64) {
	r := m.row(i)
	for j := range r {
		r[j] *= factor
	}
}

// divideRow does not guard factor == 0; callers guarantee a nonzero pivot.
func (m *Dense) divideRow(i int, factor float64) {
	r := m.row(i)
	for j := range r {
		r[j] /= factor
	}
}

func (m *Dense) subRow(target, source int) {
	dst, src := m.row(target), m.row(source)
	for j := range dst {
		dst[j] -= src[j]
	}
}

func (m *Dense) addScaledRow(target, source int, factor float64) {
	dst, src := m.row(target), m.row(source)
	for j := range dst {
		dst[j] += factor * src[j]
	}
}

func (m *Dense) swapRows(i, j int) {
	if i == j {
		return
	}
	a, b := m.row(i), m.row(j)
	for k := range a {
		a[k], b[k] = b[k], a[k]
	}
}

func (m *Dense) swapCols(i, j int) {
	if i == j {
		return
	}
	var base int
	for r := 0; r < m.r; r++ {
		base = r * m.c
		m.data[base+i], m.data[base+j] = m.data[base+j], m.data[base+i]
	}
}

func (m *Dense) toIdentity() {
	clear(m.data)
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+i] = 1
	}
}
