// SPDX-License-Identifier: MIT

// Package matrix - Dense storage.
//
// One flat []float64 per matrix, element (i,j) at offset i*cols + j. Accessors
// return errors instead of panicking; unexported twins (row, clone) serve kernels
// whose indices are already validated.
//
// Costs: NewDense O(r*c); At/Set/Row O(1); Clone/CopyFrom O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// Method tags for denseErrorf.
const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRow      = "Row"
	ctxApply    = "Apply"
	ctxCopyFrom = "CopyFrom"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel is preserved for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is the row-major Matrix implementation used by every kernel.
type Dense struct {
	r, c           int       // row and column counts (> 0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense returns a zero-filled rows×cols matrix with the default NaN/Inf policy.
// Errors: ErrInvalidDimensions unless rows > 0 and cols > 0. Dimensions are signed
// ints here, so an empty (0×n) matrix is refused rather than silently allowed.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// newDenseWithPolicy constructs Dense with an explicit numeric policy.
func newDenseWithPolicy(rows, cols int, validateNaNInf bool) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	m.validateNaNInf = validateNaNInf

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape returns (Rows(), Cols()).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrIndexOutOfBounds.
// Public methods wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrIndexOutOfBounds
	}
	if col < 0 || col >= m.c {
		return 0, ErrIndexOutOfBounds
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set writes v at (row, col). Under the NaN/Inf policy a non-finite v is
// refused with ErrNaNInf and the matrix is left unchanged.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns a mutable view of row i: writes through the slice change the matrix.
// The slice capacity is clipped to the row, so append never spills into row i+1.
// Writes through the view bypass the NaN/Inf policy.
//
// Errors:
//   - ErrIndexOutOfBounds when i is outside [0, Rows()).
//
// Complexity:
//   - Time O(1), Space O(1) (no copy).
func (m *Dense) Row(i int) ([]float64, error) {
	if err := validateIndex(i, m.r); err != nil {
		return nil, denseErrorf(ctxRow, i, 0, err)
	}
	lo, hi := i*m.c, (i+1)*m.c

	return m.data[lo:hi:hi], nil
}

// row is the unchecked variant of Row for kernels that validated indices already.
func (m *Dense) row(i int) []float64 {
	lo, hi := i*m.c, (i+1)*m.c

	return m.data[lo:hi:hi]
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is Clone with the concrete return type, for kernels.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// CopyFrom makes m an independent copy of src: m takes src's shape and a
// deep copy of its data. m keeps its own numeric policy, and src values are
// checked against it. Self-assignment is a no-op.
//
// Implementation:
//   - Stage 1: validate src non-nil; short-circuit when src is m.
//   - Stage 2: read src into a fresh buffer (fast path for *Dense).
//   - Stage 3: swap the buffer in only after every value was accepted.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (policy), ErrInvalidDimensions (empty src).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) CopyFrom(src Matrix) error {
	if err := ValidateNotNil(src); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxCopyFrom, err)
	}
	if sd, ok := src.(*Dense); ok && sd == m {
		return nil
	}
	r, c := src.Rows(), src.Cols()
	if r <= 0 || c <= 0 {
		return fmt.Errorf("Dense.%s: %w", ctxCopyFrom, ErrInvalidDimensions)
	}

	buf := make([]float64, r*c)
	if sd, ok := src.(*Dense); ok {
		copy(buf, sd.data)
	} else {
		var i, j int
		var v float64
		var err error
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = src.At(i, j); err != nil {
					return fmt.Errorf("Dense.%s: %w", ctxCopyFrom, err)
				}
				buf[i*c+j] = v
			}
		}
	}
	if m.validateNaNInf {
		for idx, v := range buf {
			if isNonFinite(v) {
				return denseErrorf(ctxCopyFrom, idx/c, idx%c, ErrNaNInf)
			}
		}
	}
	m.r, m.c, m.data = r, c, buf

	return nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only, no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply maps every element through f in row-major order. A non-finite result under
// the NaN/Inf policy stops the walk with ErrNaNInf; earlier writes are kept.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && isNonFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// String renders the matrix with Fprint's layout (debugging aid, not a format contract).
func (m *Dense) String() string {
	var b strings.Builder
	_ = fprintDense(&b, m)

	return b.String()
}
