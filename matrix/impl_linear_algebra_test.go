// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bareiss/matrix"
)

// TestAddSub_Roundtrip: (A + B) - B ≈ A, on both the fast and fallback paths.
func TestAddSub_Roundtrip(t *testing.T) {
	a := MustDense(t, 4, 3)
	b := MustDense(t, 4, 3)
	RandomFill(t, a, 1)
	RandomFill(t, b, 2)

	for name, pair := range map[string][2]matrix.Matrix{
		"dense":    {a, b},
		"fallback": {hide{a}, hide{b}},
	} {
		t.Run(name, func(t *testing.T) {
			sum, err := matrix.Add(pair[0], pair[1])
			require.NoError(t, err)
			back, err := matrix.Sub(sum, pair[1])
			require.NoError(t, err)
			ok, err := matrix.AllClose(back, a, 0, tolTight)
			require.NoError(t, err)
			require.True(t, ok)
		})
	}
}

func TestAddSub_Values(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Sum(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{11, 22}, {33, 44}}, Snapshot(t, sum))

	diff, err := matrix.Diff(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-9, -18}, {-27, -36}}, Snapshot(t, diff))
}

func TestAddSub_Errors(t *testing.T) {
	a := MustDense(t, 2, 2)
	_, err := matrix.Add(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = matrix.Sub(a, MustDense(t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	// Overflow to Inf is caught by the numeric policy.
	big := MustRows(t, [][]float64{{math.MaxFloat64}})
	_, err = matrix.Add(big, big)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	sum, err := matrix.Add(big, big, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsInf(MustAt(t, sum, 0, 0), 1))
}

func TestMul_Known(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]float64{{5, 6}, {7, 8}})
	want := [][]float64{{19, 22}, {43, 50}}

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, want, Snapshot(t, got))

	got, err = matrix.Product(hide{a}, hide{b})
	require.NoError(t, err)
	require.Equal(t, want, Snapshot(t, got))
}

func TestMul_Rectangular(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 0, 2}, {0, 3, -1}})  // 2x3
	b := MustRows(t, [][]float64{{1, 2}, {0, 1}, {4, 0}}) // 3x2
	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{9, 2}, {-4, 3}}, Snapshot(t, got))
}

func TestMul_ShapeMismatch(t *testing.T) {
	_, err := matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = matrix.Mul(MustDense(t, 2, 2), nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMul_AgainstGonum cross-checks a random product.
func TestMul_AgainstGonum(t *testing.T) {
	a := MustDense(t, 5, 7)
	b := MustDense(t, 7, 4)
	RandomFill(t, a, 31)
	RandomFill(t, b, 37)

	var want mat.Dense
	want.Mul(ToGonum(t, a), ToGonum(t, b))

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.True(t, mat.EqualApprox(&want, ToGonum(t, got), tolTight))
}

// TestSnapEpsilon: |x| <= eps becomes exactly 0; larger values of either sign survive.
func TestSnapEpsilon(t *testing.T) {
	m := MustRows(t, [][]float64{{1e-14, -1e-14, -5, 1}})

	kept, err := matrix.Scale(m, 1)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1e-14, -1e-14, -5, 1}}, Snapshot(t, kept), "snapping is off by default")

	snapped, err := matrix.ScaleBy(m, 1, matrix.WithSnapEpsilon(1e-13))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0, -5, 1}}, Snapshot(t, snapped))

	a := MustRows(t, [][]float64{{0.1, 0.2}})
	b := MustRows(t, [][]float64{{0.2}, {-0.1}})
	prod, err := matrix.Mul(a, b, matrix.WithSnapEpsilon(1e-12))
	require.NoError(t, err)
	require.Equal(t, 0.0, MustAt(t, prod, 0, 0))
}

func TestScale(t *testing.T) {
	m := MustRows(t, [][]float64{{1, -2}, {3, 0}})
	got, err := matrix.Scale(hide{m}, -2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-2, 4}, {-6, 0}}, Snapshot(t, got))

	_, err = matrix.Scale(m, math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.Scale(nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTranspose_Involution: (Aᵀ)ᵀ equals A exactly.
func TestTranspose_Involution(t *testing.T) {
	a := MustDense(t, 3, 5)
	RandomFill(t, a, 9)

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, 5, at.Rows())
	require.Equal(t, 3, at.Cols())
	require.Equal(t, MustAt(t, a, 1, 4), MustAt(t, at, 4, 1))

	att, err := matrix.T(hide{at})
	require.NoError(t, err)
	equal, err := matrix.Equal(att, a)
	require.NoError(t, err)
	require.True(t, equal)

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestResultsAreIndependent: kernel results never alias their operands.
func TestResultsAreIndependent(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)

	prod, err := matrix.Mul(a, id)
	require.NoError(t, err)
	MustSet(t, prod, 0, 0, 99)
	require.Equal(t, 1.0, MustAt(t, a, 0, 0))
}
