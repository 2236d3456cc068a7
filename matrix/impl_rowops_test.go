// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bareiss/matrix"
)

func rowOpsFixture(t *testing.T) *matrix.Dense {
	t.Helper()

	return MustRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
}

func TestScaleRow(t *testing.T) {
	m := rowOpsFixture(t)
	require.NoError(t, m.ScaleRow(1, 2))
	require.Equal(t, [][]float64{{1, 2, 3}, {8, 10, 12}, {7, 8, 9}}, Snapshot(t, m))

	require.ErrorIs(t, m.ScaleRow(3, 2), matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.ScaleRow(0, math.Inf(1)), matrix.ErrNaNInf)
}

func TestDivideRow(t *testing.T) {
	m := rowOpsFixture(t)
	require.NoError(t, m.DivideRow(2, 2))
	require.Equal(t, []float64{3.5, 4, 4.5}, Snapshot(t, m)[2])

	require.ErrorIs(t, m.DivideRow(0, 0), matrix.ErrZeroDivisor)
	require.Equal(t, []float64{1, 2, 3}, Snapshot(t, m)[0], "refused division leaves row intact")
	require.ErrorIs(t, m.DivideRow(-1, 1), matrix.ErrIndexOutOfBounds)
}

func TestSubtractRow(t *testing.T) {
	m := rowOpsFixture(t)
	require.NoError(t, m.SubtractRow(2, 0))
	require.Equal(t, []float64{6, 6, 6}, Snapshot(t, m)[2])

	require.NoError(t, m.SubtractRow(1, 1), "self-subtraction zeroes the row")
	require.Equal(t, []float64{0, 0, 0}, Snapshot(t, m)[1])

	require.ErrorIs(t, m.SubtractRow(0, 3), matrix.ErrIndexOutOfBounds)
}

func TestAddScaledRow(t *testing.T) {
	m := rowOpsFixture(t)
	require.NoError(t, m.AddScaledRow(1, 0, -4))
	require.Equal(t, []float64{0, -3, -6}, Snapshot(t, m)[1])
	require.Equal(t, []float64{1, 2, 3}, Snapshot(t, m)[0], "source untouched")

	require.ErrorIs(t, m.AddScaledRow(5, 0, 1), matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.AddScaledRow(0, 1, math.NaN()), matrix.ErrNaNInf)
}

// TestSwapRowsKeepsSign checks that a swap exchanges data only (no negation).
func TestSwapRowsKeepsSign(t *testing.T) {
	m := rowOpsFixture(t)
	require.NoError(t, m.SwapRows(0, 2))
	require.Equal(t, [][]float64{{7, 8, 9}, {4, 5, 6}, {1, 2, 3}}, Snapshot(t, m))

	require.NoError(t, m.SwapRows(1, 1))
	require.Equal(t, []float64{4, 5, 6}, Snapshot(t, m)[1])

	require.ErrorIs(t, m.SwapRows(0, 3), matrix.ErrIndexOutOfBounds)
}

func TestSwapCols(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, m.SwapCols(0, 2))
	require.Equal(t, [][]float64{{3, 2, 1}, {6, 5, 4}}, Snapshot(t, m))

	require.ErrorIs(t, m.SwapCols(0, 3), matrix.ErrIndexOutOfBounds)
}

func TestToIdentity(t *testing.T) {
	m := rowOpsFixture(t)
	require.NoError(t, m.ToIdentity())
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, Snapshot(t, m))

	rect := MustRows(t, [][]float64{{1, 2, 3}})
	require.ErrorIs(t, rect.ToIdentity(), matrix.ErrNonSquare)
	require.Equal(t, [][]float64{{1, 2, 3}}, Snapshot(t, rect))
}
