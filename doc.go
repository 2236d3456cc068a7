// Package bareiss is a small dense linear-algebra toolkit built around two
// elimination kernels: the Bareiss fraction-free determinant and the
// Gauss-Jordan inverse.
//
// Everything lives in the matrix subpackage:
//
//	matrix/   Dense storage, row/column primitives, pivot search,
//	          Determinant, Inverse, Add/Sub/Scale/Mul/Transpose
//
// Quick example:
//
//	A, _ := matrix.NewFromRows([][]float64{{2, 0}, {0, 2}})
//	det, _ := matrix.Determinant(A) // 4
//	inv, _ := matrix.Inverse(A)     // [[0.5 0] [0 0.5]]
//
// Pure Go; the only runtime dependency is logrus for opt-in Debug tracing.
//
//	go get github.com/katalvlaran/bareiss/matrix
package bareiss
