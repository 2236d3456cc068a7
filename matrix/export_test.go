// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes unexported kernels and panic messages to matrix_test.
// Compiled only with `go test`, so the production API stays unchanged.

const (
	PanicEpsilonInvalid  = panicEpsilonInvalid
	PanicPivotTolInvalid = panicPivotTolInvalid
	PanicStrategyInvalid = panicStrategyInvalid
	PanicLoggerNil       = panicLoggerNil
)

// SelectPivotRow runs the replacement-row rule for column k under opts.
func SelectPivotRow(d *Dense, k int, opts ...Option) (int, bool) {
	o := gatherOptions(opts...)

	return selectPivotRow(d, k, &o)
}

// SnapZeros is the in-place snap kernel used by Add/Sub/Mul/Scale.
var SnapZeros = snapZeros
