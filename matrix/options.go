// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global mutable state, no implicit randomness.
//   - No dead switches: each option impacts at least one kernel and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Snap epsilon: Add, Sub, Mul and Scale snap |x| <= eps to exactly 0.
//     The default (0) disables snapping.
//   - Pivot tolerance is independent of the snap epsilon: it only decides when a
//     pivot counts as zero. RepairPivots and Inverse test the entry itself; Bareiss
//     tests |a[k][k]| <= tol*|p| (p = previous pivot), i.e. the same elimination pivot.
//   - Logging is opt-in by level: kernels only emit Debug entries.
package matrix

import (
	"github.com/sirupsen/logrus"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the snap threshold applied to operator results (0 = off).
	DefaultEpsilon = 0.0

	// DefaultPivotTolerance treats only exact zeros as unusable pivots.
	DefaultPivotTolerance = 0.0

	// DefaultPivotStrategy searches for the first nonzero row below a zero pivot.
	DefaultPivotStrategy = PivotFirstNonZero

	// DefaultValidateNaNInf toggles strict finite-value validation on Set and ingestion.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicPivotTolInvalid  = "matrix: WithPivotTolerance: tol must be finite, non-negative"
	panicStrategyInvalid  = "matrix: WithPivotStrategy: unknown strategy"
	panicLoggerNil        = "matrix: WithLogger: logger must not be nil"
	logFieldOp            = "op"
	logFieldStep          = "step"
	logFieldRow           = "row"
	logFieldWith          = "with"
	logFieldSize          = "n"
	logFieldStrategy      = "strategy"
	logFieldSign          = "sign"
	logFieldSwaps         = "swaps"
	logMsgPivotSwap       = "pivot row swapped"
	logMsgSingular        = "no usable pivot; matrix is singular"
	logMsgEliminationDone = "elimination finished"
	logMsgOverflow        = "non-finite intermediate; elimination aborted"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	eps            float64            // >= 0; snap threshold for operator results
	pivotTol       float64            // >= 0; |x| <= pivotTol counts as a zero pivot
	strategy       PivotStrategy      // replacement-row selection
	validateNaNInf bool               // policy for newly created matrices
	log            logrus.FieldLogger // never nil after gatherOptions
}

// WithEpsilon sets the snap threshold used by Add, Sub, Mul and Scale.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - Results with |x| <= eps become exactly 0. eps == 0 disables snapping.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithSnapEpsilon is an intention-revealing alias of WithEpsilon.
func WithSnapEpsilon(eps float64) Option { return WithEpsilon(eps) }

// WithPivotTolerance sets the magnitude at or below which an elimination pivot is
// treated as zero. Panics when tol is negative or non-finite.
func WithPivotTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotTolInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithPivotStrategy selects the replacement-row rule (see PivotStrategy).
// Panics on values outside the declared constants.
func WithPivotStrategy(s PivotStrategy) Option {
	if s != PivotFirstNonZero && s != PivotMaxAbs {
		panic(panicStrategyInvalid)
	}

	return func(o *Options) { o.strategy = s }
}

// WithValidateNaNInf enables strict finite-value validation for matrices the
// call allocates (NewFromRows and kernel results).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation for newly created matrices.
// Existing matrices keep their own policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithLogger routes kernel tracing to l. Entries are emitted at Debug level
// with structured fields (op, step, row, with).
//
// Notes:
//   - Any logrus.FieldLogger works: *logrus.Logger, *logrus.Entry (pre-populated fields).
//   - Panics on nil; pass a logger with io.Discard output to silence explicitly.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.log = l }
}

// --------------------------- Option Resolution ---------------------------

// NewMatrixOptions resolves option setters against documented defaults.
// Pure function; stable for a given sequence of opts (last-writer-wins).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		pivotTol:       DefaultPivotTolerance,
		strategy:       DefaultPivotStrategy,
		validateNaNInf: DefaultValidateNaNInf,
		log:            logrus.StandardLogger(),
	}
}

// gatherOptions applies user-provided setters on top of defaults.
// This is the canonical internal entry in kernel code.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}

// Epsilon reports the resolved snap threshold.
func (o Options) Epsilon() float64 { return o.eps }

// PivotTolerance reports the resolved zero-pivot tolerance.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// Strategy reports the resolved pivot strategy.
func (o Options) Strategy() PivotStrategy { return o.strategy }

// ValidateNaNInf reports the resolved numeric policy for new matrices.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// Logger reports the resolved logger (never nil).
func (o Options) Logger() logrus.FieldLogger { return o.log }
