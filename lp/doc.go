// SPDX-License-Identifier: MIT

// Package lp models small, dense linear-programming problems:
// an optimization direction, an objective vector, and a list of
// typed constraints (≤, ≥, =) over implicitly non-negative variables.
//
// The package is the validation boundary of the toolkit: Validate
// rejects malformed input (empty objective, empty constraint set,
// dimension mismatch, non-finite coefficients) with sentinel errors
// before any solver state is built. Mathematical outcomes such as
// infeasibility are NOT errors here — they are terminal statuses
// reported by package simplex.
//
// Conventions:
//   - Decision variables are x1..xn, one per objective coefficient.
//   - Every constraint's coefficient vector must have length n.
//   - All values must be finite (no NaN, no ±Inf).
//
// Usage:
//
//	p := lp.NewProblem(lp.Minimize, []float64{8, 12},
//	    lp.GreaterEq([]float64{1, 2}, 10),
//	    lp.GreaterEq([]float64{2, 1}, 12),
//	)
//	if err := p.Validate(); err != nil {
//	    // errors.Is(err, lp.ErrDimensionMismatch), etc.
//	}
package lp
