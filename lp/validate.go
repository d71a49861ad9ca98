// SPDX-License-Identifier: MIT

package lp

import (
	"fmt"
	"math"
)

// Validate checks that p is a well-formed, dimensionally-consistent problem.
//
// Check order (first failure wins):
//  1. Direction in range            → ErrBadDirection
//  2. Objective non-empty, finite   → ErrEmptyObjective / ErrNonFinite
//  3. Constraint list non-empty     → ErrNoConstraints
//  4. Per constraint: relation in range, coefficient count == n,
//     finite coefficients and RHS   → ErrBadRelation / ErrDimensionMismatch / ErrNonFinite
//
// Sentinels are wrapped with positional context; match with errors.Is.
//
// Complexity: O(m·n) time, O(1) space.
func (p Problem) Validate() error {
	if p.Dir != Maximize && p.Dir != Minimize {
		return ErrBadDirection
	}

	n := len(p.Objective)
	if n == 0 {
		return ErrEmptyObjective
	}
	for j, c := range p.Objective {
		if !isFinite(c) {
			return fmt.Errorf("objective coefficient %d: %w", j+1, ErrNonFinite)
		}
	}

	if len(p.Constraints) == 0 {
		return ErrNoConstraints
	}
	for i, c := range p.Constraints {
		if c.Rel != LE && c.Rel != GE && c.Rel != EQ {
			return fmt.Errorf("constraint %d: %w", i+1, ErrBadRelation)
		}
		if len(c.Coeffs) != n {
			return fmt.Errorf("constraint %d: have %d coefficients, want %d: %w",
				i+1, len(c.Coeffs), n, ErrDimensionMismatch)
		}
		for j, a := range c.Coeffs {
			if !isFinite(a) {
				return fmt.Errorf("constraint %d, coefficient %d: %w", i+1, j+1, ErrNonFinite)
			}
		}
		if !isFinite(c.RHS) {
			return fmt.Errorf("constraint %d, rhs: %w", i+1, ErrNonFinite)
		}
	}

	return nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
