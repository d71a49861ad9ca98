// SPDX-License-Identifier: MIT

package simplex

import "math"

// Dual simplex: starts dual-feasible (every reduced cost ≤ Eps) but
// primal-infeasible (negative rhs entries) and restores primal feasibility
// row by row while preserving dual feasibility. Terminal states are
// OPTIMAL (all rhs ≥ -Eps) and INFEASIBLE (a negative row with no
// negative entry to pivot on).

// dualFeasible reports whether the tableau satisfies the dual engine's
// entry precondition: no reduced cost above Eps.
func (t *tableau) dualFeasible() bool {
	for j := 0; j < t.width(); j++ {
		if t.reducedCost(j) > Eps {
			return false
		}
	}

	return true
}

// leavingRowDual returns the row with the most negative rhs, or -1 when
// every rhs ≥ -Eps (primal feasibility achieved). Ties keep the smallest
// row index.
func (t *tableau) leavingRowDual() int {
	best, bestRHS := -1, -Eps
	for i := 0; i < t.rows; i++ {
		if r := t.rhs(i); r < bestRHS {
			best, bestRHS = i, r
		}
	}

	return best
}

// enteringColumnDual runs the dual ratio test on the leaving row: among
// columns with entry(row, col) < -Eps, the one minimizing
// |reducedCost(col) / entry(row, col)| wins, smallest column index on
// ties. Returns -1 when no such column exists — no pivot can restore
// primal feasibility without breaking dual feasibility, so the primal
// problem has no feasible region.
func (t *tableau) enteringColumnDual(row int) int {
	best := -1
	var bestRatio float64
	for j := 0; j < t.width(); j++ {
		entry := t.at(row, j)
		if entry >= -Eps {
			continue
		}
		ratio := math.Abs(t.reducedCost(j) / entry)
		if best < 0 || ratio < bestRatio {
			best, bestRatio = j, ratio
		}
	}

	return best
}

// runDual iterates the dual steps until a terminal status. phase tags the
// recorded snapshots (always 0 today; the dual engine is single-phase).
func (e *engine) runDual(phase int) (Status, error) {
	for {
		row := e.t.leavingRowDual()
		if row < 0 {
			return StatusOptimal, nil
		}
		col := e.t.enteringColumnDual(row)
		if col < 0 {
			return StatusInfeasible, nil
		}
		if e.left == 0 {
			return StatusNumericLimit, nil
		}
		e.left--

		leaving := e.t.labels[e.t.basis[row]]
		if err := e.t.pivot(row, col); err != nil {
			return StatusNumericLimit, err
		}
		e.record(phase, row, col, e.t.labels[col], leaving)
	}
}
