// SPDX-License-Identifier: MIT

package simplex

// Primal simplex: drives a primal-feasible tableau (all rhs ≥ 0) to
// OPTIMAL or UNBOUNDED by repeatedly entering the column with the largest
// positive reduced cost and leaving via the minimum-ratio row.

// enteringColumn returns the column with the largest reduced cost among
// columns with reducedCost > Eps, or -1 when none exists (optimal).
// Ties keep the smallest column index; the strict > comparison below is
// what makes the rule deterministic.
func (t *tableau) enteringColumn() int {
	best, bestRC := -1, Eps
	for j := 0; j < t.width(); j++ {
		if rc := t.reducedCost(j); rc > bestRC {
			best, bestRC = j, rc
		}
	}

	return best
}

// leavingRow runs the minimum-ratio test for col: among rows with
// entry(row, col) > Eps, the row minimizing rhs(row)/entry wins, smallest
// row index on ties. Returns -1 when no row constrains the column
// (the objective is unbounded along it).
func (t *tableau) leavingRow(col int) int {
	best := -1
	var bestRatio float64
	for i := 0; i < t.rows; i++ {
		entry := t.at(i, col)
		if entry <= Eps {
			continue
		}
		ratio := t.rhs(i) / entry
		if best < 0 || ratio < bestRatio {
			best, bestRatio = i, ratio
		}
	}

	return best
}

// runPrimal iterates entering/leaving selection and pivoting until a
// terminal status. phase tags the recorded snapshots (0 for single-phase
// runs). The objective value is non-decreasing across iterations in the
// internal maximize form.
func (e *engine) runPrimal(phase int) (Status, error) {
	for {
		col := e.t.enteringColumn()
		if col < 0 {
			return StatusOptimal, nil
		}
		row := e.t.leavingRow(col)
		if row < 0 {
			return StatusUnbounded, nil
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
