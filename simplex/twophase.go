// SPDX-License-Identifier: MIT

package simplex

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/Eljosek/linear-programming-toolkit/lp"
)

// Two-phase coordination: Phase I drives the artificial variables to zero
// with the unmodified primal engine (the auxiliary objective is "maximize
// minus the artificial sum"), then the tableau is rewritten for Phase II —
// artificial columns dropped, original objective substituted with basic
// columns eliminated — and the primal engine runs again.

// runTwoPhase executes both phases on a Phase-I tableau built by
// newPhaseOneTableau. The pivot budget spans both phases.
func (e *engine) runTwoPhase(p lp.Problem) (Status, error) {
	status, err := e.runPrimal(1)
	if err != nil || status != StatusOptimal {
		// The auxiliary objective is bounded above by zero, so the primal
		// engine cannot report UNBOUNDED here; anything non-optimal is the
		// pivot ceiling.
		return status, err
	}

	// Terminal artificial sum > Eps: no feasible point exists.
	if e.t.corner() > Eps {
		return StatusInfeasible, nil
	}

	if err = e.t.pivotOutArtificials(); err != nil {
		return StatusNumericLimit, err
	}
	e.t.dropArtificials()
	e.t.restoreObjective(internalObjective(p))

	return e.runPrimal(2)
}

// pivotOutArtificials clears any row still bound to an artificial variable
// after Phase I. Such a row is degenerate (its rhs is ~0): pivot it onto
// its smallest-index non-artificial column with |entry| > Eps, or, when the
// row has no structural entry left, remove it as a redundant constraint.
// These are bookkeeping pivots; they are not recorded in the trace and do
// not consume the pivot budget.
func (t *tableau) pivotOutArtificials() error {
	for i := 0; i < t.rows; {
		if t.kinds[t.basis[i]] != colArtificial {
			i++
			continue
		}
		col := -1
		for j := 0; j < t.width(); j++ {
			if t.kinds[j] != colArtificial && math.Abs(t.at(i, j)) > Eps {
				col = j
				break
			}
		}
		if col < 0 {
			t.removeRow(i) // redundant constraint; do not advance i
			continue
		}
		if err := t.pivot(i, col); err != nil {
			return err
		}
		i++
	}

	return nil
}

// removeRow deletes constraint row i (keeping the objective row last) and
// its basis binding.
func (t *tableau) removeRow(i int) {
	next := mat.NewDense(t.rows, t.width()+1, nil)
	for r, dst := 0, 0; r <= t.rows; r++ {
		if r == i {
			continue
		}
		copy(next.RawRowView(dst), t.data.RawRowView(r))
		dst++
	}
	t.data = next
	t.rows--
	t.basis = append(t.basis[:i], t.basis[i+1:]...)
}

// dropArtificials removes every artificial column and remaps the basis to
// the compacted indices. Callers ensure no basis entry is artificial.
func (t *tableau) dropArtificials() {
	remap := make([]int, t.width())
	keep := 0
	for j := 0; j < t.width(); j++ {
		if t.kinds[j] == colArtificial {
			remap[j] = -1
			continue
		}
		remap[j] = keep
		keep++
	}

	next := mat.NewDense(t.rows+1, keep+1, nil)
	labels := make([]string, keep)
	kinds := make([]colKind, keep)
	for j := 0; j < t.width(); j++ {
		if remap[j] < 0 {
			continue
		}
		labels[remap[j]] = t.labels[j]
		kinds[remap[j]] = t.kinds[j]
	}
	for r := 0; r <= t.rows; r++ {
		src := t.data.RawRowView(r)
		dst := next.RawRowView(r)
		for j := 0; j < t.width(); j++ {
			if remap[j] >= 0 {
				dst[remap[j]] = src[j]
			}
		}
		dst[keep] = src[t.width()]
	}

	t.data = next
	t.labels = labels
	t.kinds = kinds
	for i, b := range t.basis {
		t.basis[i] = remap[b]
	}
}

// restoreObjective rewrites the objective row for Phase II: original
// internal coefficients for the decision columns, zero elsewhere, then the
// term of every currently-basic column is eliminated by subtracting its
// basic row scaled by that coefficient. This re-derives correct reduced
// costs and leaves the corner cell at minus the current objective value.
func (t *tableau) restoreObjective(intObj []float64) {
	obj := t.data.RawRowView(t.rows)
	for j := range obj {
		obj[j] = 0
	}
	copy(obj, intObj)

	for i := 0; i < t.rows; i++ {
		c := obj[t.basis[i]]
		if c == 0 {
			continue
		}
		floats.AddScaled(obj, -c, t.data.RawRowView(i))
	}
	t.snap()
}
