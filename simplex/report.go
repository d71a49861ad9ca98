// SPDX-License-Identifier: MIT

package simplex

// Result assembly: pure post-processing of the terminal tableau. The
// rendering layer consumes Result alone and never reaches into tableau
// internals.

// result packages the terminal state of a run. The decision-variable map
// and objective value are populated only for StatusOptimal: basic rows with
// a decision column contribute their rhs, every other decision variable is
// zero, and slack/surplus columns are excluded. All surfaced values pass
// the snap rule.
func (e *engine) result(status Status) Result {
	res := Result{Status: status, Iterations: e.trace}
	if status != StatusOptimal {
		return res
	}

	t := e.t
	solution := make(map[string]float64, t.n)
	for j := 0; j < t.n; j++ {
		solution[t.labels[j]] = 0
	}
	for i, b := range t.basis {
		if b < t.n {
			solution[t.labels[b]] = snapValue(t.rhs(i))
		}
	}

	res.Solution = solution
	res.ObjectiveValue = t.reportedObjective(e.dir)

	return res
}
