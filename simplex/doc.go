// SPDX-License-Identifier: MIT

// Package simplex solves dense linear programs with tableau pivoting and
// records every iteration for step-by-step inspection.
//
// 🚀 What is simplex?
//
//	One pivot primitive (Gauss-Jordan elimination on an augmented tableau)
//	driving three tightly coupled engines:
//		• Primal simplex — ≤ systems with a feasible origin
//		• Dual simplex  — ≥ systems from a dual-feasible start
//		• Two-phase     — mixed ≤ / ≥ / = systems via artificial variables
//
// ✨ Key guarantees:
//   - Deterministic: smallest-index tie-breaks for entering and leaving
//     candidates; identical problems always reproduce identical traces.
//   - Honest termination: optimal / infeasible / unbounded are typed
//     statuses, never errors; only malformed input is rejected with an error.
//   - Bounded: a hard pivot ceiling (Options.MaxPivots, default 10000)
//     converts degenerate cycling into StatusNumericLimit instead of hanging.
//   - Clean numerics: one shared tolerance Eps = 1e-9 for every sign test,
//     and every tableau cell and reported value with |v| < 1e-10 is snapped
//     to exactly 0 after each pivot.
//
// ⚙️ Usage:
//
//	p := lp.NewProblem(lp.Maximize, []float64{40, 30},
//	    lp.LessEq([]float64{2, 1}, 8),
//	    lp.LessEq([]float64{1, 2}, 10),
//	)
//	res, err := simplex.Solve(p, nil) // nil → DefaultOptions (auto method)
//	if err != nil {
//	    // malformed input (see package lp sentinels) or bad options
//	}
//	switch res.Status {
//	case simplex.StatusOptimal:
//	    _ = res.Solution["x1"] // decision variables only, slack columns excluded
//	case simplex.StatusUnbounded, simplex.StatusInfeasible, simplex.StatusNumericLimit:
//	    // inspect res.Iterations to see how the run got there
//	}
//
// Each solve owns its tableau and trace; concurrent solves of independent
// problems need no locking.
//
// Internally the engines always maximize: minimization problems are solved
// by negating the objective row and re-negating the reported value, so a
// reduced cost > Eps always means "can still improve" regardless of the
// caller's direction.
package simplex
