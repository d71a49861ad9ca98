// Package lptoolkit is a step-by-step linear-programming workbench:
// model small LP problems, solve them with tableau simplex methods,
// and inspect every pivot on the way to the answer.
//
// 🚀 What is linear-programming-toolkit?
//
//	A deterministic, classroom-grade solver family that brings together:
//		• Problem modeling: direction, objective, typed ≤ / ≥ / = constraints
//		• Primal simplex: the classic Dantzig tableau method for ≤ systems
//		• Dual simplex: ≥ systems from a dual-feasible start
//		• Two-phase simplex: mixed and equality constraints via artificials
//		• Full iteration traces: tableau snapshot, pivot, entering/leaving variable
//
// ✨ Why choose it?
//
//   - Reproducible – smallest-index tie-breaks, identical traces on identical input
//   - Honest – infeasible / unbounded / pivot-budget outcomes are typed statuses, never panics
//   - Inspectable – every pivot is captured as an immutable snapshot for manual verification
//   - Dense & simple – gonum-backed tableaux sized for hand-checked problems
//
// Everything is organized under two subpackages:
//
//	lp/      — Problem, Constraint, Direction, Relation & pre-solve validation
//	simplex/ — Tableau engines, phase coordination, iteration traces, results
//
// Quick sketch:
//
//	p := lp.NewProblem(lp.Maximize, []float64{40, 30},
//	    lp.LessEq([]float64{2, 1}, 8),
//	    lp.LessEq([]float64{1, 2}, 10),
//	)
//	res, err := simplex.Solve(p, nil)
//	// res.Status == simplex.StatusOptimal, res.ObjectiveValue == 200
//
// See each subpackage's doc.go for contracts, tolerances and worked examples.
package lptoolkit
