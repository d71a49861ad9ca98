// Package simplex_test: shared fixtures and invariant helpers for the
// engine tests. Fixtures come from the classic textbook problems the
// toolkit is meant to reproduce by hand.
package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eljosek/linear-programming-toolkit/lp"
	"github.com/Eljosek/linear-programming-toolkit/simplex"
)

// maxProduction: max 40x1+30x2, 2x1+x2 ≤ 8, x1+2x2 ≤ 10 → z*=200 at (2,4).
func maxProduction() lp.Problem {
	return lp.NewProblem(lp.Maximize, []float64{40, 30},
		lp.LessEq([]float64{2, 1}, 8),
		lp.LessEq([]float64{1, 2}, 10),
	)
}

// minCover: min 8x1+12x2, x1+2x2 ≥ 10, 2x1+x2 ≥ 12 → z*=208/3 at (14/3, 8/3).
func minCover() lp.Problem {
	return lp.NewProblem(lp.Minimize, []float64{8, 12},
		lp.GreaterEq([]float64{1, 2}, 10),
		lp.GreaterEq([]float64{2, 1}, 12),
	)
}

// unboundedRay: max x1+x2 with only -x1+x2 ≤ 1; the region is open upward.
func unboundedRay() lp.Problem {
	return lp.NewProblem(lp.Maximize, []float64{1, 1},
		lp.LessEq([]float64{-1, 1}, 1),
	)
}

// emptyRegion: x1 ≤ 1 and x1 ≥ 5 cannot both hold.
func emptyRegion() lp.Problem {
	return lp.NewProblem(lp.Maximize, []float64{1, 1},
		lp.LessEq([]float64{1, 0}, 1),
		lp.GreaterEq([]float64{1, 0}, 5),
	)
}

// mixedRelations: min 2x1+3x2+x3 with ≥, = and ≤ rows → z*=15.
func mixedRelations() lp.Problem {
	return lp.NewProblem(lp.Minimize, []float64{2, 3, 1},
		lp.GreaterEq([]float64{1, 2, 1}, 10),
		lp.Equal([]float64{1, 1, 0}, 5),
		lp.LessEq([]float64{2, 0, 1}, 8),
	)
}

// solveOK runs Solve and fails the test on an input error.
func solveOK(t *testing.T, p lp.Problem, opts *simplex.Options) simplex.Result {
	t.Helper()
	res, err := simplex.Solve(p, opts)
	require.NoError(t, err)

	return res
}

// assertBasisInvariant checks, for every snapshot, that the number of
// distinct basic-variable bindings equals the constraint row count.
func assertBasisInvariant(t *testing.T, res simplex.Result) {
	t.Helper()
	for k, it := range res.Iterations {
		require.Len(t, it.Basis, len(it.Cells)-1, "iteration %d: one binding per constraint row", k)
		seen := make(map[int]bool, len(it.Basis))
		for _, b := range it.Basis {
			assert.False(t, seen[b], "iteration %d: duplicate basic column %d", k, b)
			seen[b] = true
		}
	}
}

// assertSolutionFeasible substitutes the reported solution into every
// original constraint and the objective, within Eps.
func assertSolutionFeasible(t *testing.T, p lp.Problem, res simplex.Result) {
	t.Helper()
	require.Equal(t, simplex.StatusOptimal, res.Status)

	value := func(j int) float64 {
		return res.Solution[varName(j)]
	}
	for i, c := range p.Constraints {
		lhs := 0.0
		for j, a := range c.Coeffs {
			lhs += a * value(j)
		}
		switch c.Rel {
		case lp.LE:
			assert.LessOrEqual(t, lhs, c.RHS+simplex.Eps, "constraint %d violated", i+1)
		case lp.GE:
			assert.GreaterOrEqual(t, lhs, c.RHS-simplex.Eps, "constraint %d violated", i+1)
		case lp.EQ:
			assert.InDelta(t, c.RHS, lhs, simplex.Eps, "constraint %d violated", i+1)
		}
	}

	z := 0.0
	for j, c := range p.Objective {
		z += c * value(j)
	}
	assert.InDelta(t, res.ObjectiveValue, z, simplex.Eps, "objective does not match solution")
}

// varName mirrors the engine's decision-variable labels.
func varName(j int) string {
	return []string{"x1", "x2", "x3", "x4", "x5", "x6", "x7", "x8"}[j]
}
