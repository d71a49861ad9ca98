package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eljosek/linear-programming-toolkit/lp"
	"github.com/Eljosek/linear-programming-toolkit/simplex"
)

// forceTwoPhase routes a problem through the two-phase coordinator
// regardless of what auto-detection would pick.
func forceTwoPhase() *simplex.Options {
	o := simplex.DefaultOptions()
	o.Method = simplex.MethodTwoPhase

	return &o
}

// TestTwoPhase_Infeasible verifies that a positive terminal artificial sum
// classifies the run INFEASIBLE without entering Phase II.
func TestTwoPhase_Infeasible(t *testing.T) {
	res := solveOK(t, emptyRegion(), nil)

	require.Equal(t, simplex.StatusInfeasible, res.Status)
	assert.Nil(t, res.Solution)
	for _, it := range res.Iterations {
		assert.Equal(t, 1, it.Phase, "no Phase-II iteration may exist on an infeasible run")
	}
	assertBasisInvariant(t, res)
}

// TestTwoPhase_MixedRelations solves the ≥ / = / ≤ system and checks the
// optimum against the round-trip property (the optimal face is not a
// single vertex, so only the value is pinned).
func TestTwoPhase_MixedRelations(t *testing.T) {
	res := solveOK(t, mixedRelations(), nil)

	require.Equal(t, simplex.StatusOptimal, res.Status)
	assert.InDelta(t, 15, res.ObjectiveValue, 1e-6)
	assertBasisInvariant(t, res)
	assertSolutionFeasible(t, mixedRelations(), res)

	// Phase labels: a prefix of 1s followed by 2s.
	sawPhase2 := false
	for k, it := range res.Iterations {
		require.Contains(t, []int{1, 2}, it.Phase)
		if it.Phase == 2 {
			sawPhase2 = true
		} else {
			assert.False(t, sawPhase2, "iteration %d: Phase-I snapshot after Phase II began", k)
		}
	}
}

// TestTwoPhase_PhaseOneObjectiveIsArtificialSum checks that Phase-I
// snapshots report the remaining artificial sum and that it reaches zero
// on a feasible problem.
func TestTwoPhase_PhaseOneObjectiveIsArtificialSum(t *testing.T) {
	res := solveOK(t, mixedRelations(), nil)

	var lastPhase1 float64
	for _, it := range res.Iterations {
		if it.Phase == 1 {
			assert.GreaterOrEqual(t, it.Objective, -simplex.Eps, "artificial sum cannot go negative")
			lastPhase1 = it.Objective
		}
	}
	assert.InDelta(t, 0, lastPhase1, simplex.Eps, "Phase I must end with all artificials at zero")
}

// TestTwoPhase_GreaterEqMaximization reproduces the workshop problem
// max 3x1+5x2 with two ≥ rows and an upper bound: optimum 27 at (4, 3).
func TestTwoPhase_GreaterEqMaximization(t *testing.T) {
	p := lp.NewProblem(lp.Maximize, []float64{3, 5},
		lp.GreaterEq([]float64{4, 1}, 4),
		lp.GreaterEq([]float64{-1, 2}, 2),
		lp.LessEq([]float64{0, 1}, 3),
	)
	res := solveOK(t, p, nil)

	require.Equal(t, simplex.StatusOptimal, res.Status)
	assert.InDelta(t, 27, res.ObjectiveValue, 1e-6)
	assert.InDelta(t, 4, res.Solution["x1"], 1e-6)
	assert.InDelta(t, 3, res.Solution["x2"], 1e-6)
	assertBasisInvariant(t, res)
	assertSolutionFeasible(t, p, res)
}

// TestTwoPhase_AgreesWithDual forces the two-phase coordinator onto the
// dual engine's cover problem; both must land on the same optimum.
func TestTwoPhase_AgreesWithDual(t *testing.T) {
	viaDual := solveOK(t, minCover(), nil)
	viaTwoPhase := solveOK(t, minCover(), forceTwoPhase())

	require.Equal(t, simplex.StatusOptimal, viaTwoPhase.Status)
	assert.InDelta(t, viaDual.ObjectiveValue, viaTwoPhase.ObjectiveValue, 1e-6)
	assert.InDelta(t, viaDual.Solution["x1"], viaTwoPhase.Solution["x1"], 1e-6)
	assert.InDelta(t, viaDual.Solution["x2"], viaTwoPhase.Solution["x2"], 1e-6)
	assertSolutionFeasible(t, minCover(), viaTwoPhase)
}

// TestTwoPhase_RedundantEquality exercises the Phase-I cleanup path: a
// linearly dependent equality leaves an artificial basic at zero whose row
// must be removed before Phase II.
func TestTwoPhase_RedundantEquality(t *testing.T) {
	p := lp.NewProblem(lp.Maximize, []float64{1, 0},
		lp.Equal([]float64{1, 1}, 2),
		lp.Equal([]float64{2, 2}, 4), // same hyperplane, doubled
	)
	res := solveOK(t, p, nil)

	require.Equal(t, simplex.StatusOptimal, res.Status)
	assert.InDelta(t, 2, res.ObjectiveValue, 1e-6)
	assert.InDelta(t, 2, res.Solution["x1"], 1e-6)
	assert.InDelta(t, 0, res.Solution["x2"], 1e-6)
	assertSolutionFeasible(t, p, res)
}

// TestTwoPhase_UnboundedPhase2 verifies that Phase II can still classify
// an unbounded objective after a successful Phase I.
func TestTwoPhase_UnboundedPhase2(t *testing.T) {
	p := lp.NewProblem(lp.Maximize, []float64{1, 1},
		lp.GreaterEq([]float64{1, 0}, 1),
	)
	res := solveOK(t, p, nil)

	assert.Equal(t, simplex.StatusUnbounded, res.Status)
	assert.Nil(t, res.Solution)
}

// TestTwoPhase_Determinism reruns the mixed system and requires identical
// traces across both phases.
func TestTwoPhase_Determinism(t *testing.T) {
	first := solveOK(t, mixedRelations(), nil)
	second := solveOK(t, mixedRelations(), nil)
	require.Equal(t, first, second)
}
