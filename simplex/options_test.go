package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eljosek/linear-programming-toolkit/simplex"
)

// TestDefaultOptions pins the documented defaults.
func TestDefaultOptions(t *testing.T) {
	o := simplex.DefaultOptions()
	assert.Equal(t, simplex.MethodAuto, o.Method)
	assert.Equal(t, simplex.DefaultMaxPivots, o.MaxPivots)
}

// TestSolve_BadOptions rejects non-positive ceilings and unknown methods.
func TestSolve_BadOptions(t *testing.T) {
	o := simplex.DefaultOptions()
	o.MaxPivots = 0
	_, err := simplex.Solve(maxProduction(), &o)
	require.ErrorIs(t, err, simplex.ErrBadOptions)

	o = simplex.DefaultOptions()
	o.Method = simplex.Method(99)
	_, err = simplex.Solve(maxProduction(), &o)
	require.ErrorIs(t, err, simplex.ErrBadOptions)
}

// TestSolve_NilOptionsMeansDefaults ensures nil opts behaves exactly like
// DefaultOptions.
func TestSolve_NilOptionsMeansDefaults(t *testing.T) {
	def := simplex.DefaultOptions()
	a := solveOK(t, maxProduction(), nil)
	b := solveOK(t, maxProduction(), &def)
	require.Equal(t, a, b)
}

// TestMethodString pins the selector names.
func TestMethodString(t *testing.T) {
	assert.Equal(t, "auto", simplex.MethodAuto.String())
	assert.Equal(t, "primal", simplex.MethodPrimal.String())
	assert.Equal(t, "dual", simplex.MethodDual.String())
	assert.Equal(t, "two-phase", simplex.MethodTwoPhase.String())
}
