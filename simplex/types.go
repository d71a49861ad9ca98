// SPDX-License-Identifier: MIT

// Package simplex: shared numeric policy, terminal statuses, trace and
// result types, and the package sentinel error set.
package simplex

import "errors"

// Numeric policy. One shared constant pair governs every comparison in the
// package; no component re-derives its own tolerance.
const (
	// Eps is the tolerance for every "essentially zero / positive / negative"
	// sign test: reduced costs, ratio-test denominators, rhs feasibility,
	// Phase-I artificial sums.
	Eps = 1e-9

	// SnapEps is the snap-to-zero threshold: after every pivot, and before
	// any value is surfaced, |v| < SnapEps collapses to exactly 0. This is a
	// hard contract (status classification relies on it), not a cosmetic pass.
	SnapEps = 1e-10
)

// Status classifies how a solve terminated. The enum is closed: every run
// ends in exactly one of these four states.
type Status int

const (
	// StatusOptimal: an optimal basic solution was reached.
	StatusOptimal Status = iota

	// StatusInfeasible: the feasible region is empty (Phase-I artificial sum
	// stayed positive, or the dual simplex found no restoring column).
	StatusInfeasible

	// StatusUnbounded: the objective improves without bound along an
	// entering column with no constraining row.
	StatusUnbounded

	// StatusNumericLimit: the pivot ceiling was exhausted before a
	// mathematical outcome; the likely cause is degenerate cycling.
	StatusNumericLimit
)

// String returns the lowercase reporting form of the status.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusNumericLimit:
		return "numeric limit"
	default:
		return "status(?)"
	}
}

// Iteration is one immutable pivot snapshot. All slices are deep copies;
// nothing aliases the live tableau, so a trace stays valid after the
// tableau moves on.
type Iteration struct {
	// Phase is 1 or 2 inside a two-phase run, 0 for single-phase engines.
	Phase int

	// Row and Col locate the pivot that produced this snapshot.
	Row, Col int

	// Entering and Leaving name the variables exchanged by the pivot
	// (e.g. "x2" entering, "s1" leaving).
	Entering string
	Leaving  string

	// Objective is the objective value after the pivot, in the caller's
	// direction. Phase-1 snapshots carry the remaining artificial sum.
	Objective float64

	// Cells holds the full tableau after the pivot, one row per constraint
	// plus the objective row, each with the rhs as its last entry.
	Cells [][]float64

	// Basis holds, per constraint row, the column index basic in that row.
	Basis []int

	// Columns labels every structural column of Cells ("x1", "s1", "e1", "a1").
	Columns []string
}

// Result is the terminal outcome of one solve. Constructed once, immutable
// thereafter.
type Result struct {
	// Status is the terminal classification.
	Status Status

	// ObjectiveValue is the optimal objective in the caller's direction.
	// Meaningful only when Status == StatusOptimal.
	ObjectiveValue float64

	// Solution maps decision-variable names ("x1".."xn") to values.
	// Slack, surplus and artificial columns are excluded. Nil unless
	// Status == StatusOptimal.
	Solution map[string]float64

	// Iterations is the pivot trace in arrival order, across both phases
	// for two-phase runs.
	Iterations []Iteration
}

var (
	// ErrBadOptions is returned for a non-positive pivot ceiling or an
	// out-of-range method selector.
	ErrBadOptions = errors.New("simplex: invalid options")

	// ErrMethodMismatch is returned when a forced method cannot start on the
	// given problem shape (e.g. MethodPrimal on a ≥ system, MethodDual
	// without a dual-feasible objective).
	ErrMethodMismatch = errors.New("simplex: method incompatible with problem shape")

	// ErrZeroPivot reports a pivot on an entry within tolerance of zero.
	// The engines never select such a pivot; seeing this error means a bug.
	ErrZeroPivot = errors.New("simplex: pivot entry within tolerance of zero")
)

// snapValue applies the SnapEps rule to a single value before it is surfaced.
func snapValue(v float64) float64 {
	if v < SnapEps && v > -SnapEps {
		return 0
	}

	return v
}
