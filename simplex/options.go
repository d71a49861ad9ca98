// SPDX-License-Identifier: MIT

package simplex

// Method selects which engine drives a solve.
type Method int

const (
	// MethodAuto picks an engine from the problem shape: all-≤ with
	// non-negative rhs → primal; dual-feasible objective without equality
	// constraints → dual; anything else → two-phase.
	MethodAuto Method = iota

	// MethodPrimal forces the primal simplex engine. Requires every
	// constraint to be ≤ with rhs ≥ 0.
	MethodPrimal

	// MethodDual forces the dual simplex engine. Requires no equality
	// constraints and a dual-feasible objective (every internal reduced
	// cost ≤ Eps at the start).
	MethodDual

	// MethodTwoPhase forces the two-phase coordinator. Valid for any
	// well-formed problem.
	MethodTwoPhase
)

// String returns the lowercase selector name.
func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodPrimal:
		return "primal"
	case MethodDual:
		return "dual"
	case MethodTwoPhase:
		return "two-phase"
	default:
		return "method(?)"
	}
}

// DefaultMaxPivots bounds the pivots of one solve, across both phases of a
// two-phase run. Smallest-index tie-breaking does not rule out cycling on
// degenerate problems, so the ceiling is a required safety valve; crossing
// it terminates the run with StatusNumericLimit.
const DefaultMaxPivots = 10000

// Options configures one solve.
//
// Fields:
//   - Method    — engine selection; MethodAuto inspects the problem shape.
//   - MaxPivots — hard pivot ceiling; must be positive.
//
// The zero value is NOT valid (MaxPivots must be > 0); start from
// DefaultOptions and adjust.
type Options struct {
	Method    Method
	MaxPivots int
}

// DefaultOptions returns the documented defaults: automatic method
// selection and a 10000-pivot ceiling.
func DefaultOptions() Options {
	return Options{Method: MethodAuto, MaxPivots: DefaultMaxPivots}
}
