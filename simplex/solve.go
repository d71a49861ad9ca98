// SPDX-License-Identifier: MIT

// Package simplex - unified dispatcher for the engine family.
//
// Solve is the canonical entry point: validate the problem, resolve the
// method (auto-detection inspects the problem shape), run the matching
// engine, and package the terminal result. Mathematical outcomes are
// statuses; only malformed input and bad options produce errors.
package simplex

import (
	"fmt"

	"github.com/Eljosek/linear-programming-toolkit/lp"
)

// engine owns the mutable state of one solve: the live tableau, the
// remaining pivot budget and the accumulated trace. Every Solve call
// constructs a fresh engine, so concurrent solves never share state.
type engine struct {
	t     *tableau
	dir   lp.Direction
	left  int
	trace []Iteration
}

// record appends one immutable snapshot of the tableau after a pivot.
func (e *engine) record(phase, row, col int, entering, leaving string) {
	objective := e.t.reportedObjective(e.dir)
	if phase == 1 {
		// Phase-I snapshots report the remaining artificial sum.
		objective = snapValue(e.t.corner())
	}
	e.trace = append(e.trace, e.t.snapshot(phase, row, col, entering, leaving, objective))
}

// Solve runs the simplex engine family on p.
//
// opts may be nil (DefaultOptions). Errors: lp sentinels for malformed
// input, ErrBadOptions for an invalid configuration, ErrMethodMismatch
// when a forced method cannot start on p's shape. Every other outcome —
// optimal, infeasible, unbounded, pivot ceiling — is a Status on the
// returned Result, with the full pivot trace attached.
//
// Determinism: identical p and opts reproduce identical traces and
// identical solutions.
//
// Complexity: O(pivots · m · (n+k)) time; one (m+1)×(n+k+1) tableau plus
// one snapshot per pivot in memory.
func Solve(p lp.Problem, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.MaxPivots <= 0 || o.Method < MethodAuto || o.Method > MethodTwoPhase {
		return Result{}, ErrBadOptions
	}
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	method := o.Method
	if method == MethodAuto {
		method = detectMethod(p)
	}

	e := &engine{dir: p.Dir, left: o.MaxPivots}
	var (
		status Status
		err    error
	)
	switch method {
	case MethodPrimal:
		if !primalReady(p) {
			return Result{}, fmt.Errorf("primal engine: %w", ErrMethodMismatch)
		}
		e.t = newStandardTableau(p)
		status, err = e.runPrimal(0)

	case MethodDual:
		e.t = newStandardTableau(p)
		if !dualReady(p) || !e.t.dualFeasible() {
			return Result{}, fmt.Errorf("dual engine: %w", ErrMethodMismatch)
		}
		status, err = e.runDual(0)

	default: // MethodTwoPhase
		e.t = newPhaseOneTableau(p)
		status, err = e.runTwoPhase(p)
	}
	if err != nil {
		return Result{}, err
	}

	return e.result(status), nil
}

// primalReady reports whether p admits a primal start: every constraint ≤
// with non-negative rhs (the slack basis is immediately feasible).
func primalReady(p lp.Problem) bool {
	for _, c := range p.Constraints {
		if c.Rel != lp.LE || c.RHS < -Eps {
			return false
		}
	}

	return true
}

// dualReady reports whether p admits a dual start: no equality rows (the
// standard tableau cannot host them) and a dual-feasible objective, i.e.
// no internal objective coefficient above Eps.
func dualReady(p lp.Problem) bool {
	for _, c := range p.Constraints {
		if c.Rel == lp.EQ {
			return false
		}
	}
	for _, c := range internalObjective(p) {
		if c > Eps {
			return false
		}
	}

	return true
}

// detectMethod picks the engine for MethodAuto: primal when the slack
// basis is feasible, dual when the start is dual-feasible, two-phase for
// everything else.
func detectMethod(p lp.Problem) Method {
	switch {
	case primalReady(p):
		return MethodPrimal
	case dualReady(p):
		return MethodDual
	default:
		return MethodTwoPhase
	}
}
