// SPDX-License-Identifier: MIT

// Package lp: problem model types and the package sentinel error set.
// All validation failures MUST be one of these sentinels (possibly wrapped
// with fmt.Errorf("ctx: %w", ErrX)); callers match them via errors.Is.
package lp

import "errors"

// Direction selects the optimization sense of a Problem.
type Direction int

const (
	// Maximize the objective function.
	Maximize Direction = iota

	// Minimize the objective function.
	Minimize
)

// String returns the lowercase human form ("max" / "min") used in traces.
func (d Direction) String() string {
	switch d {
	case Maximize:
		return "max"
	case Minimize:
		return "min"
	default:
		return "direction(?)"
	}
}

// Relation is the comparison of a constraint's left-hand side to its RHS.
type Relation int

const (
	// LE is a ≤ constraint.
	LE Relation = iota

	// GE is a ≥ constraint.
	GE

	// EQ is an = constraint.
	EQ
)

// String returns the ASCII operator form ("<=", ">=", "=").
func (r Relation) String() string {
	switch r {
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "="
	default:
		return "relation(?)"
	}
}

// Constraint is one linear restriction: Coeffs·x  Rel  RHS.
//
// Invariant: len(Coeffs) equals the problem's variable count n.
type Constraint struct {
	// Coeffs holds one coefficient per decision variable.
	Coeffs []float64

	// Rel is the comparison operator.
	Rel Relation

	// RHS is the right-hand-side constant.
	RHS float64
}

// Problem is a complete linear program over non-negative variables.
//
// The zero value is not a valid problem; build one with NewProblem or a
// struct literal and check it with Validate before solving.
type Problem struct {
	// Dir is the optimization sense.
	Dir Direction

	// Objective holds the objective coefficients c1..cn.
	Objective []float64

	// Constraints is the restriction list; must be non-empty.
	Constraints []Constraint
}

// NumVariables returns n, the number of decision variables.
func (p Problem) NumVariables() int { return len(p.Objective) }

// NewProblem assembles a Problem from its parts.
// It performs no validation; call Validate before solving.
func NewProblem(dir Direction, objective []float64, constraints ...Constraint) Problem {
	return Problem{Dir: dir, Objective: objective, Constraints: constraints}
}

// LessEq builds a ≤ constraint.
func LessEq(coeffs []float64, rhs float64) Constraint {
	return Constraint{Coeffs: coeffs, Rel: LE, RHS: rhs}
}

// GreaterEq builds a ≥ constraint.
func GreaterEq(coeffs []float64, rhs float64) Constraint {
	return Constraint{Coeffs: coeffs, Rel: GE, RHS: rhs}
}

// Equal builds an = constraint.
func Equal(coeffs []float64, rhs float64) Constraint {
	return Constraint{Coeffs: coeffs, Rel: EQ, RHS: rhs}
}

var (
	// ErrEmptyObjective is returned when the objective vector has no entries.
	ErrEmptyObjective = errors.New("lp: objective is empty")

	// ErrNoConstraints is returned when the constraint list is empty.
	ErrNoConstraints = errors.New("lp: constraint set is empty")

	// ErrDimensionMismatch is returned when a constraint's coefficient
	// vector length differs from the objective length n.
	ErrDimensionMismatch = errors.New("lp: constraint dimension mismatch")

	// ErrNonFinite is returned when any coefficient or RHS is NaN or ±Inf.
	ErrNonFinite = errors.New("lp: NaN or Inf coefficient")

	// ErrBadDirection is returned for a Direction outside {Maximize, Minimize}.
	ErrBadDirection = errors.New("lp: unknown optimization direction")

	// ErrBadRelation is returned for a Relation outside {LE, GE, EQ}.
	ErrBadRelation = errors.New("lp: unknown constraint relation")
)
