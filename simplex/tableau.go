// SPDX-License-Identifier: MIT

// Package simplex: the tableau primitive. A dense augmented matrix
// (constraint rows + objective row, rhs as the last column) with
// basic-variable bookkeeping. All three engines mutate a tableau through
// exactly one operation: pivot.
package simplex

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/Eljosek/linear-programming-toolkit/lp"
)

// colKind tags every structural column of a tableau.
type colKind int

const (
	colDecision colKind = iota
	colSlack
	colSurplus
	colArtificial
)

// tableau is the augmented matrix owned by one engine run.
//
// Layout: data is (rows+1) × (len(labels)+1). Row indices 0..rows-1 are
// constraint rows, row `rows` is the objective row. Column indices
// 0..len(labels)-1 are structural columns (decision variables first),
// column len(labels) is the rhs.
//
// Sign convention: the objective row holds reduced costs of the internal
// maximize form directly, so entry > Eps always means "entering this column
// improves the objective". The corner cell (objective row, rhs column)
// holds the NEGATED internal objective value.
//
// Invariant: len(basis) == rows, basis[i] is the column whose unit vector
// is row i, and after every pivot the pivot column is zero in every row
// except its basic row.
type tableau struct {
	data   *mat.Dense
	rows   int // constraint rows m
	n      int // decision variables
	basis  []int
	labels []string
	kinds  []colKind
}

// width returns the number of structural columns.
func (t *tableau) width() int { return len(t.labels) }

// at returns the cell at (row, col) of the augmented matrix.
func (t *tableau) at(row, col int) float64 { return t.data.At(row, col) }

// rhs returns the right-hand-side entry of a constraint row.
func (t *tableau) rhs(row int) float64 { return t.data.At(row, t.width()) }

// reducedCost returns the objective-row entry of col: the signed potential
// to improve the internal (maximize) objective by entering col.
func (t *tableau) reducedCost(col int) float64 { return t.data.At(t.rows, col) }

// corner returns the objective row's rhs cell, i.e. minus the internal
// objective value (and, on a Phase-I tableau, the current artificial sum).
func (t *tableau) corner() float64 { return t.data.At(t.rows, t.width()) }

// reportedObjective converts the corner cell into the caller's direction
// and applies the snap rule.
func (t *tableau) reportedObjective(dir lp.Direction) float64 {
	z := -t.corner() // internal maximize value
	if dir == lp.Minimize {
		z = -z
	}

	return snapValue(z)
}

// pivot performs one Gauss-Jordan elimination step on (row, col): the pivot
// row is divided by the pivot entry, every other row (objective row
// included) has its col entry eliminated, and row is rebound to col.
//
// Precondition: |entry(row, col)| > Eps; violating it returns ErrZeroPivot.
// Postcondition: every cell with |v| < SnapEps is exactly 0.
//
// Complexity: O(rows · width).
func (t *tableau) pivot(row, col int) error {
	prow := t.data.RawRowView(row)
	entry := prow[col]
	if math.Abs(entry) <= Eps {
		return fmt.Errorf("pivot (%d,%d): %w", row, col, ErrZeroPivot)
	}

	floats.Scale(1/entry, prow)
	for r := 0; r <= t.rows; r++ {
		if r == row {
			continue
		}
		other := t.data.RawRowView(r)
		factor := other[col]
		if factor == 0 {
			continue
		}
		floats.AddScaled(other, -factor, prow)
	}

	t.basis[row] = col
	t.snap()

	return nil
}

// snap drives floating-point noise (|v| < SnapEps, e.g. 4.4e-16 left by
// elimination) to exactly 0 across the whole tableau.
func (t *tableau) snap() {
	raw := t.data.RawMatrix().Data
	for i, v := range raw {
		if v < SnapEps && v > -SnapEps {
			raw[i] = 0
		}
	}
}

// snapshot captures the tableau right after a pivot as an independent
// Iteration; no slice aliases the live tableau.
func (t *tableau) snapshot(phase, row, col int, entering, leaving string, objective float64) Iteration {
	cells := make([][]float64, t.rows+1)
	for r := 0; r <= t.rows; r++ {
		cells[r] = make([]float64, t.width()+1)
		copy(cells[r], t.data.RawRowView(r))
	}

	basis := make([]int, len(t.basis))
	copy(basis, t.basis)
	columns := make([]string, len(t.labels))
	copy(columns, t.labels)

	return Iteration{
		Phase:     phase,
		Row:       row,
		Col:       col,
		Entering:  entering,
		Leaving:   leaving,
		Objective: objective,
		Cells:     cells,
		Basis:     basis,
		Columns:   columns,
	}
}

// internalObjective returns the maximize-form objective coefficients:
// the problem's own for Maximize, negated for Minimize.
func internalObjective(p lp.Problem) []float64 {
	obj := make([]float64, len(p.Objective))
	copy(obj, p.Objective)
	if p.Dir == lp.Minimize {
		floats.Scale(-1, obj)
	}

	return obj
}

// newStandardTableau builds the single-phase tableau shared by the primal
// and dual engines: one slack column per row, slack basis. ≥ rows are
// negated into ≤ form first (their rhs goes negative, which is exactly the
// dual engine's starting point). Equality rows are not representable here;
// the dispatcher routes them to the two-phase builder.
func newStandardTableau(p lp.Problem) *tableau {
	n := p.NumVariables()
	m := len(p.Constraints)
	width := n + m

	t := &tableau{
		data:   mat.NewDense(m+1, width+1, nil),
		rows:   m,
		n:      n,
		basis:  make([]int, m),
		labels: make([]string, width),
		kinds:  make([]colKind, width),
	}
	for j := 0; j < n; j++ {
		t.labels[j] = fmt.Sprintf("x%d", j+1)
	}

	for i, c := range p.Constraints {
		sign := 1.0
		if c.Rel == lp.GE {
			sign = -1
		}
		row := t.data.RawRowView(i)
		for j, a := range c.Coeffs {
			row[j] = sign * a
		}
		slack := n + i
		row[slack] = 1
		row[width] = sign * c.RHS
		t.labels[slack] = fmt.Sprintf("s%d", i+1)
		t.kinds[slack] = colSlack
		t.basis[i] = slack
	}

	obj := t.data.RawRowView(m)
	copy(obj, internalObjective(p))
	t.snap()

	return t
}

// newPhaseOneTableau builds the auxiliary tableau for two-phase runs.
//
// Rows are first normalized to rhs ≥ 0 (negating the row flips its
// relation). Then, per row in constraint order: ≤ gets a slack (its natural
// basic column); ≥ gets a surplus column (-1) plus a basic artificial;
// = gets a basic artificial. The objective row expresses "maximize minus
// the artificial sum" projected through the artificial rows, so the primal
// engine runs on it unmodified and the corner cell always equals the
// remaining artificial sum.
func newPhaseOneTableau(p lp.Problem) *tableau {
	n := p.NumVariables()
	m := len(p.Constraints)

	// Normalize rhs signs up front; extra column counts depend on it.
	coeffs := make([][]float64, m)
	rels := make([]lp.Relation, m)
	rhs := make([]float64, m)
	extra := 0
	for i, c := range p.Constraints {
		coeffs[i] = make([]float64, n)
		copy(coeffs[i], c.Coeffs)
		rels[i], rhs[i] = c.Rel, c.RHS
		if rhs[i] < 0 {
			floats.Scale(-1, coeffs[i])
			rhs[i] = -rhs[i]
			switch rels[i] {
			case lp.LE:
				rels[i] = lp.GE
			case lp.GE:
				rels[i] = lp.LE
			}
		}
		switch rels[i] {
		case lp.LE:
			extra++ // slack
		case lp.GE:
			extra += 2 // surplus + artificial
		case lp.EQ:
			extra++ // artificial
		}
	}

	width := n + extra
	t := &tableau{
		data:   mat.NewDense(m+1, width+1, nil),
		rows:   m,
		n:      n,
		basis:  make([]int, m),
		labels: make([]string, width),
		kinds:  make([]colKind, width),
	}
	for j := 0; j < n; j++ {
		t.labels[j] = fmt.Sprintf("x%d", j+1)
	}

	next := n
	nSlack, nSurplus, nArtificial := 0, 0, 0
	addCol := func(kind colKind) int {
		col := next
		next++
		t.kinds[col] = kind
		switch kind {
		case colSlack:
			nSlack++
			t.labels[col] = fmt.Sprintf("s%d", nSlack)
		case colSurplus:
			nSurplus++
			t.labels[col] = fmt.Sprintf("e%d", nSurplus)
		case colArtificial:
			nArtificial++
			t.labels[col] = fmt.Sprintf("a%d", nArtificial)
		}

		return col
	}

	for i := 0; i < m; i++ {
		row := t.data.RawRowView(i)
		copy(row, coeffs[i])
		row[width] = rhs[i]
		switch rels[i] {
		case lp.LE:
			t.basis[i] = addCol(colSlack)
			row[t.basis[i]] = 1
		case lp.GE:
			row[addCol(colSurplus)] = -1
			t.basis[i] = addCol(colArtificial)
			row[t.basis[i]] = 1
		case lp.EQ:
			t.basis[i] = addCol(colArtificial)
			row[t.basis[i]] = 1
		}
	}

	// Auxiliary objective: sum the artificial rows into the objective row
	// (corner accumulates the artificial sum), then zero the artificial
	// columns themselves — they are basic with reduced cost 0.
	obj := t.data.RawRowView(m)
	for i := 0; i < m; i++ {
		if t.kinds[t.basis[i]] == colArtificial {
			floats.Add(obj, t.data.RawRowView(i))
		}
	}
	for j := 0; j < width; j++ {
		if t.kinds[j] == colArtificial {
			obj[j] = 0
		}
	}
	t.snap()

	return t
}
