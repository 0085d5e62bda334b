package air

import (
	"github.com/vybium/vybium-air/internal/vybium-air/coin"
	"github.com/vybium/vybium-air/internal/vybium-air/core"
)

// BoundaryConstraintGroup bundles every BoundaryConstraint sharing a
// divisor, merged later by a random linear combination.
type BoundaryConstraintGroup struct {
	Constraints      []*BoundaryConstraint
	Divisor          *ConstraintDivisor
	DegreeAdjustment int
}

// NewBoundaryConstraintGroup builds an empty group for divisor, computing
// degree_adjustment = composition_degree + divisor.degree - trace_poly_degree.
func NewBoundaryConstraintGroup(divisor *ConstraintDivisor, tracePolyDegree, compositionDegree int) *BoundaryConstraintGroup {
	return &BoundaryConstraintGroup{
		Divisor:          divisor,
		DegreeAdjustment: compositionDegree + divisor.Degree() - tracePolyDegree,
	}
}

// Add compiles assertion a into a BoundaryConstraint and appends it to
// the group, drawing exactly one coefficient pair from c.
func (g *BoundaryConstraintGroup) Add(a *Assertion, invG *core.FieldElement, cache *core.TwiddleCache, c coin.Coin, ext *core.ExtField) error {
	constraint, err := NewBoundaryConstraint(a, invG, cache, c, ext)
	if err != nil {
		return err
	}
	g.Constraints = append(g.Constraints, constraint)
	return nil
}

// EvaluateAt accumulates every constraint's evaluation scaled by its
// composition coefficients:
//
//	Σ_c c.evaluate_at(x, state[c.register]) * (c.cc.0 + c.cc.1*xp)
//
// xp = x^degree_adjustment is supplied by the caller.
func (g *BoundaryConstraintGroup) EvaluateAt(state []*core.ExtElement, x, xp *core.ExtElement, ext *core.ExtField) *core.ExtElement {
	sum := ext.Zero()
	for _, c := range g.Constraints {
		term := c.EvaluateAt(x, state[c.Register], ext)
		coeff := c.CC[0].Add(c.CC[1].Mul(xp))
		sum = sum.Add(term.Mul(coeff))
	}
	return sum
}

// MaxPolyDegree returns max_i(len(poly_i)) - 1 across the group's
// constraints, or -1 for an empty group.
func (g *BoundaryConstraintGroup) MaxPolyDegree() int {
	max := -1
	for _, c := range g.Constraints {
		if d := len(c.Poly.Coefficients()) - 1; d > max {
			max = d
		}
	}
	return max
}
