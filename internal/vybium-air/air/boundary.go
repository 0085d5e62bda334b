package air

import (
	"fmt"

	"github.com/vybium/vybium-air/internal/vybium-air/coin"
	"github.com/vybium/vybium-air/internal/vybium-air/core"
)

// PolyOffset shifts the evaluation point for a boundary constraint whose
// asserted steps don't start at 0: evaluate_at(x) really evaluates the
// interpolant at x * Value, where Value = inv_g^Step.
type PolyOffset struct {
	Step  uint64
	Value *core.FieldElement
}

// BoundaryConstraint is one compiled assertion: a register, the
// inverse-FFT interpolant of its asserted values, an evaluation-point
// offset, and a pair of pseudo-random linear-combination coefficients.
type BoundaryConstraint struct {
	Register   uint32
	Poly       *core.Polynomial
	PolyOffset PolyOffset
	CC         [2]*core.ExtElement
}

// NewBoundaryConstraint compiles assertion a into a BoundaryConstraint.
// Single-value assertions store their value directly; multi-value
// assertions are interpolated via inverse FFT using cache, building and
// caching inverse twiddles of order len(a.Values) on a miss. A
// coefficient pair is drawn from c exactly once.
func NewBoundaryConstraint(a *Assertion, invG *core.FieldElement, cache *core.TwiddleCache, c coin.Coin, ext *core.ExtField) (*BoundaryConstraint, error) {
	field := invG.Field()
	var poly *core.Polynomial
	offset := PolyOffset{Step: 0, Value: field.One()}

	if len(a.Values) == 1 {
		poly = core.NewPolynomial(field, []*core.FieldElement{a.Values[0]})
	} else {
		interpolated, err := core.InterpolateValues(cache, a.Values)
		if err != nil {
			return nil, fmt.Errorf("failed to interpolate assertion values: %w", err)
		}
		poly = interpolated
		if a.FirstStep != 0 {
			offset = PolyOffset{Step: a.FirstStep, Value: invG.Exp(a.FirstStep)}
		}
	}

	c0, c1, err := c.DrawPair()
	if err != nil {
		return nil, fmt.Errorf("failed to draw coefficient pair: %w", err)
	}

	return &BoundaryConstraint{
		Register:   a.Register,
		Poly:       poly,
		PolyOffset: offset,
		CC:         [2]*core.ExtElement{c0, c1},
	}, nil
}

// EvaluateAt evaluates the constraint at an out-of-domain point x given
// the trace value at this constraint's register. For a single-value
// constraint this is trace_value - poly[0]; otherwise the evaluation
// point is first shifted by the offset before the interpolant is
// evaluated. The coefficient pair is applied by the enclosing group, not
// here.
func (bc *BoundaryConstraint) EvaluateAt(x *core.ExtElement, traceValue *core.ExtElement, ext *core.ExtField) *core.ExtElement {
	coeffs := bc.Poly.Coefficients()
	if len(coeffs) == 1 {
		return traceValue.Sub(ext.Lift(coeffs[0]))
	}
	shifted := x.Mul(ext.Lift(bc.PolyOffset.Value))
	return traceValue.Sub(bc.Poly.EvalExt(ext, shifted))
}
