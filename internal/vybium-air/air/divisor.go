package air

import (
	"fmt"

	"github.com/vybium/vybium-air/internal/vybium-air/core"
)

// NumeratorTerm is one factor x^Exponent - Offset of a ConstraintDivisor's
// factored-form numerator.
type NumeratorTerm struct {
	Exponent uint64
	Offset   *core.FieldElement
}

// ConstraintDivisor is the polynomial that vanishes exactly on a
// constraint's asserted step set, represented in factored form: a list of
// numerator terms x^e - o and a list of denominator exclusion terms x -
// k.
type ConstraintDivisor struct {
	Numerator  []NumeratorTerm
	Exclusions []*core.FieldElement
}

// Degree returns the divisor's degree: the sum of numerator exponents
// less the number of exclusion terms.
func (d *ConstraintDivisor) Degree() int {
	total := 0
	for _, term := range d.Numerator {
		total += int(term.Exponent)
	}
	return total - len(d.Exclusions)
}

// NewBoundaryDivisor builds the divisor for a boundary assertion: a
// single numerator term x^k - g^{k*first_step mod N}, where k is the
// number of steps the assertion hits (1 for Single, N/stride for
// Periodic/Sequence). g is the trace-domain generator, n the trace
// length.
func NewBoundaryDivisor(a *Assertion, g *core.FieldElement, n uint64) *ConstraintDivisor {
	stride := a.effectiveStride(n)
	hits := n / stride
	offsetExp := (hits * a.FirstStep) % n
	return &ConstraintDivisor{
		Numerator: []NumeratorTerm{{
			Exponent: hits,
			Offset:   g.Exp(offsetExp),
		}},
	}
}

// NewTransitionDivisor builds the divisor shared by all transition
// constraints: x^N - 1 with exclusionCount exclusion terms x - g^{N-1},
// x - g^{N-2}, ... counting back from the last step.
func NewTransitionDivisor(g *core.FieldElement, n uint64, exclusionCount int) *ConstraintDivisor {
	exclusions := make([]*core.FieldElement, exclusionCount)
	for i := 0; i < exclusionCount; i++ {
		exclusions[i] = g.Exp(n - 1 - uint64(i))
	}
	return &ConstraintDivisor{
		Numerator: []NumeratorTerm{{
			Exponent: n,
			Offset:   g.Field().One(),
		}},
		Exclusions: exclusions,
	}
}

// EvaluateAt evaluates the divisor at an extension-field point x,
// multiplying the numerator terms and dividing by the exclusion terms.
// Callers must guarantee x lies outside the exclusion set; an x that
// coincides with an exclusion point returns an error rather than
// panicking.
func (d *ConstraintDivisor) EvaluateAt(x *core.ExtElement, ext *core.ExtField) (*core.ExtElement, error) {
	result := ext.One()
	for _, term := range d.Numerator {
		result = result.Mul(x.Exp(term.Exponent).Sub(ext.Lift(term.Offset)))
	}
	for _, k := range d.Exclusions {
		denom := x.Sub(ext.Lift(k))
		if denom.IsZero() {
			return nil, fmt.Errorf("divisor evaluated at an excluded point")
		}
		inv, err := denom.Inv()
		if err != nil {
			return nil, fmt.Errorf("failed to invert exclusion term: %w", err)
		}
		result = result.Mul(inv)
	}
	return result, nil
}
