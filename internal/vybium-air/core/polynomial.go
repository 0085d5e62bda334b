package core

import (
	"fmt"
	"strings"
)

// Polynomial represents a univariate polynomial over a base Field with
// coefficients ordered from the constant term upward.
type Polynomial struct {
	field        *Field
	coefficients []*FieldElement
}

// NewPolynomial builds a Polynomial from coefficients (constant term
// first), trimming trailing zero coefficients so Degree() reflects the
// true degree.
func NewPolynomial(field *Field, coefficients []*FieldElement) *Polynomial {
	trimmed := trimTrailingZeros(coefficients)
	return &Polynomial{field: field, coefficients: trimmed}
}

func trimTrailingZeros(coefficients []*FieldElement) []*FieldElement {
	last := len(coefficients) - 1
	for last >= 0 && coefficients[last].IsZero() {
		last--
	}
	return coefficients[:last+1]
}

// ZeroPolynomial returns the zero polynomial over field.
func ZeroPolynomial(field *Field) *Polynomial {
	return &Polynomial{field: field, coefficients: []*FieldElement{}}
}

// Field returns the polynomial's coefficient field.
func (p *Polynomial) Field() *Field { return p.field }

// Coefficients returns a copy of the coefficient slice, constant term
// first.
func (p *Polynomial) Coefficients() []*FieldElement {
	out := make([]*FieldElement, len(p.coefficients))
	copy(out, p.coefficients)
	return out
}

// Degree returns the polynomial's degree, or -1 for the zero polynomial.
func (p *Polynomial) Degree() int { return len(p.coefficients) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p *Polynomial) IsZero() bool { return len(p.coefficients) == 0 }

// Eval evaluates p at x using Horner's method.
func (p *Polynomial) Eval(x *FieldElement) *FieldElement {
	result := p.field.Zero()
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		result = result.Mul(x).Add(p.coefficients[i])
	}
	return result
}

// EvalExt evaluates p at an extension-field point x, lifting each
// coefficient into x's extension field as it goes. This is the path the
// AIR compiler uses to evaluate boundary-constraint polynomials at a
// query point drawn from E.
func (p *Polynomial) EvalExt(ext *ExtField, x *ExtElement) *ExtElement {
	result := ext.Zero()
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		result = result.Mul(x).Add(ext.Lift(p.coefficients[i]))
	}
	return result
}

// Add returns p + other.
func (p *Polynomial) Add(other *Polynomial) *Polynomial {
	n := max(len(p.coefficients), len(other.coefficients))
	out := make([]*FieldElement, n)
	for i := 0; i < n; i++ {
		out[i] = p.field.Zero()
		if i < len(p.coefficients) {
			out[i] = out[i].Add(p.coefficients[i])
		}
		if i < len(other.coefficients) {
			out[i] = out[i].Add(other.coefficients[i])
		}
	}
	return NewPolynomial(p.field, out)
}

// Sub returns p - other.
func (p *Polynomial) Sub(other *Polynomial) *Polynomial {
	n := max(len(p.coefficients), len(other.coefficients))
	out := make([]*FieldElement, n)
	for i := 0; i < n; i++ {
		out[i] = p.field.Zero()
		if i < len(p.coefficients) {
			out[i] = out[i].Add(p.coefficients[i])
		}
		if i < len(other.coefficients) {
			out[i] = out[i].Sub(other.coefficients[i])
		}
	}
	return NewPolynomial(p.field, out)
}

// MulScalar returns p scaled by a constant.
func (p *Polynomial) MulScalar(scalar *FieldElement) *Polynomial {
	out := make([]*FieldElement, len(p.coefficients))
	for i, c := range p.coefficients {
		out[i] = c.Mul(scalar)
	}
	return NewPolynomial(p.field, out)
}

// Mul returns p * other via schoolbook convolution.
func (p *Polynomial) Mul(other *Polynomial) *Polynomial {
	if p.IsZero() || other.IsZero() {
		return ZeroPolynomial(p.field)
	}
	out := make([]*FieldElement, len(p.coefficients)+len(other.coefficients)-1)
	for i := range out {
		out[i] = p.field.Zero()
	}
	for i, a := range p.coefficients {
		for j, b := range other.coefficients {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return NewPolynomial(p.field, out)
}

// Div performs polynomial long division, returning quotient and remainder
// such that p = quotient*other + remainder.
func (p *Polynomial) Div(other *Polynomial) (quotient, remainder *Polynomial, err error) {
	if other.IsZero() {
		return nil, nil, fmt.Errorf("division by zero polynomial")
	}
	remCoeffs := p.Coefficients()
	divisorDeg := other.Degree()
	leadInv, err := other.coefficients[divisorDeg].Inv()
	if err != nil {
		return nil, nil, fmt.Errorf("leading coefficient not invertible: %w", err)
	}

	quotDeg := p.Degree() - divisorDeg
	if quotDeg < 0 {
		return ZeroPolynomial(p.field), NewPolynomial(p.field, remCoeffs), nil
	}
	quotCoeffs := make([]*FieldElement, quotDeg+1)
	for i := range quotCoeffs {
		quotCoeffs[i] = p.field.Zero()
	}

	for deg := len(remCoeffs) - 1; deg >= divisorDeg; deg-- {
		if remCoeffs[deg].IsZero() {
			continue
		}
		coeff := remCoeffs[deg].Mul(leadInv)
		quotCoeffs[deg-divisorDeg] = coeff
		for j, dc := range other.coefficients {
			remCoeffs[deg-divisorDeg+j] = remCoeffs[deg-divisorDeg+j].Sub(coeff.Mul(dc))
		}
	}

	return NewPolynomial(p.field, quotCoeffs), NewPolynomial(p.field, remCoeffs), nil
}

// Clone returns a deep copy of p.
func (p *Polynomial) Clone() *Polynomial {
	return NewPolynomial(p.field, p.Coefficients())
}

// String renders p as a sum of terms, highest degree first.
func (p *Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		c := p.coefficients[i]
		if c.IsZero() {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" + ")
		}
		switch i {
		case 0:
			fmt.Fprintf(&b, "%s", c.String())
		case 1:
			fmt.Fprintf(&b, "%s*x", c.String())
		default:
			fmt.Fprintf(&b, "%s*x^%d", c.String(), i)
		}
	}
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
