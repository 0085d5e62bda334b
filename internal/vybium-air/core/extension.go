package core

import "fmt"

// ExtField is a quadratic extension B[y]/(y^2 - nonResidue) of a base
// Field, used as the evaluation field E when ProofOptions selects
// FieldExtension == Quadratic. When an AIR is compiled with
// FieldExtension == None, callers simply never construct a nonzero
// second component and E behaves as B by convention.
type ExtField struct {
	base       *Field
	nonResidue *FieldElement
}

// ExtElement is an element c0 + c1*y of an ExtField.
type ExtElement struct {
	field *ExtField
	c0    *FieldElement
	c1    *FieldElement
}

// NewExtField builds a quadratic extension of base using nonResidue as the
// coefficient of y^2 = nonResidue. Callers are responsible for picking a
// nonResidue with no square root in base; this package does not attempt
// to verify non-residuosity and trusts caller-supplied field parameters.
func NewExtField(base *Field, nonResidue *FieldElement) *ExtField {
	return &ExtField{base: base, nonResidue: nonResidue}
}

// Base returns the underlying base field.
func (f *ExtField) Base() *Field { return f.base }

// Zero returns the additive identity of the extension.
func (f *ExtField) Zero() *ExtElement {
	return &ExtElement{field: f, c0: f.base.Zero(), c1: f.base.Zero()}
}

// One returns the multiplicative identity of the extension.
func (f *ExtField) One() *ExtElement {
	return &ExtElement{field: f, c0: f.base.One(), c1: f.base.Zero()}
}

// Lift embeds a base-field element into the extension with a zero
// imaginary component, the identity behavior used whenever E = B.
func (f *ExtField) Lift(e *FieldElement) *ExtElement {
	return &ExtElement{field: f, c0: e, c1: f.base.Zero()}
}

// NewExtElement builds c0 + c1*y directly.
func (f *ExtField) NewExtElement(c0, c1 *FieldElement) *ExtElement {
	return &ExtElement{field: f, c0: c0, c1: c1}
}

// Field returns the extension field this element belongs to.
func (e *ExtElement) Field() *ExtField { return e.field }

// IsBase reports whether e's imaginary component is zero, i.e. e behaves
// as a plain base-field element under the E = B convention.
func (e *ExtElement) IsBase() bool { return e.c1.IsZero() }

// Base returns the real component, valid only when IsBase() holds; callers
// in the None field-extension path rely on this to treat E values as B
// values without a second code path.
func (e *ExtElement) Base() *FieldElement { return e.c0 }

// Add returns e + other.
func (e *ExtElement) Add(other *ExtElement) *ExtElement {
	return &ExtElement{field: e.field, c0: e.c0.Add(other.c0), c1: e.c1.Add(other.c1)}
}

// Sub returns e - other.
func (e *ExtElement) Sub(other *ExtElement) *ExtElement {
	return &ExtElement{field: e.field, c0: e.c0.Sub(other.c0), c1: e.c1.Sub(other.c1)}
}

// Neg returns -e.
func (e *ExtElement) Neg() *ExtElement {
	return &ExtElement{field: e.field, c0: e.c0.Neg(), c1: e.c1.Neg()}
}

// Mul returns e * other using schoolbook multiplication reduced modulo
// y^2 = nonResidue: (a0+a1 y)(b0+b1 y) = (a0 b0 + nonResidue a1 b1) +
// (a0 b1 + a1 b0) y.
func (e *ExtElement) Mul(other *ExtElement) *ExtElement {
	a0b0 := e.c0.Mul(other.c0)
	a1b1 := e.c1.Mul(other.c1)
	crossTerm := e.c0.Mul(other.c1).Add(e.c1.Mul(other.c0))
	c0 := a0b0.Add(a1b1.Mul(e.field.nonResidue))
	return &ExtElement{field: e.field, c0: c0, c1: crossTerm}
}

// Inv returns the multiplicative inverse of e using the conjugate
// (a0 - a1 y), whose product with e is the base-field norm
// a0^2 - nonResidue*a1^2.
func (e *ExtElement) Inv() (*ExtElement, error) {
	if e.IsZero() {
		return nil, fmt.Errorf("cannot invert zero extension element")
	}
	norm := e.c0.Mul(e.c0).Sub(e.field.nonResidue.Mul(e.c1.Mul(e.c1)))
	normInv, err := norm.Inv()
	if err != nil {
		return nil, fmt.Errorf("extension element is not invertible: %w", err)
	}
	return &ExtElement{
		field: e.field,
		c0:    e.c0.Mul(normInv),
		c1:    e.c1.Neg().Mul(normInv),
	}, nil
}

// Exp raises e to a uint64 power via square-and-multiply.
func (e *ExtElement) Exp(exponent uint64) *ExtElement {
	result := e.field.One()
	base := e
	for exponent > 0 {
		if exponent&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exponent >>= 1
	}
	return result
}

// IsZero reports whether both components are zero.
func (e *ExtElement) IsZero() bool { return e.c0.IsZero() && e.c1.IsZero() }

// Equal reports whether e and other hold the same value.
func (e *ExtElement) Equal(other *ExtElement) bool {
	return e.c0.Equal(other.c0) && e.c1.Equal(other.c1)
}

// String returns "c0 + c1*y" (or just c0 when c1 is zero).
func (e *ExtElement) String() string {
	if e.c1.IsZero() {
		return e.c0.String()
	}
	return fmt.Sprintf("%s + %s*y", e.c0.String(), e.c1.String())
}
