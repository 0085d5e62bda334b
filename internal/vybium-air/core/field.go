// Package core provides the base-field and extension-field arithmetic that
// the AIR constraint compiler is built on, plus the polynomial and FFT
// machinery used to interpolate assertion values.
package core

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Field is a prime field with a known multiplicative generator and
// power-of-two subgroups: a STARK-friendly base field B.
type Field struct {
	modulus    *big.Int
	generator  *big.Int
	twoAdicity uint32
}

// FieldElement is an element of a Field.
type FieldElement struct {
	field *Field
	value *big.Int
}

// DefaultBaseField is the reference STARK field used by this module's
// tests and reference Coin implementations: modulus 3*2^30+1. Its
// multiplicative group has order 3*2^30, so it supports power-of-two
// subgroups up to size 2^30.
var DefaultBaseField = &Field{
	modulus:    big.NewInt(3*(1<<30) + 1),
	generator:  big.NewInt(5),
	twoAdicity: 30,
}

// NewField builds a prime field from an explicit modulus, generator and
// two-adicity (the largest k for which a subgroup of order 2^k exists).
func NewField(modulus, generator *big.Int, twoAdicity uint32) (*Field, error) {
	if modulus.Cmp(big.NewInt(2)) <= 0 {
		return nil, fmt.Errorf("modulus must be greater than 2")
	}
	pMinus1 := new(big.Int).Sub(modulus, big.NewInt(1))
	twoPow := new(big.Int).Lsh(big.NewInt(1), uint(twoAdicity))
	if new(big.Int).Mod(pMinus1, twoPow).Sign() != 0 {
		return nil, fmt.Errorf("2^%d does not divide modulus-1", twoAdicity)
	}
	return &Field{
		modulus:    new(big.Int).Set(modulus),
		generator:  new(big.Int).Set(generator),
		twoAdicity: twoAdicity,
	}, nil
}

// Modulus returns the field modulus.
func (f *Field) Modulus() *big.Int { return new(big.Int).Set(f.modulus) }

// TwoAdicity returns the largest k such that the field has a subgroup of
// order 2^k.
func (f *Field) TwoAdicity() uint32 { return f.twoAdicity }

// NewElement reduces value modulo the field and returns the resulting
// element.
func (f *Field) NewElement(value *big.Int) *FieldElement {
	v := new(big.Int).Mod(value, f.modulus)
	return &FieldElement{field: f, value: v}
}

// NewElementFromUint64 builds a field element from a uint64.
func (f *Field) NewElementFromUint64(value uint64) *FieldElement {
	return f.NewElement(new(big.Int).SetUint64(value))
}

// NewElementFromInt64 builds a field element from an int64, wrapping
// negative values.
func (f *Field) NewElementFromInt64(value int64) *FieldElement {
	return f.NewElement(big.NewInt(value))
}

// Zero returns the additive identity.
func (f *Field) Zero() *FieldElement { return f.NewElementFromUint64(0) }

// One returns the multiplicative identity.
func (f *Field) One() *FieldElement { return f.NewElementFromUint64(1) }

// Generator returns the field's canonical multiplicative generator.
func (f *Field) Generator() *FieldElement { return f.NewElement(f.generator) }

// RandomElement draws a uniformly random field element using a
// cryptographically secure source.
func (f *Field) RandomElement() (*FieldElement, error) {
	v, err := rand.Int(rand.Reader, f.modulus)
	if err != nil {
		return nil, fmt.Errorf("failed to generate random element: %w", err)
	}
	return f.NewElement(v), nil
}

// GetRootOfUnity returns a primitive 2^k-th root of unity. k must not
// exceed the field's two-adicity.
func (f *Field) GetRootOfUnity(k uint32) (*FieldElement, error) {
	if k > f.twoAdicity {
		return nil, fmt.Errorf("field does not have a subgroup of order 2^%d (max two-adicity %d)", k, f.twoAdicity)
	}
	exp := new(big.Int).Lsh(big.NewInt(1), uint(f.twoAdicity-k))
	pMinus1 := new(big.Int).Sub(f.modulus, big.NewInt(1))
	root := new(big.Int).Exp(f.generator, new(big.Int).Div(pMinus1, new(big.Int).Lsh(big.NewInt(1), uint(f.twoAdicity))), f.modulus)
	return &FieldElement{field: f, value: new(big.Int).Exp(root, exp, f.modulus)}, nil
}

// Equals reports whether two fields share the same modulus.
func (f *Field) Equals(other *Field) bool { return f.modulus.Cmp(other.modulus) == 0 }

// Field returns the field this element belongs to.
func (e *FieldElement) Field() *Field { return e.field }

// Big returns the element's value as a big.Int.
func (e *FieldElement) Big() *big.Int { return new(big.Int).Set(e.value) }

// Add returns e + other.
func (e *FieldElement) Add(other *FieldElement) *FieldElement {
	return e.field.NewElement(new(big.Int).Add(e.value, other.value))
}

// Sub returns e - other.
func (e *FieldElement) Sub(other *FieldElement) *FieldElement {
	return e.field.NewElement(new(big.Int).Sub(e.value, other.value))
}

// Mul returns e * other.
func (e *FieldElement) Mul(other *FieldElement) *FieldElement {
	return e.field.NewElement(new(big.Int).Mul(e.value, other.value))
}

// Neg returns -e.
func (e *FieldElement) Neg() *FieldElement {
	return e.field.NewElement(new(big.Int).Neg(e.value))
}

// Inv returns the multiplicative inverse of e.
func (e *FieldElement) Inv() (*FieldElement, error) {
	if e.value.Sign() == 0 {
		return nil, fmt.Errorf("cannot invert zero element")
	}
	inv := new(big.Int).ModInverse(e.value, e.field.modulus)
	if inv == nil {
		return nil, fmt.Errorf("inverse does not exist")
	}
	return &FieldElement{field: e.field, value: inv}, nil
}

// Div returns e / other.
func (e *FieldElement) Div(other *FieldElement) (*FieldElement, error) {
	inv, err := other.Inv()
	if err != nil {
		return nil, fmt.Errorf("division failed: %w", err)
	}
	return e.Mul(inv), nil
}

// Exp raises e to a uint64 power, as required by the field interface
// described by the AIR core's data model.
func (e *FieldElement) Exp(exponent uint64) *FieldElement {
	return e.field.NewElement(new(big.Int).Exp(e.value, new(big.Int).SetUint64(exponent), e.field.modulus))
}

// IsZero reports whether e is the additive identity.
func (e *FieldElement) IsZero() bool { return e.value.Sign() == 0 }

// IsOne reports whether e is the multiplicative identity.
func (e *FieldElement) IsOne() bool { return e.value.Cmp(big.NewInt(1)) == 0 }

// Equal reports whether e and other hold the same value in the same field.
func (e *FieldElement) Equal(other *FieldElement) bool {
	if other == nil || !e.field.Equals(other.field) {
		return false
	}
	return e.value.Cmp(other.value) == 0
}

// Bytes returns the big-endian byte representation of e's value.
func (e *FieldElement) Bytes() []byte { return e.value.Bytes() }

// String returns a base-10 string representation.
func (e *FieldElement) String() string { return e.value.String() }
