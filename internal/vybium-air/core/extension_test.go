package core

import "testing"

func testExtField() *ExtField {
	f := DefaultBaseField
	// The multiplicative generator is never a square (its order is p-1, not
	// a divisor of (p-1)/2), so it is a valid non-residue for y^2.
	return NewExtField(f, f.Generator())
}

func TestExtElementLiftIsBase(t *testing.T) {
	f := DefaultBaseField
	ext := testExtField()
	e := ext.Lift(f.NewElementFromUint64(5))
	if !e.IsBase() {
		t.Fatal("lifted element should report IsBase() == true")
	}
	if !e.Base().Equal(f.NewElementFromUint64(5)) {
		t.Errorf("Base() = %s, want 5", e.Base().String())
	}
}

func TestExtElementMulInv(t *testing.T) {
	f := DefaultBaseField
	ext := testExtField()
	a := ext.NewExtElement(f.NewElementFromUint64(3), f.NewElementFromUint64(4))
	inv, err := a.Inv()
	if err != nil {
		t.Fatalf("Inv: %v", err)
	}
	got := a.Mul(inv)
	if !got.Equal(ext.One()) {
		t.Errorf("a * a^-1 = %s, want 1", got.String())
	}
}

func TestExtElementInvZero(t *testing.T) {
	ext := testExtField()
	if _, err := ext.Zero().Inv(); err == nil {
		t.Fatal("expected error inverting zero extension element")
	}
}

func TestExtElementExp(t *testing.T) {
	f := DefaultBaseField
	ext := testExtField()
	a := ext.NewExtElement(f.NewElementFromUint64(3), f.NewElementFromUint64(1))
	got := a.Exp(3)
	want := a.Mul(a).Mul(a)
	if !got.Equal(want) {
		t.Errorf("a^3 = %s, want %s", got.String(), want.String())
	}
}
