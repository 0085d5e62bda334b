package core

import "testing"

func c(vals ...uint64) []*FieldElement {
	f := DefaultBaseField
	out := make([]*FieldElement, len(vals))
	for i, v := range vals {
		out[i] = f.NewElementFromUint64(v)
	}
	return out
}

func TestPolynomialEval(t *testing.T) {
	f := DefaultBaseField
	// p(x) = 1 + 2x + 3x^2
	p := NewPolynomial(f, c(1, 2, 3))

	tests := []struct {
		name string
		x    uint64
		want uint64
	}{
		{"x=0", 0, 1},
		{"x=1", 1, 6},
		{"x=2", 2, 17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Eval(f.NewElementFromUint64(tt.x))
			want := f.NewElementFromUint64(tt.want)
			if !got.Equal(want) {
				t.Errorf("p(%d) = %s, want %s", tt.x, got.String(), want.String())
			}
		})
	}
}

func TestPolynomialDegreeTrimsLeadingZeros(t *testing.T) {
	f := DefaultBaseField
	p := NewPolynomial(f, c(1, 2, 0, 0))
	if p.Degree() != 1 {
		t.Errorf("Degree() = %d, want 1", p.Degree())
	}
}

func TestPolynomialAddSub(t *testing.T) {
	f := DefaultBaseField
	a := NewPolynomial(f, c(1, 2, 3))
	b := NewPolynomial(f, c(3, 2, 1))

	sum := a.Add(b)
	want := NewPolynomial(f, c(4, 4, 4))
	for i, got := range sum.Coefficients() {
		if !got.Equal(want.Coefficients()[i]) {
			t.Errorf("sum[%d] = %s, want %s", i, got.String(), want.Coefficients()[i].String())
		}
	}

	diff := a.Sub(a)
	if !diff.IsZero() {
		t.Errorf("a - a should be zero, got %s", diff.String())
	}
}

func TestPolynomialMul(t *testing.T) {
	f := DefaultBaseField
	// (x + 1) * (x - 1) = x^2 - 1
	a := NewPolynomial(f, c(1, 1))
	b := NewPolynomial(f, []*FieldElement{f.NewElementFromUint64(0).Sub(f.NewElementFromUint64(1)), f.NewElementFromUint64(1)})
	got := a.Mul(b)
	want := NewPolynomial(f, []*FieldElement{f.NewElementFromUint64(0).Sub(f.NewElementFromUint64(1)), f.NewElementFromUint64(0), f.NewElementFromUint64(1)})
	if got.Degree() != want.Degree() {
		t.Fatalf("degree = %d, want %d", got.Degree(), want.Degree())
	}
	for i, gc := range got.Coefficients() {
		if !gc.Equal(want.Coefficients()[i]) {
			t.Errorf("coeff[%d] = %s, want %s", i, gc.String(), want.Coefficients()[i].String())
		}
	}
}

func TestPolynomialDiv(t *testing.T) {
	f := DefaultBaseField
	// (x^2 - 1) / (x - 1) = x + 1, remainder 0
	dividend := NewPolynomial(f, []*FieldElement{f.NewElementFromUint64(0).Sub(f.NewElementFromUint64(1)), f.NewElementFromUint64(0), f.NewElementFromUint64(1)})
	divisor := NewPolynomial(f, []*FieldElement{f.NewElementFromUint64(0).Sub(f.NewElementFromUint64(1)), f.NewElementFromUint64(1)})

	quotient, remainder, err := dividend.Div(divisor)
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	if !remainder.IsZero() {
		t.Errorf("remainder = %s, want 0", remainder.String())
	}
	want := NewPolynomial(f, c(1, 1))
	if quotient.Degree() != want.Degree() {
		t.Fatalf("quotient degree = %d, want %d", quotient.Degree(), want.Degree())
	}
	for i, qc := range quotient.Coefficients() {
		if !qc.Equal(want.Coefficients()[i]) {
			t.Errorf("quotient[%d] = %s, want %s", i, qc.String(), want.Coefficients()[i].String())
		}
	}
}

func TestPolynomialDivByZero(t *testing.T) {
	f := DefaultBaseField
	p := NewPolynomial(f, c(1))
	if _, _, err := p.Div(ZeroPolynomial(f)); err == nil {
		t.Fatal("expected error dividing by zero polynomial")
	}
}
