package air

import (
	"testing"

	"github.com/vybium/vybium-air/internal/vybium-air/coin"
	"github.com/vybium/vybium-air/internal/vybium-air/core"
)

func testExtField() *core.ExtField {
	f := core.DefaultBaseField
	return core.NewExtField(f, f.Generator())
}

func testCoin(t *testing.T, ext *core.ExtField) coin.Coin {
	t.Helper()
	c, err := coin.NewSha3Coin([]byte(t.Name()), ext, 1)
	if err != nil {
		t.Fatalf("NewSha3Coin: %v", err)
	}
	return c
}

func invG(t *testing.T) *core.FieldElement {
	t.Helper()
	g := traceDomainGenerator(t)
	inv, err := g.Inv()
	if err != nil {
		t.Fatalf("Inv: %v", err)
	}
	return inv
}

// TestBoundaryConstraintSingle checks that a single-value assertion's
// poly is [value] with a zero offset, and EvaluateAt returns
// trace_value - value.
func TestBoundaryConstraintSingle(t *testing.T) {
	ext := testExtField()
	c := testCoin(t, ext)
	a := mustSingle(0, 0)

	bc, err := NewBoundaryConstraint(a, invG(t), core.NewTwiddleCache(core.DefaultBaseField), c, ext)
	if err != nil {
		t.Fatalf("NewBoundaryConstraint: %v", err)
	}
	coeffs := bc.Poly.Coefficients()
	if len(coeffs) != 1 || !coeffs[0].Equal(ev(1)) {
		t.Fatalf("Poly = %v, want [1]", coeffs)
	}
	if bc.PolyOffset.Step != 0 || !bc.PolyOffset.Value.IsOne() {
		t.Errorf("PolyOffset = %+v, want {0, 1}", bc.PolyOffset)
	}

	x := ext.Lift(ev(42))
	traceValue := ext.Lift(ev(99))
	got := bc.EvaluateAt(x, traceValue, ext)
	want := traceValue.Sub(ext.Lift(ev(1)))
	if !got.Equal(want) {
		t.Errorf("EvaluateAt = %s, want %s", got.String(), want.String())
	}
}

// TestBoundaryConstraintSequenceFirstStepZero checks that a sequence
// assertion with first_step 0 evaluates as trace_value - P(x) where P is
// the inverse-FFT interpolant of its values.
func TestBoundaryConstraintSequenceFirstStepZero(t *testing.T) {
	ext := testExtField()
	field := core.DefaultBaseField
	cache := core.NewTwiddleCache(field)
	values := []*core.FieldElement{ev(10), ev(20), ev(30), ev(40)}
	a, err := NewSequence(0, 0, 4, values)
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}

	bc, err := NewBoundaryConstraint(a, invG(t), cache, testCoin(t, ext), ext)
	if err != nil {
		t.Fatalf("NewBoundaryConstraint: %v", err)
	}
	if bc.PolyOffset.Step != 0 || !bc.PolyOffset.Value.IsOne() {
		t.Errorf("PolyOffset = %+v, want {0, 1}", bc.PolyOffset)
	}

	interpolant, err := core.InterpolateValues(cache, values)
	if err != nil {
		t.Fatalf("InterpolateValues: %v", err)
	}

	x := ext.Lift(ev(7))
	traceValue := ext.Lift(ev(55))
	got := bc.EvaluateAt(x, traceValue, ext)
	want := traceValue.Sub(interpolant.EvalExt(ext, x))
	if !got.Equal(want) {
		t.Errorf("EvaluateAt = %s, want %s", got.String(), want.String())
	}
}

// TestBoundaryConstraintSequenceFirstStepNonzero checks that
// evaluate_at(x, t) = t - P(x * g^-first_step) for a sequence assertion
// whose first_step is nonzero.
func TestBoundaryConstraintSequenceFirstStepNonzero(t *testing.T) {
	ext := testExtField()
	field := core.DefaultBaseField
	cache := core.NewTwiddleCache(field)
	values := []*core.FieldElement{ev(10), ev(20)}
	a, err := NewSequence(0, 3, 8, values)
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}

	ig := invG(t)
	bc, err := NewBoundaryConstraint(a, ig, cache, testCoin(t, ext), ext)
	if err != nil {
		t.Fatalf("NewBoundaryConstraint: %v", err)
	}
	if bc.PolyOffset.Step != 3 {
		t.Errorf("PolyOffset.Step = %d, want 3", bc.PolyOffset.Step)
	}
	wantOffsetValue := ig.Exp(3)
	if !bc.PolyOffset.Value.Equal(wantOffsetValue) {
		t.Errorf("PolyOffset.Value = %s, want g^-3 = %s", bc.PolyOffset.Value.String(), wantOffsetValue.String())
	}

	interpolant, err := core.InterpolateValues(cache, values)
	if err != nil {
		t.Fatalf("InterpolateValues: %v", err)
	}

	x := ext.Lift(ev(11))
	traceValue := ext.Lift(ev(2))
	got := bc.EvaluateAt(x, traceValue, ext)
	shifted := x.Mul(ext.Lift(wantOffsetValue))
	want := traceValue.Sub(interpolant.EvalExt(ext, shifted))
	if !got.Equal(want) {
		t.Errorf("EvaluateAt = %s, want %s", got.String(), want.String())
	}
}

// TestSequencePolynomialRoundTrips checks that interpolating a sequence's
// values and evaluating at the k-th roots of unity reproduces the
// original values.
func TestSequencePolynomialRoundTrips(t *testing.T) {
	field := core.DefaultBaseField
	cache := core.NewTwiddleCache(field)
	values := []*core.FieldElement{ev(3), ev(5), ev(7), ev(11)}

	poly, err := core.InterpolateValues(cache, values)
	if err != nil {
		t.Fatalf("InterpolateValues: %v", err)
	}

	g, err := field.GetRootOfUnity(uint32(core.Log2(len(values))))
	if err != nil {
		t.Fatalf("GetRootOfUnity: %v", err)
	}
	point := field.One()
	for i, v := range values {
		got := poly.Eval(point)
		if !got.Equal(v) {
			t.Errorf("poly(g^%d) = %s, want %s", i, got.String(), v.String())
		}
		point = point.Mul(g)
	}
}

// TestNewBoundaryConstraintDrawsExactlyOnePair verifies that constructing
// a single BoundaryConstraint consumes exactly one coin draw.
func TestNewBoundaryConstraintDrawsExactlyOnePair(t *testing.T) {
	ext := testExtField()
	cn := testCoin(t, ext)
	a := mustSingle(0, 0)

	bc, err := NewBoundaryConstraint(a, invG(t), core.NewTwiddleCache(core.DefaultBaseField), cn, ext)
	if err != nil {
		t.Fatalf("NewBoundaryConstraint: %v", err)
	}

	direct, err := coin.NewSha3Coin([]byte(t.Name()), ext, 1)
	if err != nil {
		t.Fatalf("NewSha3Coin: %v", err)
	}
	c0, c1, err := direct.DrawPair()
	if err != nil {
		t.Fatalf("DrawPair: %v", err)
	}
	if !bc.CC[0].Equal(c0) || !bc.CC[1].Equal(c1) {
		t.Error("BoundaryConstraint.CC should equal the coin's first draw")
	}

	// The shared coin's next draw must be the second pair, proving that
	// construction consumed one pair and no more.
	next0, next1, err := cn.DrawPair()
	if err != nil {
		t.Fatalf("DrawPair: %v", err)
	}
	want0, want1, err := direct.DrawPair()
	if err != nil {
		t.Fatalf("DrawPair: %v", err)
	}
	if !next0.Equal(want0) || !next1.Equal(want1) {
		t.Error("coin's next draw after construction should be its second pair")
	}
}
