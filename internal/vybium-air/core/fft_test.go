package core

import "testing"

func TestFFTIFFTRoundTrip(t *testing.T) {
	f := DefaultBaseField
	cache := NewTwiddleCache(f)

	tests := []struct {
		name string
		n    int
	}{
		{"n=4", 4},
		{"n=8", 8},
		{"n=16", 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coeffs := make([]*FieldElement, tt.n)
			for i := range coeffs {
				coeffs[i] = f.NewElementFromUint64(uint64(i + 1))
			}
			evals, err := FFT(cache, coeffs)
			if err != nil {
				t.Fatalf("FFT: %v", err)
			}
			back, err := IFFT(cache, evals)
			if err != nil {
				t.Fatalf("IFFT: %v", err)
			}
			for i, got := range back {
				if !got.Equal(coeffs[i]) {
					t.Errorf("roundtrip[%d] = %s, want %s", i, got.String(), coeffs[i].String())
				}
			}
		})
	}
}

func TestFFTRejectsNonPowerOfTwo(t *testing.T) {
	f := DefaultBaseField
	cache := NewTwiddleCache(f)
	values := []*FieldElement{f.One(), f.One(), f.One()}
	if _, err := FFT(cache, values); err == nil {
		t.Fatal("expected error for non-power-of-two length")
	}
}

func TestTwiddleCacheReused(t *testing.T) {
	f := DefaultBaseField
	cache := NewTwiddleCache(f)
	a, err := cache.Twiddles(8)
	if err != nil {
		t.Fatalf("Twiddles: %v", err)
	}
	b, err := cache.Twiddles(8)
	if err != nil {
		t.Fatalf("Twiddles: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("cached twiddle tables differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			t.Errorf("cached twiddle[%d] differs between calls", i)
		}
	}
}

func TestInterpolateValuesMatchesEval(t *testing.T) {
	f := DefaultBaseField
	cache := NewTwiddleCache(f)
	n := 8
	coeffs := make([]*FieldElement, n)
	for i := range coeffs {
		coeffs[i] = f.NewElementFromUint64(uint64(i))
	}
	p := NewPolynomial(f, coeffs)

	root, err := f.GetRootOfUnity(uint32(Log2(n)))
	if err != nil {
		t.Fatalf("GetRootOfUnity: %v", err)
	}
	values := make([]*FieldElement, n)
	point := f.One()
	for i := 0; i < n; i++ {
		values[i] = p.Eval(point)
		point = point.Mul(root)
	}

	got, err := InterpolateValues(cache, values)
	if err != nil {
		t.Fatalf("InterpolateValues: %v", err)
	}
	for i, gc := range got.Coefficients() {
		if !gc.Equal(coeffs[i]) {
			t.Errorf("interpolated[%d] = %s, want %s", i, gc.String(), coeffs[i].String())
		}
	}
}
