package core

import (
	"fmt"
	"sync"
)

// TwiddleCache memoizes per-length twiddle-factor tables for the FFT/IFFT
// radix-2 transforms below. Recomputing a root of unity and its butterfly
// twiddles from scratch is wasted work once a transform length is reused,
// so this cache keeps one table per transform length and lets repeated
// interpolations of the same length skip it.
type TwiddleCache struct {
	field *Field

	mu       sync.Mutex
	twiddles map[int][]*FieldElement
	invTwid  map[int][]*FieldElement
}

// NewTwiddleCache builds an empty cache bound to field.
func NewTwiddleCache(field *Field) *TwiddleCache {
	return &TwiddleCache{
		field:    field,
		twiddles: make(map[int][]*FieldElement),
		invTwid:  make(map[int][]*FieldElement),
	}
}

// Twiddles returns the forward-transform twiddle table for a transform of
// length n (n must be a power of two), populating the cache on a miss.
func (c *TwiddleCache) Twiddles(n int) ([]*FieldElement, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.twiddles[n]; ok {
		return t, nil
	}
	t, err := c.buildTwiddles(n, false)
	if err != nil {
		return nil, err
	}
	c.twiddles[n] = t
	return t, nil
}

// InverseTwiddles returns the inverse-transform twiddle table for a
// transform of length n, populating the cache on a miss.
func (c *TwiddleCache) InverseTwiddles(n int) ([]*FieldElement, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.invTwid[n]; ok {
		return t, nil
	}
	t, err := c.buildTwiddles(n, true)
	if err != nil {
		return nil, err
	}
	c.invTwid[n] = t
	return t, nil
}

func (c *TwiddleCache) buildTwiddles(n int, inverse bool) ([]*FieldElement, error) {
	if !IsPowerOfTwo(n) {
		return nil, fmt.Errorf("transform length %d is not a power of two", n)
	}
	k := uint32(Log2(n))
	root, err := c.field.GetRootOfUnity(k)
	if err != nil {
		return nil, fmt.Errorf("failed to derive root of unity for length %d: %w", n, err)
	}
	if inverse {
		root, err = root.Inv()
		if err != nil {
			return nil, fmt.Errorf("failed to invert root of unity: %w", err)
		}
	}
	table := make([]*FieldElement, n/2)
	cur := c.field.One()
	for i := range table {
		table[i] = cur
		cur = cur.Mul(root)
	}
	return table, nil
}

// FFT evaluates the polynomial with coefficients `values` (constant term
// first, length a power of two) over the subgroup of order len(values),
// using the shared cache's forward twiddle table.
func FFT(cache *TwiddleCache, values []*FieldElement) ([]*FieldElement, error) {
	n := len(values)
	if n == 0 {
		return []*FieldElement{}, nil
	}
	if !IsPowerOfTwo(n) {
		return nil, fmt.Errorf("FFT input length %d is not a power of two", n)
	}
	twiddles, err := cache.Twiddles(n)
	if err != nil {
		return nil, err
	}
	out := make([]*FieldElement, n)
	copy(out, values)
	bitReversePermute(out)
	butterfly(out, twiddles)
	return out, nil
}

// IFFT recovers coefficients from the evaluations `values` over the
// subgroup of order len(values), using the shared cache's inverse twiddle
// table, and scales by n^-1 as the final step.
func IFFT(cache *TwiddleCache, values []*FieldElement) ([]*FieldElement, error) {
	n := len(values)
	if n == 0 {
		return []*FieldElement{}, nil
	}
	if !IsPowerOfTwo(n) {
		return nil, fmt.Errorf("IFFT input length %d is not a power of two", n)
	}
	twiddles, err := cache.InverseTwiddles(n)
	if err != nil {
		return nil, err
	}
	out := make([]*FieldElement, n)
	copy(out, values)
	bitReversePermute(out)
	butterfly(out, twiddles)

	nInv := cache.field.NewElementFromUint64(uint64(n))
	nInvElem, err := nInv.Inv()
	if err != nil {
		return nil, fmt.Errorf("failed to invert transform length: %w", err)
	}
	for i := range out {
		out[i] = out[i].Mul(nInvElem)
	}
	return out, nil
}

// InterpolateValues interpolates the unique polynomial of degree < n
// passing through values at the n-th roots of unity, returning its
// coefficient form via IFFT.
func InterpolateValues(cache *TwiddleCache, values []*FieldElement) (*Polynomial, error) {
	coeffs, err := IFFT(cache, values)
	if err != nil {
		return nil, fmt.Errorf("failed to interpolate: %w", err)
	}
	return NewPolynomial(cache.field, coeffs), nil
}

func bitReversePermute(values []*FieldElement) {
	n := len(values)
	bits := Log2(n)
	for i := 0; i < n; i++ {
		j := reverseBits(i, bits)
		if j > i {
			values[i], values[j] = values[j], values[i]
		}
	}
}

func reverseBits(x, bits int) int {
	result := 0
	for i := 0; i < bits; i++ {
		result = (result << 1) | (x & 1)
		x >>= 1
	}
	return result
}

// butterfly performs the iterative Cooley-Tukey radix-2 butterfly passes
// in place over a bit-reversed input, using a precomputed twiddle table of
// length n/2.
func butterfly(values []*FieldElement, twiddles []*FieldElement) {
	n := len(values)
	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		stride := n / size
		for start := 0; start < n; start += size {
			for i := 0; i < half; i++ {
				w := twiddles[i*stride]
				u := values[start+i]
				v := values[start+i+half].Mul(w)
				values[start+i] = u.Add(v)
				values[start+i+half] = u.Sub(v)
			}
		}
	}
}
