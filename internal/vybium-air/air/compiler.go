package air

import (
	"fmt"
	"sort"

	"github.com/vybium/vybium-air/internal/vybium-air/coin"
	"github.com/vybium/vybium-air/internal/vybium-air/core"
)

// AIR is the consumer contract an AIR implementer provides to the
// compiler.
type AIR interface {
	// Context returns the computation's derived sizes and options.
	Context() *ComputationContext
	// EvaluateTransition fills one result entry per transition
	// constraint index.
	EvaluateTransition(frame [][]*core.ExtElement, periodicValues []*core.ExtElement, result []*core.ExtElement)
	// Assertions returns the computation's boundary assertions.
	Assertions() []*Assertion
	// PeriodicColumnValues optionally returns the computation's periodic
	// columns; each column's length must be a power of two in [2, N].
	// Implementations with no periodic columns return nil.
	PeriodicColumnValues() [][]*core.FieldElement
}

// Compiler validates and sorts assertions, then constructs boundary and
// transition constraint groups with deterministic coefficient
// assignment.
type Compiler struct {
	cache *core.TwiddleCache
}

// NewCompiler builds a Compiler that allocates a fresh twiddle cache per
// compilation.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// NewCompilerWithCache builds a Compiler that reuses cache across
// compilations. Twiddle caches are never shared implicitly; a caller
// that wants reuse across calls must construct and pass one explicitly.
func NewCompilerWithCache(cache *core.TwiddleCache) *Compiler {
	return &Compiler{cache: cache}
}

func (c *Compiler) twiddleCache(field *core.Field) *core.TwiddleCache {
	if c.cache != nil {
		return c.cache
	}
	return core.NewTwiddleCache(field)
}

// validateAndSortAssertions inserts every assertion into an ordered set
// sorted by (stride, first_step, register), validating trace width and
// length and testing pairwise overlap against every previously-inserted
// assertion on the same register.
func validateAndSortAssertions(assertions []*Assertion, ctx *ComputationContext) ([]*Assertion, error) {
	accepted := make([]*Assertion, 0, len(assertions))
	for _, a := range assertions {
		if err := a.ValidateTraceWidth(ctx.TraceWidth); err != nil {
			return nil, err
		}
		if err := a.ValidateTraceLength(ctx.TraceLength); err != nil {
			return nil, err
		}
		for _, existing := range accepted {
			if existing.Register == a.Register && existing.OverlapsWith(a, ctx.TraceLength) {
				return nil, newError(AssertionOverlap, "assertion on register %d at first_step %d overlaps an existing assertion", a.Register, a.FirstStep)
			}
		}
		accepted = append(accepted, a)
	}

	sort.SliceStable(accepted, func(i, j int) bool {
		a, b := accepted[i], accepted[j]
		if a.Stride != b.Stride {
			return a.Stride < b.Stride
		}
		if a.FirstStep != b.FirstStep {
			return a.FirstStep < b.FirstStep
		}
		return a.Register < b.Register
	})
	return accepted, nil
}

type boundaryGroupKey struct {
	stride    uint64
	firstStep uint64
}

// BoundaryConstraints sorts and validates assertions, builds one group
// per (stride, first_step) key in traversal order, drawing exactly two
// coefficients per assertion from cn, then emits the groups sorted by
// ascending degree adjustment.
func (c *Compiler) BoundaryConstraints(assertions []*Assertion, ctx *ComputationContext, cn coin.Coin) ([]*BoundaryConstraintGroup, error) {
	sorted, err := validateAndSortAssertions(assertions, ctx)
	if err != nil {
		return nil, err
	}

	invG, err := ctx.TraceDomainGenerator.Inv()
	if err != nil {
		return nil, fmt.Errorf("failed to invert trace-domain generator: %w", err)
	}
	cache := c.twiddleCache(ctx.Field)

	groups := make(map[boundaryGroupKey]*BoundaryConstraintGroup)
	var order []boundaryGroupKey

	for _, a := range sorted {
		key := boundaryGroupKey{stride: a.Stride, firstStep: a.FirstStep}
		group, ok := groups[key]
		if !ok {
			divisor := NewBoundaryDivisor(a, ctx.TraceDomainGenerator, ctx.TraceLength)
			group = NewBoundaryConstraintGroup(divisor, ctx.TracePolyDegree(), ctx.CompositionDegree)
			groups[key] = group
			order = append(order, key)
		}
		if err := group.Add(a, invG, cache, cn, ctx.Ext); err != nil {
			return nil, err
		}
	}

	result := make([]*BoundaryConstraintGroup, 0, len(order))
	for _, key := range order {
		result = append(result, groups[key])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DegreeAdjustment < result[j].DegreeAdjustment
	})
	return result, nil
}

// TransitionConstraints buckets user transition degrees by evaluation
// degree, drawing one coefficient pair per transition index from cn, then
// emits the groups sorted by ascending evaluation degree.
func (c *Compiler) TransitionConstraints(degrees []TransitionConstraintDegree, ctx *ComputationContext, cn coin.Coin) ([]*TransitionConstraintGroup, error) {
	targetDegree := ctx.CompositionDegree + ctx.TracePolyDegree()

	groups := make(map[int]*TransitionConstraintGroup)
	var order []int

	for i, d := range degrees {
		evalDegree := d.EvaluationDegree(ctx.TraceLength)
		if int(evalDegree) > targetDegree {
			return nil, newError(InconsistentDegree, "transition %d evaluation degree %d exceeds target degree %d", i, evalDegree, targetDegree)
		}
		key := int(evalDegree)
		group, ok := groups[key]
		if !ok {
			group = NewTransitionConstraintGroup(key, ctx.TracePolyDegree(), ctx.CompositionDegree)
			groups[key] = group
			order = append(order, key)
		}
		c0, c1, err := cn.DrawPair()
		if err != nil {
			return nil, fmt.Errorf("failed to draw coefficient pair for transition %d: %w", i, err)
		}
		group.Indices = append(group.Indices, TransitionIndex{Index: i, CC: [2]*core.ExtElement{c0, c1}})
	}

	result := make([]*TransitionConstraintGroup, 0, len(order))
	for _, key := range order {
		result = append(result, groups[key])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].EvaluationDegree < result[j].EvaluationDegree
	})
	return result, nil
}

// PeriodicColumnPolynomials inverse-FFTs each periodic column using a
// shared twiddle cache. cache may be nil, in which case the Compiler's
// own cache is used, or a fresh one if the Compiler was built without
// one. Each
// column's length must be a power of two in [2, ctx.TraceLength], or
// compilation fails with InvalidPeriodicColumn.
func (c *Compiler) PeriodicColumnPolynomials(columns [][]*core.FieldElement, cache *core.TwiddleCache, ctx *ComputationContext) ([]*core.Polynomial, error) {
	if cache == nil {
		cache = c.twiddleCache(ctx.Field)
	}
	polys := make([]*core.Polynomial, len(columns))
	for i, col := range columns {
		n := len(col)
		if n < 2 || !core.IsPowerOfTwo(n) || uint64(n) > ctx.TraceLength {
			return nil, newError(InvalidPeriodicColumn, "periodic column %d has invalid length %d for trace length %d", i, n, ctx.TraceLength)
		}
		poly, err := core.InterpolateValues(cache, col)
		if err != nil {
			return nil, fmt.Errorf("failed to interpolate periodic column %d: %w", i, err)
		}
		polys[i] = poly
	}
	return polys, nil
}
