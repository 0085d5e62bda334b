package air

import (
	"fmt"

	"github.com/vybium/vybium-air/internal/vybium-air/core"
	"github.com/vybium/vybium-air/internal/vybium-air/options"
)

// defaultTransitionExclusionCount is the divisor exclusion count for
// transition constraints: the last two steps of the trace are excluded
// from the transition divisor's denominator, since those steps have no
// "next row" to check a transition against. Surfaced as a
// ComputationContext field rather than hard-coded at every call site so
// a future AIR with a different trailing-row count has somewhere to
// override it.
const defaultTransitionExclusionCount = 2

// ComputationContext holds the read-only values derived from a trace
// shape, a transition degree list, and ProofOptions.
type ComputationContext struct {
	TraceWidth               uint32
	TraceLength              uint64
	TransitionDegrees        []TransitionConstraintDegree
	Options                  *options.ProofOptions
	CompositionDegree        int
	TraceDomainGenerator     *core.FieldElement
	TransitionExclusionCount int

	Field *core.Field
	Ext   *core.ExtField
}

// TracePolyDegree is N - 1, the degree of a polynomial interpolated over
// the full trace domain.
func (ctx *ComputationContext) TracePolyDegree() int {
	return int(ctx.TraceLength) - 1
}

// NewComputationContext derives a ComputationContext from a trace shape,
// its transition degree list, and proof options.
// composition_degree = ce_blowup_factor * (N-1), where ce_blowup_factor is
// the smallest power of two such that ce_blowup_factor*(N-1) is at least
// the largest transition evaluation degree.
func NewComputationContext(traceWidth uint32, traceLength uint64, transitionDegrees []TransitionConstraintDegree, opts *options.ProofOptions, field *core.Field) (*ComputationContext, error) {
	if traceLength == 0 || !core.IsPowerOfTwo(int(traceLength)) {
		return nil, fmt.Errorf("trace length %d must be a power of two", traceLength)
	}
	if err := opts.Validate(); err != nil {
		return nil, wrapError(OptionOutOfRange, err, "invalid proof options")
	}

	k := uint32(core.Log2(int(traceLength)))
	g, err := field.GetRootOfUnity(k)
	if err != nil {
		return nil, fmt.Errorf("failed to derive trace-domain generator: %w", err)
	}

	var maxEvalDegree uint64
	for _, d := range transitionDegrees {
		if ed := d.EvaluationDegree(traceLength); ed > maxEvalDegree {
			maxEvalDegree = ed
		}
	}
	ceBlowup := uint64(1)
	for ceBlowup*(traceLength-1) < maxEvalDegree {
		ceBlowup <<= 1
	}
	compositionDegree := int(ceBlowup * (traceLength - 1))

	ext := extensionFieldFor(field, opts.FieldExtension)

	return &ComputationContext{
		TraceWidth:               traceWidth,
		TraceLength:              traceLength,
		TransitionDegrees:        transitionDegrees,
		Options:                  opts,
		CompositionDegree:        compositionDegree,
		TraceDomainGenerator:     g,
		TransitionExclusionCount: defaultTransitionExclusionCount,
		Field:                    field,
		Ext:                      ext,
	}, nil
}

// extensionFieldFor builds the evaluation field E for a given
// FieldExtension setting. When extension == None, E is represented as a
// degree-2 extension whose elements the rest of this package only ever
// constructs with a zero imaginary component (via ExtField.Lift), so E
// behaves as B by convention rather than through a separate code path.
// The non-residue is the base field's multiplicative generator: since B
// has prime order p with p-1 even, the generator always falls outside
// the index-2 quadratic-residue subgroup, so y^2 = generator defines a
// genuine degree-2 extension whenever one is actually requested.
func extensionFieldFor(field *core.Field, extension options.FieldExtension) *core.ExtField {
	return core.NewExtField(field, field.Generator())
}
