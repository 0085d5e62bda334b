package air

import "github.com/vybium/vybium-air/internal/vybium-air/core"

// AssertionKind discriminates the three declarative boundary-condition
// shapes a trace register can be constrained with. Modelled as a tagged
// union with an explicit discriminator rather than an inheritance
// hierarchy.
type AssertionKind int

const (
	// Single constrains one register at exactly one step.
	Single AssertionKind = iota
	// Periodic constrains one register at every step of an arithmetic
	// progression, with one shared value.
	Periodic
	// Sequence constrains one register at every step of an arithmetic
	// progression, cycling through a distinct value per hit.
	Sequence
)

func (k AssertionKind) String() string {
	switch k {
	case Single:
		return "Single"
	case Periodic:
		return "Periodic"
	case Sequence:
		return "Sequence"
	default:
		return "Unknown"
	}
}

// Assertion is a declarative boundary condition on one trace register.
type Assertion struct {
	Register  uint32
	FirstStep uint64
	Stride    uint64
	Values    []*core.FieldElement
}

// Kind reports which of the three variants a lives in, derived from its
// Stride/Values shape rather than stored redundantly.
func (a *Assertion) Kind() AssertionKind {
	switch {
	case a.Stride == 0:
		return Single
	case len(a.Values) == 1:
		return Periodic
	default:
		return Sequence
	}
}

// NewSingle builds a Single assertion: register constrained to value at
// exactly one step.
func NewSingle(register uint32, step uint64, value *core.FieldElement) (*Assertion, error) {
	return &Assertion{
		Register:  register,
		FirstStep: step,
		Stride:    0,
		Values:    []*core.FieldElement{value},
	}, nil
}

// NewPeriodic builds a Periodic assertion: register constrained to a
// shared value at every step of an arithmetic progression with the given
// stride. stride must be a power of two >= 2 and firstStep must be less
// than stride, or construction fails with InvalidAssertionShape.
func NewPeriodic(register uint32, firstStep, stride uint64, value *core.FieldElement) (*Assertion, error) {
	if stride < 2 || !core.IsPowerOfTwo(int(stride)) {
		return nil, newError(InvalidAssertionShape, "periodic assertion stride %d must be a power of two >= 2", stride)
	}
	if firstStep >= stride {
		return nil, newError(InvalidAssertionShape, "periodic assertion first_step %d must be less than stride %d", firstStep, stride)
	}
	return &Assertion{
		Register:  register,
		FirstStep: firstStep,
		Stride:    stride,
		Values:    []*core.FieldElement{value},
	}, nil
}

// NewSequence builds a Sequence assertion: register constrained to a
// distinct value at each step of an arithmetic progression with the given
// stride, cycling through values in order. stride must be a power of two
// >= 2, firstStep must be less than stride, and len(values) must be a
// power of two >= 2, or construction fails with InvalidAssertionShape.
func NewSequence(register uint32, firstStep, stride uint64, values []*core.FieldElement) (*Assertion, error) {
	if stride < 2 || !core.IsPowerOfTwo(int(stride)) {
		return nil, newError(InvalidAssertionShape, "sequence assertion stride %d must be a power of two >= 2", stride)
	}
	if firstStep >= stride {
		return nil, newError(InvalidAssertionShape, "sequence assertion first_step %d must be less than stride %d", firstStep, stride)
	}
	if len(values) < 2 || !core.IsPowerOfTwo(len(values)) {
		return nil, newError(InvalidAssertionShape, "sequence assertion values length %d must be a power of two >= 2", len(values))
	}
	return &Assertion{
		Register:  register,
		FirstStep: firstStep,
		Stride:    stride,
		Values:    values,
	}, nil
}

// ValidateTraceWidth fails with RegisterOutOfRange if a's register does
// not index a column of a trace with the given width.
func (a *Assertion) ValidateTraceWidth(width uint32) error {
	if a.Register >= width {
		return newError(RegisterOutOfRange, "register %d is out of range for trace width %d", a.Register, width)
	}
	return nil
}

// ValidateTraceLength fails with StepOutOfRange if a's step parameters
// are inconsistent with a trace of the given length.
func (a *Assertion) ValidateTraceLength(length uint64) error {
	if a.Stride == 0 {
		if a.FirstStep >= length {
			return newError(StepOutOfRange, "first_step %d is out of range for trace length %d", a.FirstStep, length)
		}
		return nil
	}
	if length%a.Stride != 0 {
		return newError(StepOutOfRange, "stride %d does not divide trace length %d", a.Stride, length)
	}
	if len(a.Values) > 1 && uint64(len(a.Values))*a.Stride != length {
		return newError(StepOutOfRange, "sequence values length %d * stride %d does not equal trace length %d", len(a.Values), a.Stride, length)
	}
	return nil
}

// effectiveStride returns a's stride for overlap purposes: Single
// assertions (Stride == 0) conceptually have a single hit within
// [0, traceLength), which is exactly what substituting traceLength as the
// stride produces.
func (a *Assertion) effectiveStride(traceLength uint64) uint64 {
	if a.Stride == 0 {
		return traceLength
	}
	return a.Stride
}

// OverlapsWith reports whether a and other constrain an intersecting set
// of (register, step) pairs. traceLength resolves Single assertions'
// conceptual stride. Both strides are
// guaranteed to be powers of two dividing traceLength, so the smaller
// always divides the larger and a single congruence check suffices.
func (a *Assertion) OverlapsWith(other *Assertion, traceLength uint64) bool {
	if a.Register != other.Register {
		return false
	}
	s1, s2 := a.effectiveStride(traceLength), other.effectiveStride(traceLength)
	f1, f2 := a.FirstStep, other.FirstStep
	if s1 > s2 {
		s1, s2 = s2, s1
		f1, f2 = f2, f1
	}
	return f1%s1 == f2%s1
}
