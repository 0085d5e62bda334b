// Package options defines the ProofOptions value the AIR compiler takes
// as input: a validated struct with a Validate() error, fluent With*
// setters, and a Clone().
package options

import "fmt"

// HashFn selects the hash function used both as ProofOptions.HashFn and,
// downstream, to seed a coin.Coin. Matches the two concrete Coin
// implementations this module ships.
type HashFn int

const (
	// Sha3_256 selects golang.org/x/crypto/sha3's Sha3-256.
	Sha3_256 HashFn = iota
	// Blake3_256 selects github.com/zeebo/blake3's Blake3-256.
	Blake3_256
)

func (h HashFn) String() string {
	switch h {
	case Sha3_256:
		return "Sha3_256"
	case Blake3_256:
		return "Blake3_256"
	default:
		return fmt.Sprintf("HashFn(%d)", int(h))
	}
}

// FieldExtension selects the evaluation field E relative to the base
// field B.
type FieldExtension int

const (
	// None means E = B.
	None FieldExtension = iota
	// Quadratic means E is a degree-2 extension of B.
	Quadratic
)

func (e FieldExtension) String() string {
	switch e {
	case None:
		return "None"
	case Quadratic:
		return "Quadratic"
	default:
		return fmt.Sprintf("FieldExtension(%d)", int(e))
	}
}

// Degree reports how many base-field elements compose one element of the
// selected evaluation field: 1 for None, 2 for Quadratic.
func (e FieldExtension) Degree() int {
	if e == Quadratic {
		return 2
	}
	return 1
}

// Bounds the compiler enforces on ProofOptions fields.
const (
	MinNumQueries = 1
	MaxNumQueries = 128

	MinBlowupFactor = 4
	MaxBlowupFactor = 256

	MinGrindingFactor = 0
	MaxGrindingFactor = 32
)

// ProofOptions carries the parameters that bind the number of FRI
// queries, the low-degree-extension blowup, a proof-of-work grinding
// factor, and the hash function / evaluation field to use.
type ProofOptions struct {
	NumQueries     uint32
	BlowupFactor   uint32
	GrindingFactor uint32
	HashFn         HashFn
	FieldExtension FieldExtension
}

// New builds a ProofOptions and validates it eagerly rather than
// deferring validation to first use.
func New(numQueries, blowupFactor, grindingFactor uint32, hashFn HashFn, fieldExtension FieldExtension) (*ProofOptions, error) {
	o := &ProofOptions{
		NumQueries:     numQueries,
		BlowupFactor:   blowupFactor,
		GrindingFactor: grindingFactor,
		HashFn:         hashFn,
		FieldExtension: fieldExtension,
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// DefaultProofOptions returns a conservative, test-friendly ProofOptions.
func DefaultProofOptions() *ProofOptions {
	return &ProofOptions{
		NumQueries:     28,
		BlowupFactor:   8,
		GrindingFactor: 0,
		HashFn:         Blake3_256,
		FieldExtension: None,
	}
}

// Validate reports whether every field is within its documented bounds.
func (o *ProofOptions) Validate() error {
	if o.NumQueries < MinNumQueries || o.NumQueries > MaxNumQueries {
		return fmt.Errorf("num_queries %d out of range [%d, %d]", o.NumQueries, MinNumQueries, MaxNumQueries)
	}
	if !isPowerOfTwo(int(o.BlowupFactor)) || o.BlowupFactor < MinBlowupFactor || o.BlowupFactor > MaxBlowupFactor {
		return fmt.Errorf("blowup_factor %d must be a power of two in [%d, %d]", o.BlowupFactor, MinBlowupFactor, MaxBlowupFactor)
	}
	if o.GrindingFactor < MinGrindingFactor || o.GrindingFactor > MaxGrindingFactor {
		return fmt.Errorf("grinding_factor %d out of range [%d, %d]", o.GrindingFactor, MinGrindingFactor, MaxGrindingFactor)
	}
	if o.HashFn != Sha3_256 && o.HashFn != Blake3_256 {
		return fmt.Errorf("unsupported hash_fn %v", o.HashFn)
	}
	if o.FieldExtension != None && o.FieldExtension != Quadratic {
		return fmt.Errorf("unsupported field_extension %v", o.FieldExtension)
	}
	return nil
}

// WithNumQueries returns a copy of o with NumQueries replaced.
func (o *ProofOptions) WithNumQueries(n uint32) *ProofOptions {
	clone := o.Clone()
	clone.NumQueries = n
	return clone
}

// WithBlowupFactor returns a copy of o with BlowupFactor replaced.
func (o *ProofOptions) WithBlowupFactor(n uint32) *ProofOptions {
	clone := o.Clone()
	clone.BlowupFactor = n
	return clone
}

// WithGrindingFactor returns a copy of o with GrindingFactor replaced.
func (o *ProofOptions) WithGrindingFactor(n uint32) *ProofOptions {
	clone := o.Clone()
	clone.GrindingFactor = n
	return clone
}

// WithHashFn returns a copy of o with HashFn replaced.
func (o *ProofOptions) WithHashFn(h HashFn) *ProofOptions {
	clone := o.Clone()
	clone.HashFn = h
	return clone
}

// WithFieldExtension returns a copy of o with FieldExtension replaced.
func (o *ProofOptions) WithFieldExtension(e FieldExtension) *ProofOptions {
	clone := o.Clone()
	clone.FieldExtension = e
	return clone
}

// Clone returns a copy of o.
func (o *ProofOptions) Clone() *ProofOptions {
	c := *o
	return &c
}

func isPowerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }
