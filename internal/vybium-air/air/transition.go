package air

import (
	"fmt"

	"github.com/vybium/vybium-air/internal/vybium-air/core"
)

// TransitionConstraintDegree describes the degree of one user-supplied
// transition polynomial as a list of cycle multiplicities.
type TransitionConstraintDegree struct {
	CycleLengths []uint64
	Multipliers  []uint64
}

// NewTransitionConstraintDegree builds a degree descriptor from parallel
// cycle-length / multiplier lists.
func NewTransitionConstraintDegree(cycleLengths, multipliers []uint64) (*TransitionConstraintDegree, error) {
	if len(cycleLengths) != len(multipliers) {
		return nil, fmt.Errorf("cycle length and multiplier lists must have equal length, got %d and %d", len(cycleLengths), len(multipliers))
	}
	return &TransitionConstraintDegree{CycleLengths: cycleLengths, Multipliers: multipliers}, nil
}

// EvaluationDegree computes the transition's evaluation degree for a
// trace of length n:
//
//	(n-1) * Σ multiplier_i + Σ (n/cycle_len_i - 1) * multiplier_i
func (d *TransitionConstraintDegree) EvaluationDegree(n uint64) uint64 {
	var sumMultipliers, cycleTerm uint64
	for i, cycleLen := range d.CycleLengths {
		m := d.Multipliers[i]
		sumMultipliers += m
		cycleTerm += (n/cycleLen - 1) * m
	}
	return (n-1)*sumMultipliers + cycleTerm
}

// TransitionIndex pairs a user transition-output index with its two
// composition coefficients.
type TransitionIndex struct {
	Index int
	CC    [2]*core.ExtElement
}

// TransitionConstraintGroup buckets transition constraints sharing an
// evaluation degree.
type TransitionConstraintGroup struct {
	EvaluationDegree int
	DegreeAdjustment int
	Indices          []TransitionIndex
}

// NewTransitionConstraintGroup builds an empty group for the given
// evaluation degree, computing
// degree_adjustment = (composition_degree + trace_poly_degree) - evaluation_degree.
func NewTransitionConstraintGroup(evaluationDegree, tracePolyDegree, compositionDegree int) *TransitionConstraintGroup {
	return &TransitionConstraintGroup{
		EvaluationDegree: evaluationDegree,
		DegreeAdjustment: compositionDegree + tracePolyDegree - evaluationDegree,
	}
}

// Evaluate accumulates Σ_i transitionResults[idx] * (c0 + c1*xp) over this
// group's indices. transitionResults is the caller-filled array produced
// by AIR.EvaluateTransition, one entry per transition constraint index
// across the whole AIR. xp = x^degree_adjustment is supplied by the
// caller.
func (g *TransitionConstraintGroup) Evaluate(transitionResults []*core.ExtElement, xp *core.ExtElement, ext *core.ExtField) *core.ExtElement {
	sum := ext.Zero()
	for _, idx := range g.Indices {
		coeff := idx.CC[0].Add(idx.CC[1].Mul(xp))
		sum = sum.Add(transitionResults[idx.Index].Mul(coeff))
	}
	return sum
}
