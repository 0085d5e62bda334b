// Package coin provides deterministic pseudo-random field-element draws
// for the AIR compiler's boundary and transition coefficient assignment.
// It follows the Fiat-Shamir transcript-update pattern — hash the seed
// and a counter, reduce modulo the field, advance the counter — but is
// specialized to the single operation the compiler needs: sequential
// draws of (E, E) pairs from a seed, with no send/receive transcript
// bookkeeping.
package coin

import "github.com/vybium/vybium-air/internal/vybium-air/core"

// Coin draws deterministic pseudo-random pairs of evaluation-field
// elements, one pair per boundary or transition constraint, in the
// canonical order the compiler presents assertions/degrees.
type Coin interface {
	// DrawPair returns the next (alpha, beta) pair of linear-combination
	// coefficients and advances the coin's internal state.
	DrawPair() (*core.ExtElement, *core.ExtElement, error)
}
