package coin

import (
	"golang.org/x/crypto/sha3"

	"github.com/vybium/vybium-air/internal/vybium-air/core"
)

// Sha3Coin is the reference Coin for ProofOptions.HashFn == Sha3_256.
type Sha3Coin struct {
	*baseCoin
}

// NewSha3Coin seeds a Sha3Coin. degree selects how many base-field draws
// compose one extension element (1 for FieldExtension == None, 2 for
// Quadratic).
func NewSha3Coin(seed []byte, ext *core.ExtField, degree int) (*Sha3Coin, error) {
	base, err := newBaseCoin(sha3Sum256, seed, ext, degree)
	if err != nil {
		return nil, err
	}
	return &Sha3Coin{baseCoin: base}, nil
}

func sha3Sum256(data []byte) []byte {
	sum := sha3.Sum256(data)
	return sum[:]
}
