package coin

import (
	"github.com/zeebo/blake3"

	"github.com/vybium/vybium-air/internal/vybium-air/core"
)

// Blake3Coin is the reference Coin for ProofOptions.HashFn == Blake3_256.
type Blake3Coin struct {
	*baseCoin
}

// NewBlake3Coin seeds a Blake3Coin. degree selects how many base-field
// draws compose one extension element (1 for FieldExtension == None, 2
// for Quadratic).
func NewBlake3Coin(seed []byte, ext *core.ExtField, degree int) (*Blake3Coin, error) {
	base, err := newBaseCoin(blake3Sum256, seed, ext, degree)
	if err != nil {
		return nil, err
	}
	return &Blake3Coin{baseCoin: base}, nil
}

func blake3Sum256(data []byte) []byte {
	h := blake3.New()
	h.Write(data)
	var digest [32]byte
	h.Digest().Read(digest[:])
	return digest[:]
}
