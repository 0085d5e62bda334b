package coin

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/vybium/vybium-air/internal/vybium-air/core"
)

// hashFunc hashes a single byte slice to a fixed-size digest, the shape
// both golang.org/x/crypto/sha3 and github.com/zeebo/blake3 expose.
type hashFunc func(data []byte) []byte

// baseCoin implements the Coin draw sequence shared by Sha3Coin and
// Blake3Coin: each draw hashes state||counter, reduces the digest modulo
// the base field's modulus, and advances counter. Building an ExtElement
// consumes `degree` base draws (1 for FieldExtension == None, 2 for
// FieldExtension == Quadratic), since a degree-2 extension element needs
// one base-field draw per component.
type baseCoin struct {
	hash    hashFunc
	ext     *core.ExtField
	degree  int
	seed    []byte
	counter uint64
}

func newBaseCoin(hash hashFunc, seed []byte, ext *core.ExtField, degree int) (*baseCoin, error) {
	if degree != 1 && degree != 2 {
		return nil, fmt.Errorf("coin: unsupported extension degree %d", degree)
	}
	state := make([]byte, len(seed))
	copy(state, seed)
	return &baseCoin{hash: hash, ext: ext, degree: degree, seed: state}, nil
}

func (c *baseCoin) drawBaseElement() *core.FieldElement {
	var counterBytes [8]byte
	binary.BigEndian.PutUint64(counterBytes[:], c.counter)
	c.counter++

	digest := c.hash(append(append([]byte{}, c.seed...), counterBytes[:]...))
	value := new(big.Int).SetBytes(digest)
	return c.ext.Base().NewElement(value)
}

func (c *baseCoin) drawExtElement() *core.ExtElement {
	c0 := c.drawBaseElement()
	if c.degree == 1 {
		return c.ext.Lift(c0)
	}
	c1 := c.drawBaseElement()
	return c.ext.NewExtElement(c0, c1)
}

// DrawPair returns the next (alpha, beta) coefficient pair.
func (c *baseCoin) DrawPair() (*core.ExtElement, *core.ExtElement, error) {
	return c.drawExtElement(), c.drawExtElement(), nil
}
