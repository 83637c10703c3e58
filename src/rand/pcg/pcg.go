package pcg

import (
	"math/bits"

	"widemul/src/arith/wide"
)

// 128-bit LCG multiplier and increment from the PCG reference
// implementation.
const (
	mulHigh = 2549297995355413924
	mulLow  = 4865540595714422341
	incHigh = 6364136223846793005
	incLow  = 1442695040888963407
)

// PCG is a pcg64-xsl-rr generator. Its state advance is a 128-bit
// multiply, so every output exercises the wide-multiply primitive. Not
// cryptographically secure and not safe for concurrent use; callers that
// need both shard one generator per goroutine.
type PCG struct {
	high, low uint64
}

func New(seed uint64) *PCG {
	p := &PCG{}
	p.Seed(seed)
	return p
}

func (p *PCG) Seed(seed uint64) {
	p.low = seed
	p.high = seed
}

func (p *PCG) Uint64() uint64 {
	p.multiply()
	p.add()
	// XSL-RR output: fold the state and rotate by the top bits.
	return bits.RotateLeft64(p.high^p.low, -int(p.high>>58))
}

// Uint64n returns a value in [0, n) via multiply-shift reduction.
// Returns 0 if n == 0.
func (p *PCG) Uint64n(n uint64) uint64 {
	return wide.Reduce64(p.Uint64(), n)
}

func (p *PCG) add() {
	var carry uint64
	p.low, carry = bits.Add64(p.low, incLow, 0)
	p.high, _ = bits.Add64(p.high, incHigh, carry)
}

func (p *PCG) multiply() {
	product := wide.Mul64To128(p.low, mulLow)
	hi := product.Hi() + p.high*mulLow + p.low*mulHigh
	p.low = product.Lo()
	p.high = hi
}
