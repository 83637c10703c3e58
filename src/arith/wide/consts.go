package wide

import "math/big"

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
)

var (
	MaxUint128 = Uint128{hi: maxUint64, lo: maxUint64}

	zeroUint128 Uint128

	maxBigUint64     = new(big.Int).SetUint64(maxUint64)
	maxBigUint128, _ = new(big.Int).SetString("340282366920938463463374607431768211455", 10)

	// wrapBigUint128 is 1 << 128, used to simulate over/underflow:
	wrapBigUint128, _ = new(big.Int).SetString("340282366920938463463374607431768211456", 10)
)
