package wide

import "math/bits"

// UnsignedMulHi returns the high 64 bits of the full 128-bit product of x
// and y, i.e. (x*y) >> 64 with no truncation of the intermediate. It is
// total over the whole input domain and never panics.
func UnsignedMulHi(x, y uint64) uint64 {
	hi, _ := bits.Mul64(x, y)
	return hi
}

// Mul64To128 returns the full 128-bit product of x and y.
func Mul64To128(x, y uint64) Uint128 {
	hi, lo := bits.Mul64(x, y)
	return Uint128{hi: hi, lo: lo}
}

// mul64to128 is the portable 32-bit-limb version of Mul64To128, kept as an
// independent reference for the tests. It must agree with bits.Mul64 for
// every input pair.
func mul64to128(u, v uint64) (hi, lo uint64) {
	var (
		u1 = (u & 0xffffffff)
		v1 = (v & 0xffffffff)
		t  = (u1 * v1)
		w3 = (t & 0xffffffff)
		k  = (t >> 32)
	)

	u >>= 32
	t = (u * v1) + k
	k = (t & 0xffffffff)
	var w1 = (t >> 32)

	v >>= 32
	t = (u1 * v) + k
	k = (t >> 32)

	return (u * v) + w1 + k,
		(t << 32) + w3
}
