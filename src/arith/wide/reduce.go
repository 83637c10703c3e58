package wide

import "math/bits"

// Reduce64 maps x, uniform over [0, 2^64), onto [0, n). This is the
// multiply-shift range reduction: (x*n) >> 64. It avoids the expensive
// modulo of x%n at the cost of a slight bias for very large n.
func Reduce64(x, n uint64) uint64 {
	return UnsignedMulHi(x, n)
}

// ScaleQ64 multiplies x by the fixed-point fraction frac/2^64, rounding
// toward zero. frac is a Q0.64 value, so ScaleQ64(x, 1<<63) == x/2.
func ScaleQ64(x, frac uint64) uint64 {
	return UnsignedMulHi(x, frac)
}

// Divisor64 caches the magic constant M = ceil(2^128 / d) so that repeated
// division and modulo by an invariant d become wide multiplies.
type Divisor64 struct {
	d uint64
	m Uint128
}

func NewDivisor64(d uint64) Divisor64 {
	if d == 0 {
		panic("wide: zero divisor")
	}
	// M = floor((2^128 - 1) / d) + 1, by long division of the all-ones
	// dividend one word at a time.
	qh := uint64(maxUint64) / d
	rh := uint64(maxUint64) - qh*d
	ql, _ := bits.Div64(rh, maxUint64, d)
	return Divisor64{d: d, m: Uint128{hi: qh, lo: ql}.Inc()}
}

func (v Divisor64) Divisor() uint64 { return v.d }

// Mod returns n % d.
func (v Divisor64) Mod(n uint64) uint64 {
	lowbits := v.m.Mul64(n)
	return mulHi128By64(lowbits, v.d)
}

// Div returns n / d.
func (v Divisor64) Div(n uint64) uint64 {
	// M wraps to zero for d == 1.
	if v.d == 1 {
		return n
	}
	return mulHi128By64(v.m, n)
}

// Divisible reports whether n is an exact multiple of d.
func (v Divisor64) Divisible(n uint64) bool {
	return v.m.Mul64(n).LessOrEqualTo(v.m.Dec())
}

// mulHi128By64 returns the high 64 bits of the 192-bit product u * v,
// i.e. (u*v) >> 128.
func mulHi128By64(u Uint128, v uint64) uint64 {
	hh, hl := bits.Mul64(u.hi, v)
	lh, _ := bits.Mul64(u.lo, v)
	_, carry := bits.Add64(hl, lh, 0)
	return hh + carry
}
