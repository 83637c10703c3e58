package wide

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

// Uint128 is the double-width intermediate of 64-bit unsigned arithmetic,
// stored as two 64-bit words. Arithmetic wraps at 2^128.
type Uint128 struct {
	hi, lo uint64
}

func Uint128From64(v uint64) Uint128 {
	return Uint128{lo: v}
}

func Uint128FromRaw(hi, lo uint64) Uint128 {
	return Uint128{hi: hi, lo: lo}
}

// Uint128FromBigInt returns b as a Uint128. acc is false if b is negative
// or does not fit in 128 bits; the result saturates in that case.
func Uint128FromBigInt(b *big.Int) (u Uint128, acc bool) {
	if b.Sign() < 0 {
		return zeroUint128, false
	}
	if b.BitLen() > 128 {
		return MaxUint128, false
	}
	var lo, hi big.Int
	lo.And(b, maxBigUint64)
	hi.Rsh(b, 64)
	return Uint128{hi: hi.Uint64(), lo: lo.Uint64()}, true
}

func Uint128FromString(s string) (u Uint128, acc bool) {
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return zeroUint128, false
	}
	return Uint128FromBigInt(b)
}

func MustUint128FromString(s string) Uint128 {
	u, acc := Uint128FromString(s)
	if !acc {
		panic(fmt.Errorf("wide: string %q is not a valid uint128", s))
	}
	return u
}

func MustUint128FromI64(v int64) Uint128 {
	if v < 0 {
		panic(fmt.Errorf("wide: int64 %d is not a valid uint128", v))
	}
	return Uint128{lo: uint64(v)}
}

func LargerUint128(a, b Uint128) Uint128 {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func SmallerUint128(a, b Uint128) Uint128 {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

func (u Uint128) Raw() (hi, lo uint64) { return u.hi, u.lo }
func (u Uint128) Hi() uint64           { return u.hi }
func (u Uint128) Lo() uint64           { return u.lo }

func (u Uint128) IsZero() bool { return u.hi|u.lo == 0 }

func (u Uint128) IsUint64() bool { return u.hi == 0 }

// AsUint64 truncates to the low 64 bits.
func (u Uint128) AsUint64() uint64 { return u.lo }

func (u Uint128) MustUint64() uint64 {
	if u.hi != 0 {
		panic(fmt.Errorf("wide: %s does not fit in a uint64", u))
	}
	return u.lo
}

func (u Uint128) AsBigInt() *big.Int {
	b := new(big.Int).SetUint64(u.hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.lo))
}

func (u Uint128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	return u.AsBigInt().String()
}

func (u Uint128) Equal(n Uint128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u Uint128) Equal64(n uint64) bool {
	return u.hi == 0 && u.lo == n
}

func (u Uint128) Cmp(n Uint128) int {
	switch {
	case u.hi > n.hi:
		return 1
	case u.hi < n.hi:
		return -1
	case u.lo > n.lo:
		return 1
	case u.lo < n.lo:
		return -1
	}
	return 0
}

func (u Uint128) Cmp64(n uint64) int {
	switch {
	case u.hi != 0 || u.lo > n:
		return 1
	case u.lo < n:
		return -1
	}
	return 0
}

func (u Uint128) LessThan(n Uint128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u Uint128) LessOrEqualTo(n Uint128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo <= n.lo)
}

func (u Uint128) GreaterThan(n Uint128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u Uint128) GreaterOrEqualTo(n Uint128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo >= n.lo)
}

func (u Uint128) Not() Uint128 {
	return Uint128{hi: ^u.hi, lo: ^u.lo}
}

func (u Uint128) Add(n Uint128) (v Uint128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, n.lo, 0)
	v.hi, _ = bits.Add64(u.hi, n.hi, carry)
	return v
}

func (u Uint128) Add64(n uint64) (v Uint128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, n, 0)
	v.hi = u.hi + carry
	return v
}

func (u Uint128) Sub(n Uint128) (v Uint128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, n.lo, 0)
	v.hi, _ = bits.Sub64(u.hi, n.hi, borrow)
	return v
}

func (u Uint128) Sub64(n uint64) (v Uint128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, n, 0)
	v.hi = u.hi - borrow
	return v
}

func (u Uint128) Inc() (v Uint128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, 1, 0)
	v.hi = u.hi + carry
	return v
}

func (u Uint128) Dec() (v Uint128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, 1, 0)
	v.hi = u.hi - borrow
	return v
}

// Mul returns u * n, truncated to 128 bits. The cross terms that would
// escape bit 127 are discarded, so only the low words need a full
// double-width multiply.
func (u Uint128) Mul(n Uint128) Uint128 {
	hi, lo := bits.Mul64(u.lo, n.lo)
	hi += u.hi*n.lo + u.lo*n.hi
	return Uint128{hi: hi, lo: lo}
}

func (u Uint128) Mul64(n uint64) Uint128 {
	hi, lo := bits.Mul64(u.lo, n)
	hi += u.hi * n
	return Uint128{hi: hi, lo: lo}
}

func (u Uint128) Lsh(n uint) Uint128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return zeroUint128
	case n >= 64:
		return Uint128{hi: u.lo << (n - 64)}
	default:
		return Uint128{hi: u.hi<<n | u.lo>>(64-n), lo: u.lo << n}
	}
}

func (u Uint128) Rsh(n uint) Uint128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return zeroUint128
	case n >= 64:
		return Uint128{lo: u.hi >> (n - 64)}
	default:
		return Uint128{hi: u.hi >> n, lo: u.lo>>n | u.hi<<(64-n)}
	}
}

func (u Uint128) BitLen() int {
	if u.hi != 0 {
		return bits.Len64(u.hi) + 64
	}
	return bits.Len64(u.lo)
}
