package wide

import (
	"math/big"
	"testing"
)

func BenchmarkUnsignedMulHi(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchUint64Result = UnsignedMulHi(benchUint641, benchUint642)
	}
}

func BenchmarkMul64To128(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchUint128Result = Mul64To128(benchUint641, benchUint642)
	}
}

func BenchmarkMul64To128Generic(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchUint64Result, _ = mul64to128(benchUint641, benchUint642)
	}
}

func BenchmarkUint128Mul(b *testing.B) {
	u := Uint128From64(benchUint641)
	n := Uint128From64(benchUint642)
	for i := 0; i < b.N; i++ {
		benchUint128Result = u.Mul(n)
	}
}

func BenchmarkUint128Mul64(b *testing.B) {
	u := Uint128From64(benchUint641)
	for i := 0; i < b.N; i++ {
		benchUint128Result = u.Mul64(benchUint642)
	}
}

func BenchmarkReduce64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchUint64Result = Reduce64(benchUint641, benchUint642)
	}
}

func BenchmarkDivisor64Mod(b *testing.B) {
	dv := NewDivisor64(benchUint642)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchUint64Result = dv.Mod(benchUint641)
	}
}

func BenchmarkUint64Mod(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchUint64Result = benchUint641 % benchUint642
	}
}

func BenchmarkBigIntMulHi(b *testing.B) {
	v1 := new(big.Int).SetUint64(benchUint641)
	v2 := new(big.Int).SetUint64(benchUint642)

	for i := 0; i < b.N; i++ {
		var dest big.Int
		dest.Mul(v1, v2)
		benchBigIntResult = dest.Rsh(&dest, 64)
	}
}

func BenchmarkBigIntCmpEqual(b *testing.B) {
	var v1, v2 big.Int
	v1.SetUint64(maxUint64)
	v2.SetUint64(maxUint64)

	for i := 0; i < b.N; i++ {
		benchBoolResult = v1.Cmp(&v2) == 0
	}
}
