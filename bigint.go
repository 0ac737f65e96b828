package vdf

import (
	"crypto/rand"
	"math/big"
)

// This file is the "BigInt arithmetic adapter" component: the modular
// exponentiation, modular multiplication, floored division and byte
// conversions the package relies on go through these functions, which
// keeps the sequential-squaring discipline and the long-division proof
// loop (the two places correctness is easy to get subtly wrong)
// readable against the paper's pseudocode. A few plain operations
// (non-modular multiplication, SetBytes, a final Mod) still call
// math/big directly at their call sites.

// modPow returns base^exp mod mod, mod >= 1.
func modPow(base, exp, mod *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, mod)
}

// modMul returns a*b mod mod.
func modMul(a, b, mod *big.Int) *big.Int {
	z := new(big.Int).Mul(a, b)
	return z.Mod(z, mod)
}

// divFloor returns floor(a/b) for non-negative a, positive b.
func divFloor(a, b *big.Int) *big.Int {
	return new(big.Int).Div(a, b)
}

// modFloor returns a mod b, in [0, b), for non-negative a, positive b.
func modFloor(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(a, b)
}

// sampleBytes draws n uniformly random bytes, for seeds that are
// specified as a fixed byte width rather than a bit count.
func sampleBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// trimmedBytes returns the minimal big-endian encoding of x: no
// leading zero byte, and an empty slice for x == 0.
func trimmedBytes(x *big.Int) []byte {
	return x.Bytes()
}

// fromBytes interprets b as a non-negative big-endian integer.
func fromBytes(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// padLeft left-pads b with zero bytes to exactly width bytes. It
// panics if b is already longer than width, which would silently
// truncate a value the caller believes fits.
func padLeft(b []byte, width int) []byte {
	if len(b) > width {
		panic("vdf: value does not fit in the requested width")
	}
	out := make([]byte, width)
	copy(out[width-len(b):], b)
	return out
}
