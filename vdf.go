// Package vdf implements a Verifiable Delay Function: a function whose
// evaluation takes a prescribed amount of essentially sequential work
// but whose result carries a proof a verifier can check far faster
// than recomputing it. This package implements the Wesolowski
// construction (https://eprint.iacr.org/2018/623.pdf) over an RSA
// group of unknown order, with a Keccak-256-based Fiat-Shamir
// hash-to-prime for the verifier's challenge.
package vdf

import "math/big"

// SeedSize is the required length, in bytes, of an UnsolvedVDF's seed x.
const SeedSize = 32

// Setup carries the public parameters of a VDF instance: the trusted
// modulus N and the sequential-work parameter t.
type Setup struct {
	T uint64
	N *big.Int
}

// PublicSetup returns a Setup using the embedded trusted RSA-2048
// modulus and the given time parameter.
func PublicSetup(t uint64) *Setup {
	return &Setup{T: t, N: TrustedModulus()}
}

// UnsolvedVDF is a challenge: a seed x under a given Setup, waiting for
// a SolvedVDF. The challenger keeps it until a solution arrives;
// Verify consumes both without mutating either.
type UnsolvedVDF struct {
	X     []byte // exactly SeedSize bytes
	Setup *Setup
}

// PickChallenge samples a fresh uniformly random 32-byte seed and
// returns the corresponding challenge under setup.
func PickChallenge(setup *Setup) (*UnsolvedVDF, error) {
	x, err := sampleBytes(SeedSize)
	if err != nil {
		return nil, newError(InternalError, "sampling challenge seed: %v", err)
	}
	return &UnsolvedVDF{X: x, Setup: setup}, nil
}

// sameInstance reports whether two UnsolvedVDFs reference the same
// (x, t, N) triple — the structural equality check Verify needs before
// trusting any proof against them.
func sameInstance(a, b *UnsolvedVDF) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.X) != len(b.X) {
		return false
	}
	for i := range a.X {
		if a.X[i] != b.X[i] {
			return false
		}
	}
	if a.Setup == nil || b.Setup == nil {
		return a.Setup == b.Setup
	}
	return a.Setup.T == b.Setup.T && a.Setup.N.Cmp(b.Setup.N) == 0
}

// SolvedVDF is a completed VDF instance: the output y, the Wesolowski
// witness π, the auxiliary quotient q, and the nonce that found the
// Fiat-Shamir challenge prime.
type SolvedVDF struct {
	Instance *UnsolvedVDF
	Y        *big.Int
	Pi       *big.Int
	Q        *big.Int
	Nonce    uint32
}

// HG maps a seed x to a generator g of the group modulo N: the
// Keccak-256 digest of N's and x's minimal big-endian encodings,
// reduced mod N. H_G does not explicitly reject g in {0, 1}; the
// probability of landing there is negligible and the Wesolowski
// relation is unaffected if it does.
func HG(n *big.Int, x []byte) *big.Int {
	digest := hashBytes(trimmedBytes(n), x)
	g := new(big.Int).SetBytes(digest[:])
	return g.Mod(g, n)
}
