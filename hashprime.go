package vdf

import (
	"encoding/binary"
	"math"
	"math/big"
)

// millerRabinRounds is the number of pseudorandom-base Miller-Rabin
// rounds ProbablyPrime runs on top of the Baillie-PSW test it always
// applies. math/big documents that a composite is then reported prime
// with probability at most 4^-n. hashToPrime calls it on every
// candidate; most composites are rejected by trial division or the
// first failing round, so the full 40 rounds are paid mainly on the
// candidate that is returned.
const millerRabinRounds = 40

// maxNonce bounds the hash-to-prime counter. Expected trials before a
// 256-bit candidate hits a prime are roughly 180 by the prime number
// theorem; overflowing a uint32 before that happens indicates a
// backend bug, not bad luck.
const maxNonce = math.MaxUint32

// hashToPrime deterministically derives a prime challenge l and the
// nonce that found it from (g, y), per the Fiat-Shamir construction:
// increment a counter, hash (g || y || nonce), and stop at the first
// candidate that passes a probabilistic primality test.
func hashToPrime(g, y *big.Int) (*big.Int, uint32, error) {
	gBytes := trimmedBytes(g)
	yBytes := trimmedBytes(y)

	var nonceBuf [4]byte
	for nonce := uint32(0); ; nonce++ {
		binary.BigEndian.PutUint32(nonceBuf[:], nonce)
		digest := hashBytes(gBytes, yBytes, nonceBuf[:])

		candidate := new(big.Int).SetBytes(digest[:])
		if candidate.ProbablyPrime(millerRabinRounds) {
			return candidate, nonce, nil
		}

		if nonce == maxNonce {
			return nil, 0, newError(InternalError, "hash-to-prime nonce overflow after %d trials", maxNonce+1)
		}
	}
}
