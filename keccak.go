package vdf

import (
	"math/big"

	"golang.org/x/crypto/sha3"
)

// keccak256Size is the digest width in bytes.
const keccak256Size = 32

// keccak256 hashes raw bytes with plain Keccak-256 (the pre-standardization
// padding, not NIST SHA3-256). golang.org/x/crypto/sha3 exposes this as
// NewLegacyKeccak256.
func keccak256(data ...[]byte) [keccak256Size]byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	var out [keccak256Size]byte
	copy(out[:], h.Sum(nil))
	return out
}

// hashInts concatenates the minimal big-endian encoding of each
// integer and returns the Keccak-256 digest interpreted as an integer.
func hashInts(xs ...*big.Int) *big.Int {
	bufs := make([][]byte, len(xs))
	for i, x := range xs {
		bufs[i] = trimmedBytes(x)
	}
	digest := keccak256(bufs...)
	return new(big.Int).SetBytes(digest[:])
}

// hashBytes hashes raw byte strings and returns the digest bytes.
func hashBytes(data ...[]byte) [keccak256Size]byte {
	return keccak256(data...)
}

// hashPoints is reserved for elliptic-curve point inputs. It is not
// exercised by the RSA-group VDF core; kept only so a future curve-based
// construction has a hashing entry point that matches hashInts/hashBytes.
func hashPoints(points ...[]byte) [keccak256Size]byte {
	return keccak256(points...)
}
