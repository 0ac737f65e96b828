package vdf

import "math/big"

// Verify checks that solved is a valid Wesolowski proof for unsolved.
// It rejects with MisMatchedVDF if solved was generated for a
// different (x, t, N), with VDFVerifyError if a group element fails
// its range check or the Wesolowski relation does not hold, and
// otherwise returns nil.
func Verify(solved *SolvedVDF, unsolved *UnsolvedVDF) error {
	if solved == nil || unsolved == nil {
		return newError(VDFVerifyError, "nil proof or challenge")
	}
	if !sameInstance(solved.Instance, unsolved) {
		return newError(MisMatchedVDF, "proof references a different (x, t, N)")
	}

	n := unsolved.Setup.N
	g := HG(n, unsolved.X)

	if solved.Y == nil || solved.Pi == nil || solved.Y.Sign() < 0 || solved.Pi.Sign() < 0 ||
		solved.Y.Cmp(n) >= 0 || solved.Pi.Cmp(n) >= 0 {
		return newError(VDFVerifyError, "y or pi out of range [0, N)")
	}

	l, _, err := hashToPrime(g, solved.Y)
	if err != nil {
		return err
	}

	r := modPow(big.NewInt(2), new(big.Int).SetUint64(unsolved.Setup.T), l)
	piL := modPow(solved.Pi, l, n)
	gR := modPow(g, r, n)
	lhs := modMul(piL, gR, n)

	if lhs.Cmp(solved.Y) != 0 {
		return newError(VDFVerifyError, "wesolowski relation does not hold")
	}
	return nil
}
