package vdf

import "math/big"

// Evaluate runs the prover side of the Wesolowski construction on an
// UnsolvedVDF: it computes y = g^(2^t) mod N by t sequential
// squarings, derives the Fiat-Shamir challenge prime l, and builds the
// witness π by long division (Wesolowski's algorithm 4), alongside the
// auxiliary quotient q.
//
// The squaring loop is intentionally sequential — it must never be
// replaced by pow(2, t)-style exponent tricks, since exposing that
// cost to the caller is the entire point of a VDF.
func Evaluate(unsolved *UnsolvedVDF) (*SolvedVDF, error) {
	if len(unsolved.X) != SeedSize {
		return nil, newError(InvalidInput, "seed must be %d bytes, got %d", SeedSize, len(unsolved.X))
	}

	n := unsolved.Setup.N
	t := unsolved.Setup.T
	g := HG(n, unsolved.X)

	y := new(big.Int).Set(g)
	for i := uint64(0); i < t; i++ {
		y = modMul(y, y, n)
	}

	l, nonce, err := hashToPrime(g, y)
	if err != nil {
		return nil, err
	}

	pi, q := buildProof(g, y, n, l, t)

	return &SolvedVDF{
		Instance: unsolved,
		Y:        y,
		Pi:       pi,
		Q:        q,
		Nonce:    nonce,
	}, nil
}

// buildProof runs the long-division construction of Wesolowski's
// algorithm 4: for each of the t squaring steps, maintain the running
// remainder r of 2^i mod l and fold in g^b (b in {0,1}) every step, so
// that pi ends up as g^floor(2^t / l) mod N without ever materializing
// the huge exponent 2^t.
func buildProof(g, y, n, l *big.Int, t uint64) (pi, q *big.Int) {
	two := big.NewInt(2)
	r := big.NewInt(1)
	r2 := big.NewInt(0)
	pi = big.NewInt(1)

	for i := uint64(0); i < t; i++ {
		r2 = new(big.Int).Mul(r, two)
		b := divFloor(r2, l)
		r = modFloor(r2, l)

		pi = modMul(pi, pi, n)
		if b.Sign() != 0 {
			gb := modPow(g, b, n)
			pi = modMul(pi, gb, n)
		}
	}

	// q is informational: it lets a batched verifier avoid recomputing
	// pi^l * g^r2 from scratch. u1 and u2 are each below N, so u1*u2 can
	// approach N^2 (about 4096 bits); this must run over true
	// arbitrary-precision integers rather than mod N.
	u1 := modPow(pi, l, n)
	u2 := modPow(g, r2, n)
	product := new(big.Int).Mul(u1, u2)
	q = divFloor(product, n)

	return pi, q
}
