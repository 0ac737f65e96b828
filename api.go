package vdf

// Compute is the top-level prover entry point: given a time parameter
// t and a 32-byte seed x, it runs the evaluator, self-verifies the
// result (protecting callers against a corrupted backend), and returns
// the wire-format proof.
func Compute(t uint64, x []byte) (*SerializedProof, error) {
	if len(x) != SeedSize {
		return nil, newError(InvalidInput, "seed must be %d bytes, got %d", SeedSize, len(x))
	}

	setup := PublicSetup(t)
	unsolved := &UnsolvedVDF{X: x, Setup: setup}

	solved, err := Evaluate(unsolved)
	if err != nil {
		return nil, err
	}

	if err := Verify(solved, unsolved); err != nil {
		return nil, newError(InternalError, "evaluator produced a proof that failed self-verification: %v", err)
	}

	return toSerializedProof(solved), nil
}

// VerifySerialized is the top-level verifier entry point: given a serialized
// parameter and a serialized proof, it rebuilds both sides and checks
// the Wesolowski relation.
func VerifySerialized(parameter *SerializedParameter, proof *SerializedProof) error {
	if len(parameter.X) != SeedSize {
		return newError(InvalidInput, "seed must be %d bytes, got %d", SeedSize, len(parameter.X))
	}

	setup := PublicSetup(parameter.T)
	unsolved := &UnsolvedVDF{X: parameter.X, Setup: setup}
	solved := toSolvedVDF(unsolved, proof)

	return Verify(solved, unsolved)
}
