package vdf

import "encoding/binary"

const (
	groupElementSize = 256 // bytes; matches the 2048-bit trusted modulus
	nonceSize        = 4
	// ProofSize is the fixed wire size of a SerializedProof: y || pi || q || nonce.
	ProofSize = groupElementSize*3 + nonceSize
	// ParameterSize is the fixed wire size of a SerializedParameter: x || t.
	ParameterSize = SeedSize + 8
)

// SerializedParameter is the fixed-width wire form of an UnsolvedVDF's
// public parameters: the 32-byte seed x and the 8-byte big-endian t.
type SerializedParameter struct {
	X []byte
	T uint64
}

// EncodeParameter writes p to an exact ParameterSize-byte slice.
func EncodeParameter(p *SerializedParameter) []byte {
	out := make([]byte, ParameterSize)
	copy(out[:SeedSize], p.X)
	binary.BigEndian.PutUint64(out[SeedSize:], p.T)
	return out
}

// DecodeParameter parses an exact ParameterSize-byte slice. A slice of
// any other length is a fatal input error.
func DecodeParameter(b []byte) (*SerializedParameter, error) {
	if len(b) != ParameterSize {
		return nil, newError(InvalidInput, "serialized parameter must be %d bytes, got %d", ParameterSize, len(b))
	}
	x := make([]byte, SeedSize)
	copy(x, b[:SeedSize])
	return &SerializedParameter{
		X: x,
		T: binary.BigEndian.Uint64(b[SeedSize:]),
	}, nil
}

// SerializedProof is the fixed 772-byte wire form of a SolvedVDF's
// output: y || pi || q, each left-padded to 256 bytes, followed by the
// 4-byte big-endian nonce.
type SerializedProof struct {
	Y     []byte // 256 bytes
	Pi    []byte // 256 bytes
	Q     []byte // 256 bytes
	Nonce uint32
}

// EncodeProof writes p to an exact ProofSize-byte slice. It panics if
// any of Y, Pi, Q is already longer than 256 bytes — that would mean
// the caller constructed a SerializedProof with an out-of-group value.
func EncodeProof(p *SerializedProof) []byte {
	out := make([]byte, ProofSize)
	copy(out[0:groupElementSize], padLeft(p.Y, groupElementSize))
	copy(out[groupElementSize:2*groupElementSize], padLeft(p.Pi, groupElementSize))
	copy(out[2*groupElementSize:3*groupElementSize], padLeft(p.Q, groupElementSize))
	binary.BigEndian.PutUint32(out[3*groupElementSize:], p.Nonce)
	return out
}

// DecodeProof parses an exact ProofSize-byte slice. A slice of any
// other length is a fatal input error. Range checks on the decoded
// values are deferred to Verify.
func DecodeProof(b []byte) (*SerializedProof, error) {
	if len(b) != ProofSize {
		return nil, newError(InvalidInput, "serialized proof must be %d bytes, got %d", ProofSize, len(b))
	}
	y := make([]byte, groupElementSize)
	pi := make([]byte, groupElementSize)
	q := make([]byte, groupElementSize)
	copy(y, b[0:groupElementSize])
	copy(pi, b[groupElementSize:2*groupElementSize])
	copy(q, b[2*groupElementSize:3*groupElementSize])
	nonce := binary.BigEndian.Uint32(b[3*groupElementSize:])
	return &SerializedProof{Y: y, Pi: pi, Q: q, Nonce: nonce}, nil
}

// toSerializedProof left-pads each group element of a SolvedVDF to the
// wire width.
func toSerializedProof(s *SolvedVDF) *SerializedProof {
	return &SerializedProof{
		Y:     padLeft(trimmedBytes(s.Y), groupElementSize),
		Pi:    padLeft(trimmedBytes(s.Pi), groupElementSize),
		Q:     padLeft(trimmedBytes(s.Q), groupElementSize),
		Nonce: s.Nonce,
	}
}

// toSolvedVDF reconstructs a SolvedVDF's integers from a decoded wire
// proof, against the given instance. The nonce is carried through but
// never separately re-verified: a wrong nonce changes the hash-to-prime
// challenge l and fails the Wesolowski relation on its own.
func toSolvedVDF(instance *UnsolvedVDF, p *SerializedProof) *SolvedVDF {
	return &SolvedVDF{
		Instance: instance,
		Y:        fromBytes(p.Y),
		Pi:       fromBytes(p.Pi),
		Q:        fromBytes(p.Q),
		Nonce:    p.Nonce,
	}
}
