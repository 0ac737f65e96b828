package vdf

import "fmt"

// Kind classifies the ways a VDF operation can fail.
type Kind int

const (
	// MisMatchedVDF means a proof was checked against a challenge it was
	// never generated for (different x, t or N).
	MisMatchedVDF Kind = iota
	// VDFVerifyError means the Wesolowski relation did not hold, or a
	// group element failed its range check.
	VDFVerifyError
	// InvalidInput means a caller-supplied byte string has the wrong
	// length (seed, serialized proof).
	InvalidInput
	// InternalError means an arithmetic backend failure or hash-to-prime
	// nonce overflow — a backend bug, not a caller mistake.
	InternalError
)

func (k Kind) String() string {
	switch k {
	case MisMatchedVDF:
		return "MisMatchedVDF"
	case VDFVerifyError:
		return "VDFVerifyError"
	case InvalidInput:
		return "InvalidInput"
	case InternalError:
		return "InternalError"
	default:
		return "UnknownError"
	}
}

// Error is the error type returned by every package entry point. It
// carries a Kind so callers can branch with errors.Is against the
// sentinel values below.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is allows errors.Is(err, ErrMisMatchedVDF) style comparisons that
// only match on Kind, ignoring Msg.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Sentinel errors for errors.Is comparisons, e.g. errors.Is(err, ErrVDFVerifyError).
var (
	ErrMisMatchedVDF  = &Error{Kind: MisMatchedVDF}
	ErrVDFVerifyError = &Error{Kind: VDFVerifyError}
	ErrInvalidInput   = &Error{Kind: InvalidInput}
	ErrInternalError  = &Error{Kind: InternalError}
)
