package api

import (
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"

	"github.com/chronosvdf/wesolowski"
)

// GRPCServer wraps a bare grpc.Server. No proto-generated service is
// registered yet — the wire contract for remote provers/verifiers
// hasn't been designed, so this is a listening server with nothing
// plugged in.
type GRPCServer struct {
	srv *grpc.Server
}

// NewGRPCServer builds a gRPC server; Serve binds it to an address.
func NewGRPCServer() *GRPCServer {
	srv := grpc.NewServer()

	// TODO: register the generated VDF service once the .proto
	// definitions for Compute/Verify exist.

	return &GRPCServer{srv: srv}
}

// Serve blocks accepting connections on addr until the server stops.
func (g *GRPCServer) Serve(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return g.srv.Serve(listener)
}

// Stop gracefully stops the server.
func (g *GRPCServer) Stop() {
	g.srv.GracefulStop()
}

// codeForVDFError maps the library's error Kind onto a gRPC status
// code, mirroring statusForVDFError's HTTP mapping. Unreachable until
// a generated service calls it from an RPC handler.
func codeForVDFError(err error) codes.Code {
	switch {
	case errors.Is(err, vdf.ErrMisMatchedVDF):
		return codes.FailedPrecondition
	case errors.Is(err, vdf.ErrVDFVerifyError):
		return codes.FailedPrecondition
	case errors.Is(err, vdf.ErrInvalidInput):
		return codes.InvalidArgument
	default:
		return codes.Internal
	}
}
