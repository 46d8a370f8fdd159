// Package grpc carries the bearer-token presentation convention: a unary
// interceptor that resolves the caller's identity from request metadata and
// enforces per-method role requirements before the handler runs.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	"github.com/dmitrijs2005/gatekeeper/internal/server/auth"
)

// RegisterFunc attaches the application's service implementations to the
// underlying grpc.Server. Kept as a callback so this package stays agnostic
// of the concrete RPC schema.
type RegisterFunc func(*grpc.Server)

type GRPCServer struct {
	address  string
	logger   logging.Logger
	resolver *auth.Resolver

	// methodRoles declares, per full method name, the roles of which at
	// least one is required. A method present with an empty slice requires a
	// resolved identity but no particular role; an absent method is open.
	methodRoles map[string][]string

	register RegisterFunc
}

func NewGRPCServer(a string, l logging.Logger, resolver *auth.Resolver, methodRoles map[string][]string, register RegisterFunc) (*GRPCServer, error) {
	return &GRPCServer{
		address:     a,
		logger:      l.With("module", "grpc_server"),
		resolver:    resolver,
		methodRoles: methodRoles,
		register:    register,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.authInterceptor))

	if s.register != nil {
		s.register(srv)
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
