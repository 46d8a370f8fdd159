package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/auth"
)

type ctxKey string

const identityKey ctxKey = "identity"

// IdentityFromContext returns the identity the interceptor resolved for this
// request, if the method was protected.
func IdentityFromContext(ctx context.Context) (*auth.Identity, bool) {
	id, ok := ctx.Value(identityKey).(*auth.Identity)
	return id, ok
}

// authInterceptor gates protected methods. For each method listed in
// methodRoles it extracts the bearer token from incoming metadata, resolves
// the identity, applies the role requirement, and stores the identity in the
// handler context. Unlisted methods pass through untouched.
func (s *GRPCServer) authInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	required, protected := s.methodRoles[info.FullMethod]
	if !protected {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	identity, err := s.resolver.Resolve(ctx, accessToken)
	if err != nil {
		s.logger.Warn(ctx, "token resolution failed", "method", info.FullMethod)
		return nil, statusFromError(err)
	}

	if len(required) > 0 {
		login := identity.Login
		identity, err = auth.RequireAnyRole(identity, required...)
		if err != nil {
			s.logger.Warn(ctx, "role check failed", "method", info.FullMethod, "login", login)
			return nil, statusFromError(err)
		}
	}

	ctx = context.WithValue(ctx, identityKey, identity)

	return handler(ctx, req)
}
