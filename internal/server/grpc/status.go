package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
)

// statusFromError translates a core failure kind into its caller-visible
// gRPC status. The mapping is one-to-one and stable: every kind keeps its
// own code/message pair and nothing is collapsed into a generic failure.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, "invalid credentials")
	case errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, "invalid token")
	case errors.Is(err, common.ErrInactiveAccount):
		return status.Error(codes.FailedPrecondition, "inactive account")
	case errors.Is(err, common.ErrInsufficientRole):
		return status.Error(codes.PermissionDenied, "insufficient role")
	case errors.Is(err, common.ErrEncoding):
		return status.Error(codes.InvalidArgument, "encoding error")
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
