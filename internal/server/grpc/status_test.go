package grpc

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
)

func TestStatusFromError_OneToOneMapping(t *testing.T) {
	tests := []struct {
		err     error
		code    codes.Code
		message string
	}{
		{common.ErrInvalidCredentials, codes.Unauthenticated, "invalid credentials"},
		{common.ErrInvalidToken, codes.Unauthenticated, "invalid token"},
		{common.ErrInactiveAccount, codes.FailedPrecondition, "inactive account"},
		{common.ErrInsufficientRole, codes.PermissionDenied, "insufficient role"},
		{common.ErrEncoding, codes.InvalidArgument, "encoding error"},
		{common.ErrorAlreadyExists, codes.AlreadyExists, "already exists"},
		{common.ErrorNotFound, codes.NotFound, "not found"},
		{errors.New("surprise"), codes.Internal, "internal error"},
	}

	for _, tc := range tests {
		got := statusFromError(tc.err)
		if status.Code(got) != tc.code {
			t.Fatalf("%v: expected code %v, got %v", tc.err, tc.code, status.Code(got))
		}
		if status.Convert(got).Message() != tc.message {
			t.Fatalf("%v: expected message %q, got %q", tc.err, tc.message, status.Convert(got).Message())
		}
	}
}

func TestStatusFromError_WrappedKindsStillMap(t *testing.T) {
	wrapped := fmt.Errorf("login failed: %w", common.ErrInvalidCredentials)
	got := statusFromError(wrapped)
	if status.Code(got) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated for wrapped kind, got %v", status.Code(got))
	}
}
