package auth

import "github.com/dmitrijs2005/gatekeeper/internal/common"

// RequireAnyRole succeeds if the identity holds at least one of the required
// roles, returning the identity unchanged, and fails with
// common.ErrInsufficientRole otherwise. It is a pure decision function over
// the role set; call sites declare their acceptable roles per operation.
func RequireAnyRole(identity *Identity, required ...string) (*Identity, error) {
	if identity.HasAnyRole(required...) {
		return identity, nil
	}
	return nil, common.ErrInsufficientRole
}
