package auth

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
)

// Identity is the transient projection of a user record resolved for one
// request. It is never cached across requests by this package.
type Identity struct {
	Login  string
	Roles  []string
	Active bool
}

// HasAnyRole reports whether the identity holds at least one of the given
// roles. The order of required is irrelevant to the outcome.
func (id *Identity) HasAnyRole(required ...string) bool {
	for _, role := range required {
		if slices.Contains(id.Roles, role) {
			return true
		}
	}
	return false
}

// Directory is the abstract user-lookup capability the auth core depends on.
// Implementations must return common.ErrorNotFound for absent identifiers
// and support concurrent lookups; any timeout discipline around the call is
// the caller's concern.
type Directory interface {
	Lookup(ctx context.Context, login string) (*models.User, error)
}

func identityOf(user *models.User) *Identity {
	return &Identity{
		Login:  user.Login,
		Roles:  slices.Clone(user.Roles),
		Active: user.Active,
	}
}
