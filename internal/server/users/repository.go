// Package users provides the user directory: repository implementations and
// the account service built on top of the auth core.
package users

import (
	"context"

	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
)

// Repository is the persistent user directory. Lookup must return
// common.ErrorNotFound for absent logins, which also makes every Repository
// an auth.Directory. Implementations must be safe for concurrent use.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Lookup(ctx context.Context, login string) (*models.User, error)
	SetActive(ctx context.Context, login string, active bool) error
}
