package auth

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
)

// Authenticator verifies login credentials against the user directory.
type Authenticator struct {
	dir Directory
}

func NewAuthenticator(dir Directory) *Authenticator {
	return &Authenticator{dir: dir}
}

// Authenticate looks up the login and verifies the password against the
// stored hash. An unknown login and a wrong password both return
// common.ErrInvalidCredentials, so the outcome never reveals whether the
// account exists. The record's Active flag is deliberately not checked here;
// deactivation is enforced by the Resolver on subsequent requests.
func (a *Authenticator) Authenticate(ctx context.Context, login, password string) (*Identity, error) {
	user, err := a.dir.Lookup(ctx, login)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	return identityOf(user), nil
}
