package auth

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
)

// Resolver recovers the caller's identity from a bearer token. It is the
// single place where deactivated accounts are rejected.
type Resolver struct {
	codec *Codec
	dir   Directory
}

func NewResolver(codec *Codec, dir Directory) *Resolver {
	return &Resolver{codec: codec, dir: dir}
}

// Resolve parses and validates the token, then looks up its subject. Any
// codec failure maps to common.ErrInvalidToken; a token whose subject no
// longer resolves is treated identically, so a deleted account is not
// distinguishable from a forged token. A resolvable but deactivated account
// yields common.ErrInactiveAccount. The identity is derived fresh on every
// call and never cached.
func (r *Resolver) Resolve(ctx context.Context, token string) (*Identity, error) {
	claims, err := r.codec.Parse(token)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	user, err := r.dir.Lookup(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, common.ErrorInternal
	}

	if !user.Active {
		return nil, common.ErrInactiveAccount
	}

	return identityOf(user), nil
}
