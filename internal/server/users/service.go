package users

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/server/auth"
	"github.com/dmitrijs2005/gatekeeper/internal/server/config"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
)

// Service provides account operations on top of the auth core:
// - Register: hash the password and create the directory record
// - Login: authenticate credentials and issue a session token
// - SetActive: deactivate or reactivate an account
type Service struct {
	repo            Repository
	authenticator   *auth.Authenticator
	codec           *auth.Codec
	sessionTokenTTL time.Duration
}

// NewService constructs a Service. The codec must be the process-wide one so
// tokens issued here resolve everywhere.
func NewService(repo Repository, codec *auth.Codec, cfg *config.Config) *Service {
	return &Service{
		repo:            repo,
		authenticator:   auth.NewAuthenticator(repo),
		codec:           codec,
		sessionTokenTTL: cfg.SessionTokenTTL,
	}
}

// Register creates an active user with the given login, password, and roles.
func (s *Service) Register(ctx context.Context, login, password string, roles []string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Login:        login,
		PasswordHash: hash,
		Roles:        roles,
		Active:       true,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login authenticates the credentials and, on success, issues a session
// token with the configured session lifetime. The TTL is passed to the codec
// explicitly; there is no hidden default between the two layers.
func (s *Service) Login(ctx context.Context, login, password string) (string, error) {
	identity, err := s.authenticator.Authenticate(ctx, login, password)
	if err != nil {
		return "", err
	}

	token, err := s.codec.Issue(identity.Login, s.sessionTokenTTL)
	if err != nil {
		return "", fmt.Errorf("error issuing token: %w", err)
	}

	return token, nil
}

// SetActive flips the account's active flag. Deactivation takes effect on
// the account's next resolved request; already-issued tokens are not
// revoked, they stop resolving.
func (s *Service) SetActive(ctx context.Context, login string, active bool) error {
	return s.repo.SetActive(ctx, login, active)
}
