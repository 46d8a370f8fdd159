package users

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
)

// InMemoryRepository is a map-backed Repository for tests and local
// development. Safe for concurrent use.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]*models.User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Login]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := cloneUser(user)
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.users[stored.Login] = stored

	return cloneUser(stored), nil
}

func (r *InMemoryRepository) Lookup(ctx context.Context, login string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[login]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return cloneUser(user), nil
}

func (r *InMemoryRepository) SetActive(ctx context.Context, login string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[login]
	if !ok {
		return common.ErrorNotFound
	}
	user.Active = active
	return nil
}

// cloneUser copies the record so callers never share mutable state with the
// map values.
func cloneUser(u *models.User) *models.User {
	c := *u
	c.Roles = slices.Clone(u.Roles)
	return &c
}
