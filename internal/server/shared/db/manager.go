// Package db wires repository implementations to their backing store.
package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gatekeeper/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Conn() *sql.DB
	Users() users.Repository
}
