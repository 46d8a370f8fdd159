package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	roles, err := json.Marshal(user.Roles)
	if err != nil {
		return nil, fmt.Errorf("roles encode error: %w", err)
	}

	query :=
		`INSERT INTO users (login, password_hash, roles, active)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		user.Login, user.PasswordHash, roles, user.Active).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) Lookup(ctx context.Context, login string) (*models.User, error) {
	query :=
		`SELECT id, login, password_hash, roles, active, created_at FROM users
		 WHERE login = $1
		 `

	user := &models.User{}
	var roles []byte
	err := r.db.QueryRowContext(ctx, query, login).Scan(
		&user.ID, &user.Login, &user.PasswordHash, &roles, &user.Active, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := json.Unmarshal(roles, &user.Roles); err != nil {
		return nil, fmt.Errorf("roles decode error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) SetActive(ctx context.Context, login string, active bool) error {
	query := `UPDATE users SET active = $2 WHERE login = $1`

	res, err := r.db.ExecContext(ctx, query, login, active)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
