package repo

import (
	"context"

	"society/internal/domain"
	"society/internal/infra"
	"society/internal/sqlinline"
)

// UserRepositoryPG implements domain.UserRepository using PostgreSQL.
type UserRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewUserRepository creates a new user repo.
func NewUserRepository(sql infra.SQLExecutor) *UserRepositoryPG {
	return &UserRepositoryPG{sql: sql}
}

// GetByEmail matches the address case-insensitively.
func (r *UserRepositoryPG) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(r.sql.QueryRow(ctx, sqlinline.QSelectUserByEmail, email))
}

func (r *UserRepositoryPG) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return scanUser(r.sql.QueryRow(ctx, sqlinline.QSelectUserByID, id))
}

func (r *UserRepositoryPG) Create(ctx context.Context, u *domain.User) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertUser, u.Email, u.FullName, u.IsAdmin, u.PasswordHash)
	return mapErr(row.Scan(&u.ID, &u.CreatedAt))
}

// SetAdmin grants or revokes admin access for the account with email.
func (r *UserRepositoryPG) SetAdmin(ctx context.Context, email string, isAdmin bool) error {
	return execOne(ctx, r.sql, sqlinline.QSetUserAdmin, email, isAdmin)
}

func scanUser(row scanner) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.IsAdmin, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

var _ domain.UserRepository = (*UserRepositoryPG)(nil)
