package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type adminUserRepository struct {
	db *sql.DB
}

func NewAdminUserRepository(db *sql.DB) repository.AdminUserRepository {
	return &adminUserRepository{db: db}
}

func (r *adminUserRepository) Create(ctx context.Context, u *domain.AdminUser) error {
	query := `INSERT INTO admin_users (email, name, password_hash, role, created_on) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, u.Email, u.Name, u.PasswordHash, u.Role, time.Now()).Scan(&u.ID)
}

func (r *adminUserRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	u := &domain.AdminUser{}
	query := `SELECT id, email, name, password_hash, role, created_on FROM admin_users WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *adminUserRepository) GetByID(ctx context.Context, id int32) (*domain.AdminUser, error) {
	u := &domain.AdminUser{}
	query := `SELECT id, email, name, password_hash, role, created_on FROM admin_users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
