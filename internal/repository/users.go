package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/pfa-labs/finance-tracker/internal/common"
	"github.com/pfa-labs/finance-tracker/internal/entity"
)

// ErrEmailExists is returned when registering an already-taken email.
var ErrEmailExists = errors.New("email already exists")

// UserRepository is the behavior the auth service depends on.
type UserRepository interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
}

type SQLUserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *SQLUserRepository {
	return &SQLUserRepository{db: db}
}

func (r *SQLUserRepository) CreateUser(ctx context.Context, name, email, passwordHash string) (*entity.User, error) {
	u := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    nowRFC3339(),
	}
	q := r.db.Rebind(`INSERT INTO users (name, email, password_hash, created_at) VALUES (?, ?, ?, ?) RETURNING id`)
	err := r.db.QueryRowContext(ctx, q, u.Name, u.Email, u.PasswordHash, u.CreatedAt).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (r *SQLUserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	q := r.db.Rebind(`SELECT id, name, email, password_hash, created_at FROM users WHERE email = ?`)
	var u entity.User
	err := r.db.QueryRowContext(ctx, q, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// isUniqueViolation matches the duplicate-key errors of both wired drivers
// (SQLite constraint message, postgres SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "constraint failed: UNIQUE") ||
		strings.Contains(msg, "23505")
}
