package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfa-labs/finance-tracker/internal/common"
)

func TestCreateUserAndGetByEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, "Ada", "ada@example.com", "$2a$10$hash")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)

	got, err := repo.GetUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, "$2a$10$hash", got.PasswordHash)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, "Ada", "ada@example.com", "h1")
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, "Other Ada", "ada@example.com", "h2")
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestGetUserByEmailNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
