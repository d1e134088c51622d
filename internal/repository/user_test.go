package repository

import (
	"context"
	"testing"

	"teasr/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_UpsertCreatesThenLoads(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Username: "alice", WalletAddress: "0xabc"}
	require.NoError(t, repo.Upsert(ctx, user))
	require.NotZero(t, user.ID)
	firstID := user.ID

	// Same wallet again resolves to the existing record.
	again := &models.User{Username: "ignored", WalletAddress: "0xabc"}
	require.NoError(t, repo.Upsert(ctx, again))
	assert.Equal(t, firstID, again.ID)
	assert.Equal(t, "alice", again.Username)
}

func TestUserRepository_GetByWalletAddress(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &models.User{Username: "bob", WalletAddress: "0xb0b"}))

	found, err := repo.GetByWalletAddress(ctx, "0xb0b")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "bob", found.Username)

	missing, err := repo.GetByWalletAddress(ctx, "0xdead")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_GetByIDNotFound(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), 999)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
