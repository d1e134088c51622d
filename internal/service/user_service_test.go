package service

import (
	"context"
	"testing"

	"teasr/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserServiceAuthenticateRequiresWallet(t *testing.T) {
	svc := NewUserService(noopUserRepo())

	_, err := svc.Authenticate(context.Background(), "   ", "alice")
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestUserServiceAuthenticateDerivesUsername(t *testing.T) {
	var upserted *models.User
	repo := noopUserRepo()
	repo.upsertFn = func(_ context.Context, user *models.User) error {
		upserted = user
		user.ID = 7
		return nil
	}
	svc := NewUserService(repo)

	user, err := svc.Authenticate(context.Background(), "0xDEADBEEFCAFE", "")
	require.NoError(t, err)
	require.NotNil(t, upserted)
	assert.Equal(t, "creator_beefcafe", user.Username)
	assert.Equal(t, uint(7), user.ID)
}

func TestUserServiceAuthenticateKeepsGivenUsername(t *testing.T) {
	repo := noopUserRepo()
	repo.upsertFn = func(context.Context, *models.User) error { return nil }
	svc := NewUserService(repo)

	user, err := svc.Authenticate(context.Background(), "0xabc", "  alice  ")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}
