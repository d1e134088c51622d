package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"teasr/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityApp(lookup UserLookup) *fiber.App {
	app := fiber.New()
	app.Get("/me", IdentityRequired(lookup), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("userID")})
	})
	return app
}

func TestIdentityRequired_MissingHeader(t *testing.T) {
	app := identityApp(func(context.Context, string) (*models.User, error) {
		t.Fatal("lookup must not run without a wallet header")
		return nil, nil
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/me", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestIdentityRequired_UnknownWallet(t *testing.T) {
	app := identityApp(func(context.Context, string) (*models.User, error) {
		return nil, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(WalletHeader, "0xdead")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestIdentityRequired_LookupError(t *testing.T) {
	app := identityApp(func(context.Context, string) (*models.User, error) {
		return nil, errors.New("store down")
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(WalletHeader, "0xabc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestIdentityRequired_ResolvesUser(t *testing.T) {
	var sawWallet string
	app := identityApp(func(_ context.Context, wallet string) (*models.User, error) {
		sawWallet = wallet
		return &models.User{ID: 7, WalletAddress: wallet}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(WalletHeader, "  0xabc  ")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "0xabc", sawWallet, "wallet header must be trimmed before lookup")
}
