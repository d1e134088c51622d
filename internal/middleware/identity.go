package middleware

import (
	"context"
	"strings"

	"teasr/internal/models"

	"github.com/gofiber/fiber/v2"
)

// WalletHeader carries the caller's wallet address. Signature verification
// happens at the wallet gateway in front of this service; by the time a
// request reaches us the header is trusted.
const WalletHeader = "X-Wallet-Address"

// UserLookup resolves a wallet address to a user record.
type UserLookup func(ctx context.Context, walletAddress string) (*models.User, error)

// IdentityRequired resolves the wallet header to a user and stores the user ID
// in Fiber locals. Requests without a resolvable identity are rejected.
func IdentityRequired(lookup UserLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		wallet := strings.TrimSpace(c.Get(WalletHeader))
		if wallet == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Wallet address header required"))
		}

		user, err := lookup(c.UserContext(), wallet)
		if err != nil || user == nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Unknown wallet address"))
		}

		c.Locals("userID", user.ID)
		c.Locals("walletAddress", user.WalletAddress)

		// Re-run context propagation so the logger sees the user ID.
		ctx := context.WithValue(c.UserContext(), UserIDKey, user.ID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}
