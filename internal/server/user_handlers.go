package server

import (
	"teasr/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Authenticate handles POST /api/users/auth. The wallet gateway in front of
// this service has already verified the signature; this endpoint resolves the
// wallet to an account, creating it on first sight.
func (s *Server) Authenticate(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		WalletAddress string `json:"wallet_address"`
		Username      string `json:"username"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Authenticate(ctx, req.WalletAddress, req.Username)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(user)
}

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	user, err := s.userService.GetByID(ctx, userID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(user)
}
