package server

import (
	"teasr/internal/featureflags"
	"teasr/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetViralPosts handles GET /api/posts/viral
func (s *Server) GetViralPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	posts, err := s.viralService.ViralPosts(ctx)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(posts)
}

// GetViralTicker handles GET /api/posts/viral/ticker. An empty viral set
// yields an empty sequence and a zero cycle; the client suppresses the ticker
// rather than rendering an empty loop.
func (s *Server) GetViralTicker(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if !s.featureFlags.Enabled(featureflags.ViralTicker, currentUserID(c)) {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Feature", featureflags.ViralTicker))
	}

	sequence, cycle, err := s.viralService.TickerPosts(ctx)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"sequence": sequence,
		"cycle_ms": cycle.Milliseconds(),
	})
}
