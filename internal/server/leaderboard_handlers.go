package server

import (
	"teasr/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetCreatorLeaderboard handles GET /api/leaderboard/creators
func (s *Server) GetCreatorLeaderboard(c *fiber.Ctx) error {
	ctx := c.UserContext()

	creators, err := s.leaderboardService.TopCreators(ctx)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(creators)
}

// GetPostLeaderboard handles GET /api/leaderboard/posts?by=views|upvotes&limit=n
func (s *Server) GetPostLeaderboard(c *fiber.Ctx) error {
	ctx := c.UserContext()

	field := service.PostField(c.Query("by", string(service.PostFieldViews)))
	limit := c.QueryInt("limit", service.PostLeaderboardSize)
	posts, err := s.leaderboardService.TopPosts(ctx, field, limit)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(posts)
}
