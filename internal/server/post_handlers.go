package server

import (
	"teasr/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(post)
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	var req struct {
		Title                string `json:"title"`
		Price                string `json:"price"`
		BlurredThumbnailPath string `json:"blurred_thumbnail_path"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Title == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title is required"))
	}
	if req.Price == "" {
		req.Price = "0.00"
	}

	post := &models.Post{
		Title:                req.Title,
		UserID:               userID,
		Price:                req.Price,
		BlurredThumbnailPath: req.BlurredThumbnailPath,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return respondAppError(c, err)
	}

	// Load creator data for the response
	created, err := s.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetPostRevenue handles GET /api/posts/:id/revenue. The figure is a display
// cache, not authoritative state: fetch failures yield zero, never an error.
func (s *Server) GetPostRevenue(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	revenue := s.revenueService.PostRevenue(ctx, id)
	return c.JSON(fiber.Map{"revenue": revenue})
}
