package server

import (
	"context"
	"time"

	"teasr/internal/cache"
	"teasr/internal/middleware"
	"teasr/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetRelationships handles GET /api/users/payment-relationships. Both sides of the
// payment-fact feed for the caller: who paid them, and whom they paid.
func (s *Server) GetRelationships(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	rels, err := s.relationshipService.Relationships(ctx, userID)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(rels)
}

// RecordPayment handles POST /api/payments. Settlement happens upstream; this
// endpoint only records the fact, which immediately grants messaging
// eligibility in both directions.
func (s *Server) RecordPayment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	var req struct {
		PostID uint   `json:"post_id"`
		Amount string `json:"amount"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.PostID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Post ID is required"))
	}
	if req.Amount == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Amount is required"))
	}

	post, err := s.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return respondAppError(c, err)
	}
	if post.UserID == userID {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Cannot pay for your own post"))
	}

	payment := &models.Payment{
		PayerID: userID,
		PayeeID: post.UserID,
		PostID:  post.ID,
		Amount:  req.Amount,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return respondAppError(c, err)
	}

	// A new fact changes both parties' relationship sets.
	cache.InvalidateRelationships(ctx, payment.PayerID)
	cache.InvalidateRelationships(ctx, payment.PayeeID)

	return c.Status(fiber.StatusCreated).JSON(payment)
}

// GetConversation handles GET /api/messages/:userId
func (s *Server) GetConversation(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	counterpartyID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	messages, err := s.messagingService.GetConversation(ctx, userID, counterpartyID)
	if err != nil {
		return respondAppError(c, err)
	}
	if messages == nil {
		messages = []*models.DirectMessage{}
	}

	return c.JSON(messages)
}

// SendMessage handles POST /api/messages/:userId
func (s *Server) SendMessage(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := currentUserID(c)

	counterpartyID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	msg, err := s.messagingService.SendMessage(ctx, userID, counterpartyID, req.Content)
	if err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(msg)
}

// MarkConversationRead handles PUT /api/messages/:userId/read. The update is
// fire-and-forget: the handler acknowledges immediately and a failure is
// logged, never surfaced or retried.
func (s *Server) MarkConversationRead(c *fiber.Ctx) error {
	userID := currentUserID(c)

	counterpartyID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	// Detached context: the request finishing must not cancel the update.
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, userID)
	go func() {
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		s.messagingService.MarkRead(ctx, userID, counterpartyID)
	}()

	return c.SendStatus(fiber.StatusAccepted)
}
