package service

import (
	"context"
	"strings"

	"teasr/internal/middleware"
	"teasr/internal/models"
	"teasr/internal/repository"
)

// MessagingService enforces the payment gate on direct messaging and owns
// read-state transitions.
type MessagingService struct {
	messageRepo   repository.MessageRepository
	userRepo      repository.UserRepository
	relationships *RelationshipService
}

// NewMessagingService returns a new MessagingService.
func NewMessagingService(messageRepo repository.MessageRepository, userRepo repository.UserRepository, relationships *RelationshipService) *MessagingService {
	return &MessagingService{
		messageRepo:   messageRepo,
		userRepo:      userRepo,
		relationships: relationships,
	}
}

// CanOpen reports whether self may open a conversation with the counterparty.
func (s *MessagingService) CanOpen(ctx context.Context, selfID, counterpartyID uint) (bool, error) {
	return s.relationships.CanMessage(ctx, selfID, counterpartyID)
}

// authorize fails with FORBIDDEN when no payment fact links the two users.
func (s *MessagingService) authorize(ctx context.Context, selfID, counterpartyID uint) error {
	allowed, err := s.relationships.CanMessage(ctx, selfID, counterpartyID)
	if err != nil {
		return err
	}
	if !allowed {
		return models.NewForbiddenError("Messaging requires a payment relationship with this user")
	}
	return nil
}

// GetConversation returns the conversation with the counterparty, oldest
// message first.
func (s *MessagingService) GetConversation(ctx context.Context, selfID, counterpartyID uint) ([]*models.DirectMessage, error) {
	if selfID == counterpartyID {
		return nil, models.NewValidationError("Cannot open a conversation with yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, counterpartyID); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, selfID, counterpartyID); err != nil {
		return nil, err
	}
	return s.messageRepo.ListBetween(ctx, selfID, counterpartyID)
}

// SendMessage validates and appends a message to the conversation. Rejections
// are explicit; nothing is silently dropped.
func (s *MessagingService) SendMessage(ctx context.Context, selfID, counterpartyID uint, content string) (*models.DirectMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Message content cannot be empty")
	}
	if counterpartyID == 0 {
		return nil, models.NewValidationError("Recipient is required")
	}
	if selfID == counterpartyID {
		return nil, models.NewValidationError("Cannot message yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, counterpartyID); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, selfID, counterpartyID); err != nil {
		return nil, err
	}

	msg := &models.DirectMessage{
		SenderID:    selfID,
		RecipientID: counterpartyID,
		Content:     content,
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	middleware.MessagesSent.Inc()
	return msg, nil
}

// MarkRead marks every unread message from the counterparty as read. It is
// fire-and-forget: failures are logged with context, never surfaced to the
// caller, and never retried.
func (s *MessagingService) MarkRead(ctx context.Context, selfID, counterpartyID uint) {
	updated, err := s.messageRepo.MarkRead(ctx, selfID, counterpartyID)
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "Failed to mark conversation read",
			"user_id", selfID,
			"counterparty_id", counterpartyID,
			"error", err,
		)
		return
	}
	if updated > 0 {
		middleware.Logger.InfoContext(ctx, "Conversation marked read",
			"user_id", selfID,
			"counterparty_id", counterpartyID,
			"messages", updated,
		)
	}
}
