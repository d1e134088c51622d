package repository

import (
	"context"
	"time"

	"teasr/internal/cache"
	"teasr/internal/models"

	"gorm.io/gorm"
)

// MessageRepository defines persistence operations for direct messages.
type MessageRepository interface {
	Create(ctx context.Context, msg *models.DirectMessage) error
	// ListBetween returns every message exchanged between the two users,
	// oldest first.
	ListBetween(ctx context.Context, a, b uint) ([]*models.DirectMessage, error)
	// MarkRead marks all unread messages sent by senderID to recipientID
	// as read. Returns the number of messages updated.
	MarkRead(ctx context.Context, recipientID, senderID uint) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository returns a new MessageRepository implementation.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *models.DirectMessage) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateConversation(ctx, msg.SenderID, msg.RecipientID)
	return nil
}

func (r *messageRepository) ListBetween(ctx context.Context, a, b uint) ([]*models.DirectMessage, error) {
	var messages []*models.DirectMessage

	key := cache.ConversationKey(a, b)
	err := cache.Aside(ctx, key, &messages, cache.ConversationTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("Sender").
			Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)", a, b, b, a).
			Order("created_at ASC").
			Find(&messages).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) MarkRead(ctx context.Context, recipientID, senderID uint) (int64, error) {
	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&models.DirectMessage{}).
		Where("recipient_id = ? AND sender_id = ? AND read_at IS NULL", recipientID, senderID).
		Update("read_at", &now)
	if res.Error != nil {
		return 0, models.NewInternalError(res.Error)
	}
	if res.RowsAffected > 0 {
		cache.InvalidateConversation(ctx, recipientID, senderID)
	}
	return res.RowsAffected, nil
}
