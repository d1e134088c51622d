package models

import "time"

// DirectMessage is one message between two users. A conversation is implicit:
// the ordered set of messages keyed by the unordered {sender, recipient} pair.
// Messages are immutable once created; ReadAt is the only mutable field.
type DirectMessage struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	SenderID    uint       `gorm:"not null;index:idx_dm_pair" json:"sender_id"`
	Sender      User       `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	RecipientID uint       `gorm:"not null;index:idx_dm_pair" json:"recipient_id"`
	Recipient   User       `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	CreatedAt   time.Time  `json:"created_at"`
	ReadAt      *time.Time `json:"read_at"`
}
