package models

import "time"

// Payment is a directed payment fact: Payer paid Payee to unlock Post.
// Messaging eligibility derives from the mere existence of a fact in either
// direction; no expiry or revocation fields exist.
type Payment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PayerID   uint      `gorm:"not null;index:idx_payments_payer" json:"payer_id"`
	Payer     User      `gorm:"foreignKey:PayerID" json:"payer,omitempty"`
	PayeeID   uint      `gorm:"not null;index:idx_payments_payee" json:"payee_id"`
	Payee     User      `gorm:"foreignKey:PayeeID" json:"payee,omitempty"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Amount    string    `gorm:"type:varchar(32);not null" json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// PaymentRelationships is the two-sided fact feed for a user, as served by
// the relationships endpoint: who paid me, and whom I paid.
type PaymentRelationships struct {
	Patrons      []*User `json:"patrons"`
	CreatorsPaid []*User `json:"creatorsPaid"`
}
