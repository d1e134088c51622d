// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a user in the Teasr application. The wallet address is the
// stable identity key; signature verification happens upstream of this service.
type User struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Username         string         `gorm:"unique;not null" json:"username"`
	WalletAddress    string         `gorm:"uniqueIndex;not null" json:"wallet_address"`
	ProfileImagePath string         `json:"profile_image_path,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
	Posts            []Post         `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}
