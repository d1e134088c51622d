package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a piece of creator content. The creator reference (UserID)
// never changes after creation; counters and the viral flag are maintained by
// the upstream feed, not mutated here.
type Post struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Title  string `gorm:"not null" json:"title"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID" json:"creator"`
	// Price is decimal-as-text to avoid floating rounding in transit.
	Price                string         `gorm:"type:varchar(32);not null;default:'0.00'" json:"price"`
	ViewCount            int            `gorm:"not null;default:0" json:"view_count"`
	UpvoteCount          int            `gorm:"not null;default:0" json:"upvote_count"`
	IsViral              bool           `gorm:"not null;default:false" json:"is_viral"`
	BlurredThumbnailPath string         `json:"blurred_thumbnail_path,omitempty"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`
}

// CreatorAggregate is the derived per-creator leaderboard row. It is never
// persisted; it is recomputed from the post dataset on every aggregation pass.
type CreatorAggregate struct {
	User
	TotalViews   int     `json:"total_views"`
	TotalUpvotes int     `json:"total_upvotes"`
	TotalPosts   int     `json:"total_posts"`
	TotalRevenue float64 `json:"total_revenue"`
}
