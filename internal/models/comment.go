package models

import (
	"time"
)

// Comment represents a comment on a listing. CreatedAt is assigned once
// by the server; only the content is mutable, and only by the author.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"not null" json:"content"`
	ListingID uint      `gorm:"not null;index" json:"listing_id"`
	AuthorID  uint      `gorm:"not null" json:"author_id"`
	Listing   Listing   `gorm:"foreignKey:ListingID" json:"-"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
