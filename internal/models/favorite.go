package models

import (
	"time"
)

// Favorite represents a user's bookmark of a listing.
// The combination of UserID and ListingID must be unique.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_listing" json:"user_id"`
	ListingID uint      `gorm:"not null;uniqueIndex:idx_user_listing" json:"listing_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Listing Listing `gorm:"foreignKey:ListingID" json:"-"`
}

// FavoriteListing is the projection returned when listing a user's
// favorites: just enough to render a bookmark row.
type FavoriteListing struct {
	ID      uint   `json:"id"`
	Address string `json:"address"`
}
