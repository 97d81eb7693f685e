package models

import (
	"time"
)

// Listing represents a real-estate record offered for rent or sale.
type Listing struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Type        string   `gorm:"not null" json:"type"`
	Price       int      `gorm:"not null" json:"price"`
	Address     string   `gorm:"not null" json:"address"`
	Area        *float64 `json:"area"`
	RoomsCount  *int     `json:"rooms_count"`
	Description *string  `json:"description,omitempty"`
	UserID      uint     `gorm:"not null;index" json:"user_id"`
	User        User     `gorm:"foreignKey:UserID" json:"-"`
	// TotalComments is not persisted; recomputed on every detail read
	TotalComments int       `gorm:"-" json:"total_comments"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ListingSummary is the projection returned by the browse endpoint.
// It omits description and total_comments (detail-only fields).
type ListingSummary struct {
	ID         uint     `json:"id"`
	Type       string   `json:"type"`
	Price      int      `json:"price"`
	Address    string   `json:"address"`
	Area       *float64 `json:"area"`
	RoomsCount *int     `json:"rooms_count"`
	UserID     uint     `json:"user_id"`
}

// ListingPage is a filtered page of listings plus the total match count
// before pagination was applied.
type ListingPage struct {
	Total int64            `json:"total"`
	Items []ListingSummary `json:"items"`
}
