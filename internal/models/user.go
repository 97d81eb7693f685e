// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account. Username doubles as the login
// identity and must be an email address.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Phone        *string   `json:"phone"`
	Name         *string   `json:"name"`
	City         *string   `json:"city"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Listings     []Listing `gorm:"foreignKey:UserID" json:"listings,omitempty"`
}
