package models

import (
	"time"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FullName string `gorm:"size:255" json:"fullName"`
	Email    string `gorm:"uniqueIndex;size:150" json:"email"`
	// Bcrypt hash; empty for accounts created from an external identity.
	Password     string    `gorm:"size:255" json:"-"`
	IsVerified   bool      `json:"isVerified"`
	IsAdmin      bool      `json:"isAdmin"`
	IsSuperAdmin bool      `json:"isSuperAdmin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Role collapses the admin flags into the single claim carried by tokens.
func (u User) Role() string {
	switch {
	case u.IsSuperAdmin:
		return "superadmin"
	case u.IsAdmin:
		return "admin"
	default:
		return "user"
	}
}
