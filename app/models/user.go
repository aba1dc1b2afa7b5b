package models

import "gorm.io/gorm"

// Roles assignable to a user account.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account in the storefront. Email doubles as the login
// identifier; the unique index is the final guard against duplicate
// registration.
type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialised
	Username  string `gorm:"size:255;not null" json:"username"`
	Firstname string `gorm:"size:255" json:"firstname"`
	Role      string `gorm:"size:50;default:user" json:"role"`
}

// IsAdmin reports whether the user may mutate the catalog.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
