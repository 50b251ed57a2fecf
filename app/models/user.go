package models

import "gorm.io/gorm"

// User is an account holder. Email is the login identifier and unique
// across the table; Password always holds a bcrypt hash.
type User struct {
	gorm.Model
	Name     string `gorm:"size:255;not null" json:"name"`
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // hashed, never serialised
	IsAdmin  bool   `gorm:"not null;default:false" json:"is_admin"`
}
