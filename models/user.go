package models

import (
	"time"

	"gorm.io/gorm"
)

// User is an operator account for the login flow.
type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.Email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if u.PasswordHash == "" {
		return &ValidationError{Field: "password", Message: "password is required"}
	}
	return nil
}
