package user

import (
	"errors"
	"time"
)

// Common errors
var (
	ErrUserNotFound = errors.New("User not found.")
	ErrEmailExists  = errors.New("A user with this email already exists.")
)

// User rows are write-once: there is no update or delete path.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"type:varchar(255);not null"`
	Email        string    `json:"email" gorm:"type:varchar(255);uniqueIndex:idx_user_email;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateUserInput carries the fields needed to register a user. The
// plaintext password never leaves the service layer.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}
