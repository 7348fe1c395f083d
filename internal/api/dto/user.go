package dto

import (
	"time"

	"github.com/michaelmariano-bytequest/taskmanager/internal/domain/user"
)

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// CreateUserResponse carries the generated id of a new user
type CreateUserResponse struct {
	ID uint `json:"id"`
}

// UserResponse is the projected user view; the password hash is never
// exposed.
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserToResponse maps a user entity to its API view
func UserToResponse(u *user.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
