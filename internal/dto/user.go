package dto

import (
	"time"

	"github.com/noah-isme/academy-api/internal/models"
)

// CreateUserRequest is the payload for registering a user.
type CreateUserRequest struct {
	Name     string          `json:"name" validate:"required,max=100"`
	Email    string          `json:"email" validate:"required,email,max=100"`
	Password string          `json:"password" validate:"required,min=6"`
	Role     models.UserRole `json:"role" validate:"required,oneof=ADMIN COORDINATOR PROFESSOR STUDENT"`
	Active   *bool           `json:"active,omitempty"`
}

// UpdateUserRequest modifies a user. An empty password keeps the current one.
type UpdateUserRequest struct {
	Name     string          `json:"name" validate:"required,max=100"`
	Email    string          `json:"email" validate:"required,email,max=100"`
	Password string          `json:"password,omitempty" validate:"omitempty,min=6"`
	Role     models.UserRole `json:"role" validate:"required,oneof=ADMIN COORDINATOR PROFESSOR STUDENT"`
	Active   *bool           `json:"active,omitempty"`
}

// UserResponse is the external shape of a user. It has no password field.
type UserResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func NewUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
