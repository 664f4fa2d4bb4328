package response

import (
	"time"

	"storefront-checkout/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	Verified bool      `json:"verified"`
}

type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   *time.Time   `json:"expiresAt,omitempty"`
	User        UserResponse `json:"user"`
}

type MeResponse struct {
	ID   uuid.UUID `json:"id"`
	Role string    `json:"role"`
}

func FromUser(u *user.User) UserResponse {
	return UserResponse{
		ID:       u.ID(),
		Email:    u.Email().Value(),
		Name:     u.Name(),
		Role:     u.Role().String(),
		Verified: u.IsVerified(),
	}
}
