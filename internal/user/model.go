package user

import (
	"time"

	"github.com/MikeMC777/ropa-market/internal/auth"
)

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	Role           auth.Role `json:"role"`
	SellerVerified bool      `json:"sellerVerified"`
	SellerTier     string    `json:"sellerTier,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// SignupRequest payload of registration.
// swagger:model SignupRequest
type SignupRequest struct {
	Name     string `json:"name"     example:"Asha Rai"`
	Email    string `json:"email"    example:"asha@example.com"`
	Password string `json:"password" example:"s3cret-pass"`
}

// LoginRequest payload of login.
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by signup and login.
// swagger:model AuthResponse
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// UpdateProfileRequest payload of partial profile update; empty fields are kept.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ChangePasswordRequest payload of password change.
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}
