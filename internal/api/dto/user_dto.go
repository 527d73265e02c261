package dto

import "time"

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6,max=72"`
	Phone    *int64  `json:"phone,omitempty" validate:"omitempty,min=0"`
	Address  *string `json:"address,omitempty" validate:"omitempty,max=255"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is a partial profile patch. Email and password are
// not accepted here.
type UpdateProfileRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Phone   *int64  `json:"phone,omitempty" validate:"omitempty,min=0"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=255"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
