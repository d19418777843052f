package api

import "contacts-api/internal/domain"

// Common request/response structures. The `validate` tags are the
// declarative request schemas; shared.ValidateRequest enforces them before
// a handler touches the store.

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// EmailRequest defines the payload for the resend-verification endpoint.
type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ContactRequest defines the payload for creating or replacing a contact.
type ContactRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Favorite bool   `json:"favorite"`
}

// FavoriteRequest defines the payload for the favorite-flag toggle.
// A pointer distinguishes an explicit false from an absent field.
type FavoriteRequest struct {
	Favorite *bool `json:"favorite" validate:"required"`
}

// RegisterResponse is returned on successful registration.
type RegisterResponse struct {
	Email        string              `json:"email"`
	Subscription domain.Subscription `json:"subscription"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// CurrentUserResponse is returned by the current-user endpoint.
type CurrentUserResponse struct {
	Email        string              `json:"email"`
	Subscription domain.Subscription `json:"subscription"`
}

// AvatarResponse is returned after a successful avatar upload.
type AvatarResponse struct {
	AvatarURL string `json:"avatar_url"`
}

// MessageResponse carries a human-readable status message.
type MessageResponse struct {
	Message string `json:"message"`
}
