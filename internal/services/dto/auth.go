package dto

import "marlink_backend/internal/models"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserData struct {
	ID    string          `json:"id"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	Data  UserData `json:"data"`
}

// CreateAdminRequest bootstraps an admin account. SetupKey must match the
// shared secret from config; this endpoint is not end-user facing.
type CreateAdminRequest struct {
	SetupKey string `json:"setupKey" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}
