package dto

import "github.com/openlearn/lms-gateway/internal/models"

// CreateUserRequest is the admin user-creation payload. The role is
// validated against the gateway vocabulary and normalized before forwarding.
type CreateUserRequest struct {
	FirstName string      `json:"firstName" validate:"required,min=2,max=50"`
	LastName  string      `json:"lastName" validate:"required,min=2,max=50"`
	Email     string      `json:"email" validate:"required,email"`
	Password  string      `json:"password" validate:"required"`
	Role      models.Role `json:"role" validate:"required,oneof=admin student teacher creator"`
}

// UpdateUserRequest updates core user fields. Role changes are restricted to
// administrators in the service layer.
type UpdateUserRequest struct {
	FirstName string      `json:"firstName,omitempty" validate:"omitempty,min=2,max=50"`
	LastName  string      `json:"lastName,omitempty" validate:"omitempty,min=2,max=50"`
	Email     string      `json:"email,omitempty" validate:"omitempty,email"`
	Role      models.Role `json:"role,omitempty" validate:"omitempty,oneof=admin student teacher creator"`
}

// UpdatePasswordRequest carries a password change. The minimum-length check
// has a bespoke message, so it lives in the service rather than a tag.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword,omitempty"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// UpdateProfileImageRequest carries a base64 data-URI profile image.
type UpdateProfileImageRequest struct {
	Image string `json:"image" validate:"required"`
}

// UpdateProfileRequest updates the public profile fields.
type UpdateProfileRequest struct {
	FirstName string `json:"firstName,omitempty" validate:"omitempty,min=2,max=50"`
	LastName  string `json:"lastName,omitempty" validate:"omitempty,min=2,max=50"`
	Bio       string `json:"bio,omitempty" validate:"omitempty,max=500"`
}
