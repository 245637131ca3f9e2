package dto

// LoginRequest is forwarded verbatim to the backend's login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
