package service

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/openlearn/lms-gateway/internal/dto"
	"github.com/openlearn/lms-gateway/internal/models"
	"github.com/openlearn/lms-gateway/internal/upstream"
	"github.com/openlearn/lms-gateway/internal/validate"
	appErrors "github.com/openlearn/lms-gateway/pkg/errors"
)

type userForwarder interface {
	Do(ctx context.Context, method, path, token string, body interface{}) (*upstream.Response, error)
}

// UserService validates user payloads and forwards them to the backend's
// /api/users resource.
type UserService struct {
	upstream  userForwarder
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService creates an instance of UserService.
func NewUserService(fwd userForwarder, v *validator.Validate, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if v == nil {
		v = validate.New()
	}
	return &UserService{upstream: fwd, validator: v, logger: logger}
}

// List forwards a user listing, relaying the caller's query string.
func (s *UserService) List(ctx context.Context, caller *models.Caller, query url.Values) (*upstream.Response, error) {
	return s.upstream.Do(ctx, http.MethodGet, withQuery("/api/users", query), caller.Token, nil)
}

// Get forwards a single-user read.
func (s *UserService) Get(ctx context.Context, caller *models.Caller, id string) (*upstream.Response, error) {
	return s.upstream.Do(ctx, http.MethodGet, "/api/users/"+url.PathEscape(id), caller.Token, nil)
}

// Create validates and forwards a user creation. The gateway-only creator
// role is normalized to teacher before the payload leaves this layer.
func (s *UserService) Create(ctx context.Context, caller *models.Caller, req dto.CreateUserRequest) (*upstream.Response, error) {
	if err := validate.Struct(s.validator, req); err != nil {
		return nil, err
	}
	if err := validate.Password(req.Password); err != nil {
		return nil, err
	}

	req.Role = req.Role.Normalize()
	return s.upstream.Do(ctx, http.MethodPost, "/api/users", caller.Token, req)
}

// Update validates and forwards a user update. Role changes require admin.
func (s *UserService) Update(ctx context.Context, caller *models.Caller, id string, req dto.UpdateUserRequest) (*upstream.Response, error) {
	if err := validate.Struct(s.validator, req); err != nil {
		return nil, err
	}
	if req.Role != "" && !caller.IsAdmin() {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "Only administrators can change roles")
	}

	req.Role = req.Role.Normalize()
	return s.upstream.Do(ctx, http.MethodPut, "/api/users/"+url.PathEscape(id), caller.Token, req)
}

// Delete forwards a user deletion. Admins cannot delete their own account.
func (s *UserService) Delete(ctx context.Context, caller *models.Caller, id string) (*upstream.Response, error) {
	if caller.ID == id {
		return nil, appErrors.Clone(appErrors.ErrValidation, "You cannot delete your own account")
	}
	return s.upstream.Do(ctx, http.MethodDelete, "/api/users/"+url.PathEscape(id), caller.Token, nil)
}

// UpdatePassword validates and forwards a password change.
func (s *UserService) UpdatePassword(ctx context.Context, caller *models.Caller, id string, req dto.UpdatePasswordRequest) (*upstream.Response, error) {
	if err := validate.Password(req.NewPassword); err != nil {
		return nil, err
	}
	return s.upstream.Do(ctx, http.MethodPut, "/api/users/"+url.PathEscape(id)+"/password", caller.Token, req)
}

// UpdateProfileImage validates the image payload size and forwards it.
func (s *UserService) UpdateProfileImage(ctx context.Context, caller *models.Caller, id string, req dto.UpdateProfileImageRequest) (*upstream.Response, error) {
	if err := validate.Struct(s.validator, req); err != nil {
		return nil, err
	}
	if err := validate.Image(req.Image, validate.ProfileImageMaxBytes); err != nil {
		return nil, err
	}
	return s.upstream.Do(ctx, http.MethodPut, "/api/users/"+url.PathEscape(id)+"/profile-image", caller.Token, req)
}

// UpdateProfile validates and forwards a profile update.
func (s *UserService) UpdateProfile(ctx context.Context, caller *models.Caller, id string, req dto.UpdateProfileRequest) (*upstream.Response, error) {
	if err := validate.Struct(s.validator, req); err != nil {
		return nil, err
	}
	return s.upstream.Do(ctx, http.MethodPut, "/api/users/"+url.PathEscape(id)+"/profile", caller.Token, req)
}

// withQuery appends an encoded query string when one is present.
func withQuery(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}
