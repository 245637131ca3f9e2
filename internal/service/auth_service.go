package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/openlearn/lms-gateway/internal/dto"
	"github.com/openlearn/lms-gateway/internal/models"
	"github.com/openlearn/lms-gateway/internal/upstream"
	"github.com/openlearn/lms-gateway/internal/validate"
	appErrors "github.com/openlearn/lms-gateway/pkg/errors"
)

type authForwarder interface {
	Do(ctx context.Context, method, path, token string, body interface{}) (*upstream.Response, error)
}

// loginResponse covers the backend's login reply. Some deployments name the
// token field accessToken, older ones just token.
type loginResponse struct {
	User        models.User `json:"user"`
	AccessToken string      `json:"accessToken"`
	Token       string      `json:"token"`
}

// AuthService forwards credential checks to the backend and validates
// backend-issued bearer tokens for session-less API clients.
type AuthService struct {
	upstream  authForwarder
	validator *validator.Validate
	logger    *zap.Logger
	jwtSecret string
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(fwd authForwarder, v *validator.Validate, logger *zap.Logger, jwtSecret string) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if v == nil {
		v = validate.New()
	}
	return &AuthService{upstream: fwd, validator: v, logger: logger, jwtSecret: jwtSecret}
}

// Login forwards the credentials to the backend and, on success, returns the
// caller identity to persist in the session alongside the raw backend reply.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*models.Caller, *upstream.Response, error) {
	if err := validate.Struct(s.validator, req); err != nil {
		return nil, nil, err
	}

	resp, err := s.upstream.Do(ctx, http.MethodPost, "/api/login", "", req)
	if err != nil {
		return nil, nil, err
	}

	var login loginResponse
	if err := resp.Decode(&login); err != nil {
		return nil, nil, err
	}

	token := login.AccessToken
	if token == "" {
		token = login.Token
	}
	if login.User.ID == "" || token == "" {
		return nil, nil, appErrors.Clone(appErrors.ErrUpstream, "login reply missing user or token")
	}

	caller := &models.Caller{
		ID:        login.User.ID,
		Role:      login.User.Role,
		FirstName: login.User.FirstName,
		LastName:  login.User.LastName,
		Token:     token,
	}

	s.logger.Info("login succeeded", zap.String("user_id", caller.ID), zap.String("role", string(caller.Role)))
	return caller, resp, nil
}

// ValidateToken parses a backend-issued HS256 access token into a caller.
func (s *AuthService) ValidateToken(tokenString string) (*models.Caller, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}

	return &models.Caller{
		ID:        claims.Subject,
		Role:      claims.Role,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Token:     tokenString,
	}, nil
}
