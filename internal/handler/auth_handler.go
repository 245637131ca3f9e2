package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/openlearn/lms-gateway/internal/dto"
	"github.com/openlearn/lms-gateway/internal/service"
	appErrors "github.com/openlearn/lms-gateway/pkg/errors"
	"github.com/openlearn/lms-gateway/pkg/response"
	"github.com/openlearn/lms-gateway/pkg/session"
)

// AuthHandler handles login, logout and session bootstrap.
type AuthHandler struct {
	service  *service.AuthService
	sessions *session.Manager
	logger   *zap.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(svc *service.AuthService, sessions *session.Manager, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{service: svc, sessions: sessions, logger: logger}
}

// Login forwards credentials to the backend and establishes the cookie
// session from its reply.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	caller, resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.sessions.Save(c.Writer, c.Request, caller); err != nil {
		h.logger.Error("failed to persist session", zap.Error(err))
		response.Error(c, appErrors.ErrInternal)
		return
	}

	response.Relay(c, resp.Status, resp.Body)
}

// Logout clears the cookie session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Clear(c.Writer, c.Request); err != nil {
		h.logger.Warn("failed to clear session", zap.Error(err))
	}
	response.NoContent(c)
}

// Session returns the current caller, letting the UI bootstrap its state.
func (h *AuthHandler) Session(c *gin.Context) {
	caller, err := currentCaller(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, caller)
}
