package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/openlearn/lms-gateway/internal/models"
	appErrors "github.com/openlearn/lms-gateway/pkg/errors"
	"github.com/openlearn/lms-gateway/pkg/response"
)

// ContextCallerKey is the gin context key storing the resolved caller.
const ContextCallerKey = "currentCaller"

// TokenValidator checks a bearer token and returns the caller it encodes.
type TokenValidator interface {
	ValidateToken(token string) (*models.Caller, error)
}

// SessionReader resolves the caller from a cookie session.
type SessionReader interface {
	Caller(r *http.Request) (*models.Caller, bool)
}

// Authenticate resolves the caller from a bearer token first, then the
// cookie session, and stores it in the context. Anonymous requests pass
// through untouched; RequireAuth decides whether that is acceptable.
func Authenticate(sessions SessionReader, tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if caller := resolveBearer(c, tokens); caller != nil {
			c.Set(ContextCallerKey, caller)
			c.Next()
			return
		}

		if sessions != nil {
			if caller, ok := sessions.Caller(c.Request); ok {
				c.Set(ContextCallerKey, caller)
			}
		}
		c.Next()
	}
}

// RequireAuth aborts with 401 when no caller was resolved.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(ContextCallerKey); !exists {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Caller returns the caller stored in the context, or nil for anonymous
// requests.
func Caller(c *gin.Context) *models.Caller {
	if v, exists := c.Get(ContextCallerKey); exists {
		if caller, ok := v.(*models.Caller); ok {
			return caller
		}
	}
	return nil
}

func resolveBearer(c *gin.Context, tokens TokenValidator) *models.Caller {
	if tokens == nil {
		return nil
	}

	header := c.GetHeader("Authorization")
	if header == "" {
		return nil
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil
	}

	caller, err := tokens.ValidateToken(parts[1])
	if err != nil {
		return nil
	}
	return caller
}
