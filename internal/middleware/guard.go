package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/openlearn/lms-gateway/internal/models"
	appErrors "github.com/openlearn/lms-gateway/pkg/errors"
	"github.com/openlearn/lms-gateway/pkg/response"
)

// Authorize is the single access decision used across every route. Admins
// are always allowed. With no target (collection-level operations) the
// caller's normalized role must appear in roles; an empty role list admits
// any authenticated caller. With a target, the caller must be the target.
func Authorize(caller *models.Caller, targetID string, roles ...models.Role) error {
	if caller == nil {
		return appErrors.ErrUnauthorized
	}

	if caller.Role == models.RoleAdmin {
		return nil
	}

	if targetID == "" {
		if len(roles) == 0 {
			return nil
		}
		norm := caller.Role.Normalize()
		for _, role := range roles {
			if norm == role.Normalize() {
				return nil
			}
		}
		return appErrors.ErrForbidden
	}

	if caller.ID == targetID {
		return nil
	}

	return appErrors.ErrForbidden
}

// SelfOrAdmin guards routes whose path parameter names the target resource
// owner: the caller must be that user or an admin.
func SelfOrAdmin(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := Authorize(Caller(c), c.Param(param)); err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRoles guards collection-level routes: the caller must hold one of
// the given roles. Admins always pass.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := Authorize(Caller(c), "", roles...); err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
