package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/openlearn/lms-gateway/internal/middleware"
	"github.com/openlearn/lms-gateway/internal/models"
	appErrors "github.com/openlearn/lms-gateway/pkg/errors"
)

// currentCaller returns the authenticated caller or ErrUnauthorized.
func currentCaller(c *gin.Context) (*models.Caller, error) {
	caller := middleware.Caller(c)
	if caller == nil {
		return nil, appErrors.ErrUnauthorized
	}
	return caller, nil
}

// callerToken returns the backend token for optionally-authenticated routes,
// empty for anonymous requests.
func callerToken(c *gin.Context) string {
	if caller := middleware.Caller(c); caller != nil {
		return caller.Token
	}
	return ""
}
