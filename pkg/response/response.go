package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/openlearn/lms-gateway/pkg/errors"
)

// ErrorBody is the uniform client-facing failure shape.
type ErrorBody struct {
	Error   string              `json:"error"`
	Details map[string][]string `json:"details,omitempty"`
}

// JSON sends a success response with the given payload.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, data)
}

// Relay writes an upstream JSON body back to the client unchanged.
func Relay(c *gin.Context, status int, body []byte) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	if len(body) == 0 {
		c.Status(status)
		return
	}
	c.Data(status, "application/json; charset=utf-8", body)
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, ErrorBody{Error: appErr.Message, Details: appErr.Details})
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
