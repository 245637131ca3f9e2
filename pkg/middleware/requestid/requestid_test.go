package requestid

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareMintsAndStoresID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var ctxID string
	r := gin.New()
	r.Use(Middleware())
	r.GET("/", func(c *gin.Context) {
		ctxID = FromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	header := w.Header().Get("X-Request-ID")
	assert.NotEmpty(t, header)
	assert.Equal(t, header, ctxID, "response header and request context carry the same ID")
}

func TestMiddlewareHonoursInboundID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var ctxID string
	r := gin.New()
	r.Use(Middleware())
	r.GET("/", func(c *gin.Context) {
		ctxID = FromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "inbound-abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "inbound-abc-123", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "inbound-abc-123", ctxID)
}

func TestFromContextEmptyWithoutMiddleware(t *testing.T) {
	assert.Empty(t, FromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}
