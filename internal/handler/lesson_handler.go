package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openlearn/lms-gateway/internal/dto"
	"github.com/openlearn/lms-gateway/internal/service"
	appErrors "github.com/openlearn/lms-gateway/pkg/errors"
	"github.com/openlearn/lms-gateway/pkg/response"
)

// LessonHandler handles the /api/lessons endpoints.
type LessonHandler struct {
	service *service.LessonService
}

// NewLessonHandler creates a new lesson handler.
func NewLessonHandler(svc *service.LessonService) *LessonHandler {
	return &LessonHandler{service: svc}
}

// List relays a lesson listing; the topicId filter rides in the query string.
func (h *LessonHandler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context(), callerToken(c), c.Request.URL.Query())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, resp.Status, resp.Body)
}

// Get relays a single lesson.
func (h *LessonHandler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), callerToken(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, resp.Status, resp.Body)
}

// Create validates and relays a lesson creation.
func (h *LessonHandler) Create(c *gin.Context) {
	caller, err := currentCaller(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), caller, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, resp.Status, resp.Body)
}

// Update validates and relays a lesson update.
func (h *LessonHandler) Update(c *gin.Context) {
	caller, err := currentCaller(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, resp.Status, resp.Body)
}

// Delete relays a lesson deletion.
func (h *LessonHandler) Delete(c *gin.Context) {
	caller, err := currentCaller(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp, err := h.service.Delete(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, resp.Status, resp.Body)
}
