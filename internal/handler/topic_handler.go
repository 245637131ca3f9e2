package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openlearn/lms-gateway/internal/dto"
	"github.com/openlearn/lms-gateway/internal/service"
	appErrors "github.com/openlearn/lms-gateway/pkg/errors"
	"github.com/openlearn/lms-gateway/pkg/response"
)

// TopicHandler handles the /api/topics endpoints. Reads are public.
type TopicHandler struct {
	service *service.TopicService
}

// NewTopicHandler creates a new topic handler.
func NewTopicHandler(svc *service.TopicService) *TopicHandler {
	return &TopicHandler{service: svc}
}

// List relays a topic listing.
func (h *TopicHandler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context(), callerToken(c), c.Request.URL.Query())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, resp.Status, resp.Body)
}

// Get relays a single topic.
func (h *TopicHandler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), callerToken(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, resp.Status, resp.Body)
}

// Create validates and relays a topic creation.
func (h *TopicHandler) Create(c *gin.Context) {
	caller, err := currentCaller(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateTopicRequest
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

// Update validates and relays a topic update.
func (h *TopicHandler) Update(c *gin.Context) {
	caller, err := currentCaller(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateTopicRequest
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

// Delete relays a topic deletion.
func (h *TopicHandler) Delete(c *gin.Context) {
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
