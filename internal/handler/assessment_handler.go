package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openlearn/lms-gateway/internal/dto"
	"github.com/openlearn/lms-gateway/internal/service"
	appErrors "github.com/openlearn/lms-gateway/pkg/errors"
	"github.com/openlearn/lms-gateway/pkg/response"
)

// AssessmentHandler handles the /api/assessments endpoints.
type AssessmentHandler struct {
	service *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler.
func NewAssessmentHandler(svc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{service: svc}
}

// List relays an assessment listing.
func (h *AssessmentHandler) List(c *gin.Context) {
	caller, err := currentCaller(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp, err := h.service.List(c.Request.Context(), caller, c.Request.URL.Query())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, resp.Status, resp.Body)
}

// Get relays a single assessment.
func (h *AssessmentHandler) Get(c *gin.Context) {
	caller, err := currentCaller(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp, err := h.service.Get(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, resp.Status, resp.Body)
}

// Create validates and relays an assessment creation.
func (h *AssessmentHandler) Create(c *gin.Context) {
	caller, err := currentCaller(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateAssessmentRequest
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

// Update validates and relays an assessment update.
func (h *AssessmentHandler) Update(c *gin.Context) {
	caller, err := currentCaller(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateAssessmentRequest
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

// Delete relays an assessment deletion.
func (h *AssessmentHandler) Delete(c *gin.Context) {
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

// Submit validates and relays a learner's submission.
func (h *AssessmentHandler) Submit(c *gin.Context) {
	caller, err := currentCaller(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.SubmitAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, resp.Status, resp.Body)
}
