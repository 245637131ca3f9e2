package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openlearn/lms-gateway/internal/dto"
	"github.com/openlearn/lms-gateway/internal/service"
	appErrors "github.com/openlearn/lms-gateway/pkg/errors"
	"github.com/openlearn/lms-gateway/pkg/response"
)

// CommunityHandler handles the forum endpoints under /api/community.
type CommunityHandler struct {
	service *service.CommunityService
}

// NewCommunityHandler creates a new community handler.
func NewCommunityHandler(svc *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{service: svc}
}

// ListPosts relays a post listing.
func (h *CommunityHandler) ListPosts(c *gin.Context) {
	caller, err := currentCaller(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp, err := h.service.ListPosts(c.Request.Context(), caller, c.Request.URL.Query())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, resp.Status, resp.Body)
}

// GetPost relays a single post.
func (h *CommunityHandler) GetPost(c *gin.Context) {
	caller, err := currentCaller(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp, err := h.service.GetPost(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, resp.Status, resp.Body)
}

// CreatePost validates and relays a new post.
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	caller, err := currentCaller(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	resp, err := h.service.CreatePost(c.Request.Context(), caller, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, resp.Status, resp.Body)
}

// UpdatePost validates and relays a post edit (owner or admin).
func (h *CommunityHandler) UpdatePost(c *gin.Context) {
	caller, err := currentCaller(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	resp, err := h.service.UpdatePost(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, resp.Status, resp.Body)
}

// DeletePost relays a post deletion (owner or admin).
func (h *CommunityHandler) DeletePost(c *gin.Context) {
	caller, err := currentCaller(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp, err := h.service.DeletePost(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, resp.Status, resp.Body)
}

// CreateReply validates and relays a new reply.
func (h *CommunityHandler) CreateReply(c *gin.Context) {
	caller, err := currentCaller(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	resp, err := h.service.CreateReply(c.Request.Context(), caller, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, resp.Status, resp.Body)
}

// DeleteReply relays a reply deletion (owner or admin).
func (h *CommunityHandler) DeleteReply(c *gin.Context) {
	caller, err := currentCaller(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp, err := h.service.DeleteReply(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Relay(c, resp.Status, resp.Body)
}
