package service

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/openlearn/lms-gateway/internal/dto"
	"github.com/openlearn/lms-gateway/internal/models"
	"github.com/openlearn/lms-gateway/internal/upstream"
	"github.com/openlearn/lms-gateway/internal/validate"
	appErrors "github.com/openlearn/lms-gateway/pkg/errors"
)

type communityForwarder interface {
	Do(ctx context.Context, method, path, token string, body interface{}) (*upstream.Response, error)
}

// CommunityService validates forum payloads and forwards them to the
// backend's community resources. Post and reply mutations require the
// caller to own the record or hold the admin role; ownership is learned by
// reading the record from the backend first.
type CommunityService struct {
	upstream  communityForwarder
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCommunityService creates an instance of CommunityService.
func NewCommunityService(fwd communityForwarder, v *validator.Validate, logger *zap.Logger) *CommunityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if v == nil {
		v = validate.New()
	}
	return &CommunityService{upstream: fwd, validator: v, logger: logger}
}

// ListPosts forwards a post listing.
func (s *CommunityService) ListPosts(ctx context.Context, caller *models.Caller, query url.Values) (*upstream.Response, error) {
	return s.upstream.Do(ctx, http.MethodGet, withQuery("/api/community/posts", query), caller.Token, nil)
}

// GetPost forwards a single-post read.
func (s *CommunityService) GetPost(ctx context.Context, caller *models.Caller, id string) (*upstream.Response, error) {
	return s.upstream.Do(ctx, http.MethodGet, "/api/community/posts/"+url.PathEscape(id), caller.Token, nil)
}

// CreatePost validates and forwards a new post.
func (s *CommunityService) CreatePost(ctx context.Context, caller *models.Caller, req dto.CreatePostRequest) (*upstream.Response, error) {
	if err := validate.Struct(s.validator, req); err != nil {
		return nil, err
	}
	return s.upstream.Do(ctx, http.MethodPost, "/api/community/posts", caller.Token, req)
}

// UpdatePost forwards a post edit after checking the caller owns the post.
func (s *CommunityService) UpdatePost(ctx context.Context, caller *models.Caller, id string, req dto.UpdatePostRequest) (*upstream.Response, error) {
	if err := validate.Struct(s.validator, req); err != nil {
		return nil, err
	}
	if err := s.authorizePostOwner(ctx, caller, id); err != nil {
		return nil, err
	}
	return s.upstream.Do(ctx, http.MethodPut, "/api/community/posts/"+url.PathEscape(id), caller.Token, req)
}

// DeletePost forwards a post deletion after checking ownership.
func (s *CommunityService) DeletePost(ctx context.Context, caller *models.Caller, id string) (*upstream.Response, error) {
	if err := s.authorizePostOwner(ctx, caller, id); err != nil {
		return nil, err
	}
	return s.upstream.Do(ctx, http.MethodDelete, "/api/community/posts/"+url.PathEscape(id), caller.Token, nil)
}

// CreateReply validates and forwards a new reply.
func (s *CommunityService) CreateReply(ctx context.Context, caller *models.Caller, req dto.CreateReplyRequest) (*upstream.Response, error) {
	if err := validate.Struct(s.validator, req); err != nil {
		return nil, err
	}
	return s.upstream.Do(ctx, http.MethodPost, "/api/community/replies", caller.Token, req)
}

// DeleteReply forwards a reply deletion after checking ownership.
func (s *CommunityService) DeleteReply(ctx context.Context, caller *models.Caller, id string) (*upstream.Response, error) {
	if !caller.IsAdmin() {
		resp, err := s.upstream.Do(ctx, http.MethodGet, "/api/community/replies/"+url.PathEscape(id), caller.Token, nil)
		if err != nil {
			return nil, err
		}
		var reply models.CommunityReply
		if err := resp.Decode(&reply); err != nil {
			return nil, err
		}
		if reply.AuthorID != caller.ID {
			return nil, appErrors.Clone(appErrors.ErrForbidden, "You can only delete your own replies")
		}
	}
	return s.upstream.Do(ctx, http.MethodDelete, "/api/community/replies/"+url.PathEscape(id), caller.Token, nil)
}

func (s *CommunityService) authorizePostOwner(ctx context.Context, caller *models.Caller, id string) error {
	if caller.IsAdmin() {
		return nil
	}

	resp, err := s.upstream.Do(ctx, http.MethodGet, "/api/community/posts/"+url.PathEscape(id), caller.Token, nil)
	if err != nil {
		return err
	}

	var post models.CommunityPost
	if err := resp.Decode(&post); err != nil {
		return err
	}
	if post.AuthorID != caller.ID {
		return appErrors.Clone(appErrors.ErrForbidden, "You can only modify your own posts")
	}
	return nil
}
