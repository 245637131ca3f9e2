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
)

type topicForwarder interface {
	Do(ctx context.Context, method, path, token string, body interface{}) (*upstream.Response, error)
}

// TopicService validates topic payloads and forwards them to the backend's
// /api/topics resource. Reads are public; the token may be empty.
type TopicService struct {
	upstream  topicForwarder
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTopicService creates an instance of TopicService.
func NewTopicService(fwd topicForwarder, v *validator.Validate, logger *zap.Logger) *TopicService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if v == nil {
		v = validate.New()
	}
	return &TopicService{upstream: fwd, validator: v, logger: logger}
}

// List forwards a topic listing.
func (s *TopicService) List(ctx context.Context, token string, query url.Values) (*upstream.Response, error) {
	return s.upstream.Do(ctx, http.MethodGet, withQuery("/api/topics", query), token, nil)
}

// Get forwards a single-topic read.
func (s *TopicService) Get(ctx context.Context, token, id string) (*upstream.Response, error) {
	return s.upstream.Do(ctx, http.MethodGet, "/api/topics/"+url.PathEscape(id), token, nil)
}

// Create validates and forwards a topic creation.
func (s *TopicService) Create(ctx context.Context, caller *models.Caller, req dto.CreateTopicRequest) (*upstream.Response, error) {
	if err := validate.Struct(s.validator, req); err != nil {
		return nil, err
	}
	if req.Image != "" {
		if err := validate.Image(req.Image, validate.TopicImageMaxBytes); err != nil {
			return nil, err
		}
	}
	return s.upstream.Do(ctx, http.MethodPost, "/api/topics", caller.Token, req)
}

// Update validates and forwards a topic update.
func (s *TopicService) Update(ctx context.Context, caller *models.Caller, id string, req dto.UpdateTopicRequest) (*upstream.Response, error) {
	if err := validate.Struct(s.validator, req); err != nil {
		return nil, err
	}
	if req.Image != "" {
		if err := validate.Image(req.Image, validate.TopicImageMaxBytes); err != nil {
			return nil, err
		}
	}
	return s.upstream.Do(ctx, http.MethodPut, "/api/topics/"+url.PathEscape(id), caller.Token, req)
}

// Delete forwards a topic deletion.
func (s *TopicService) Delete(ctx context.Context, caller *models.Caller, id string) (*upstream.Response, error) {
	return s.upstream.Do(ctx, http.MethodDelete, "/api/topics/"+url.PathEscape(id), caller.Token, nil)
}
