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

type lessonForwarder interface {
	Do(ctx context.Context, method, path, token string, body interface{}) (*upstream.Response, error)
}

// LessonService validates lesson payloads and forwards them to the backend's
// /api/lessons resource.
type LessonService struct {
	upstream  lessonForwarder
	validator *validator.Validate
	logger    *zap.Logger
}

// NewLessonService creates an instance of LessonService.
func NewLessonService(fwd lessonForwarder, v *validator.Validate, logger *zap.Logger) *LessonService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if v == nil {
		v = validate.New()
	}
	return &LessonService{upstream: fwd, validator: v, logger: logger}
}

// List forwards a lesson listing; topicId filtering rides in the query.
func (s *LessonService) List(ctx context.Context, token string, query url.Values) (*upstream.Response, error) {
	return s.upstream.Do(ctx, http.MethodGet, withQuery("/api/lessons", query), token, nil)
}

// Get forwards a single-lesson read.
func (s *LessonService) Get(ctx context.Context, token, id string) (*upstream.Response, error) {
	return s.upstream.Do(ctx, http.MethodGet, "/api/lessons/"+url.PathEscape(id), token, nil)
}

// Create validates and forwards a lesson creation.
func (s *LessonService) Create(ctx context.Context, caller *models.Caller, req dto.CreateLessonRequest) (*upstream.Response, error) {
	if err := validate.Struct(s.validator, req); err != nil {
		return nil, err
	}
	return s.upstream.Do(ctx, http.MethodPost, "/api/lessons", caller.Token, req)
}

// Update validates and forwards a lesson update.
func (s *LessonService) Update(ctx context.Context, caller *models.Caller, id string, req dto.UpdateLessonRequest) (*upstream.Response, error) {
	if err := validate.Struct(s.validator, req); err != nil {
		return nil, err
	}
	return s.upstream.Do(ctx, http.MethodPut, "/api/lessons/"+url.PathEscape(id), caller.Token, req)
}

// Delete forwards a lesson deletion.
func (s *LessonService) Delete(ctx context.Context, caller *models.Caller, id string) (*upstream.Response, error) {
	return s.upstream.Do(ctx, http.MethodDelete, "/api/lessons/"+url.PathEscape(id), caller.Token, nil)
}
