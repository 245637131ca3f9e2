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

type assessmentForwarder interface {
	Do(ctx context.Context, method, path, token string, body interface{}) (*upstream.Response, error)
}

// AssessmentService validates assessment payloads and forwards them to the
// backend's /api/assessments resource.
type AssessmentService struct {
	upstream  assessmentForwarder
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAssessmentService creates an instance of AssessmentService.
func NewAssessmentService(fwd assessmentForwarder, v *validator.Validate, logger *zap.Logger) *AssessmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if v == nil {
		v = validate.New()
	}
	return &AssessmentService{upstream: fwd, validator: v, logger: logger}
}

// List forwards an assessment listing.
func (s *AssessmentService) List(ctx context.Context, caller *models.Caller, query url.Values) (*upstream.Response, error) {
	return s.upstream.Do(ctx, http.MethodGet, withQuery("/api/assessments", query), caller.Token, nil)
}

// Get forwards a single-assessment read.
func (s *AssessmentService) Get(ctx context.Context, caller *models.Caller, id string) (*upstream.Response, error) {
	return s.upstream.Do(ctx, http.MethodGet, "/api/assessments/"+url.PathEscape(id), caller.Token, nil)
}

// Create validates and forwards an assessment creation.
func (s *AssessmentService) Create(ctx context.Context, caller *models.Caller, req dto.CreateAssessmentRequest) (*upstream.Response, error) {
	if err := validate.Struct(s.validator, req); err != nil {
		return nil, err
	}
	return s.upstream.Do(ctx, http.MethodPost, "/api/assessments", caller.Token, req)
}

// Update validates and forwards an assessment update.
func (s *AssessmentService) Update(ctx context.Context, caller *models.Caller, id string, req dto.UpdateAssessmentRequest) (*upstream.Response, error) {
	if err := validate.Struct(s.validator, req); err != nil {
		return nil, err
	}
	return s.upstream.Do(ctx, http.MethodPut, "/api/assessments/"+url.PathEscape(id), caller.Token, req)
}

// Delete forwards an assessment deletion.
func (s *AssessmentService) Delete(ctx context.Context, caller *models.Caller, id string) (*upstream.Response, error) {
	return s.upstream.Do(ctx, http.MethodDelete, "/api/assessments/"+url.PathEscape(id), caller.Token, nil)
}

// Submit validates and forwards a learner's answers.
func (s *AssessmentService) Submit(ctx context.Context, caller *models.Caller, id string, req dto.SubmitAssessmentRequest) (*upstream.Response, error) {
	if err := validate.Struct(s.validator, req); err != nil {
		return nil, err
	}
	return s.upstream.Do(ctx, http.MethodPost, "/api/assessments/"+url.PathEscape(id)+"/submit", caller.Token, req)
}
