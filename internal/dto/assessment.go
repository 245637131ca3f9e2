package dto

import "encoding/json"

// CreateAssessmentRequest creates an assessment. Question payloads are
// relayed opaquely; the backend owns their inner shape.
type CreateAssessmentRequest struct {
	TopicID   string          `json:"topicId" validate:"required"`
	Title     string          `json:"title" validate:"required,min=2,max=150"`
	Questions json.RawMessage `json:"questions" validate:"required"`
}

// UpdateAssessmentRequest updates an assessment.
type UpdateAssessmentRequest struct {
	Title     string          `json:"title,omitempty" validate:"omitempty,min=2,max=150"`
	Questions json.RawMessage `json:"questions,omitempty"`
}

// SubmitAssessmentRequest carries a learner's answers.
type SubmitAssessmentRequest struct {
	Answers json.RawMessage `json:"answers" validate:"required"`
}
