package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlearn/lms-gateway/internal/dto"
	"github.com/openlearn/lms-gateway/internal/models"
	"github.com/openlearn/lms-gateway/internal/upstream"
)

func TestAssessmentServiceGetRelaysRecord(t *testing.T) {
	record := models.Assessment{
		ID:        "a1",
		TopicID:   "t1",
		Title:     "Algebra Quiz",
		Questions: json.RawMessage(`[{"prompt":"2+2?","choices":["3","4"]}]`),
	}
	body, _ := json.Marshal(record)
	fwd := &fakeForwarder{responses: map[string]*upstream.Response{
		"GET /api/assessments/a1": {Status: http.StatusOK, Body: body},
	}}
	svc := NewAssessmentService(fwd, nil, nil)

	resp, err := svc.Get(context.Background(), adminCaller(), "a1")
	require.NoError(t, err)

	var got models.Assessment
	require.NoError(t, resp.Decode(&got))
	assert.Equal(t, record.ID, got.ID)
	assert.Equal(t, record.Title, got.Title)
	assert.JSONEq(t, string(record.Questions), string(got.Questions), "question payloads are relayed untouched")
}

func TestAssessmentServiceSubmitForwardsAnswers(t *testing.T) {
	fwd := &fakeForwarder{}
	svc := NewAssessmentService(fwd, nil, nil)
	caller := &models.Caller{ID: "7", Role: models.RoleStudent, Token: "t"}

	_, err := svc.Submit(context.Background(), caller, "a1", dto.SubmitAssessmentRequest{
		Answers: json.RawMessage(`{"1":"b","2":"a"}`),
	})
	require.NoError(t, err)
	require.Len(t, fwd.calls, 1)
	assert.Equal(t, http.MethodPost, fwd.calls[0].Method)
	assert.Equal(t, "/api/assessments/a1/submit", fwd.calls[0].Path)
}

func TestAssessmentServiceSubmitRequiresAnswers(t *testing.T) {
	fwd := &fakeForwarder{}
	svc := NewAssessmentService(fwd, nil, nil)

	_, err := svc.Submit(context.Background(), adminCaller(), "a1", dto.SubmitAssessmentRequest{})
	require.Error(t, err)
	assert.Empty(t, fwd.calls)
}
