package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlearn/lms-gateway/internal/dto"
	"github.com/openlearn/lms-gateway/internal/models"
	"github.com/openlearn/lms-gateway/internal/upstream"
	appErrors "github.com/openlearn/lms-gateway/pkg/errors"
)

func TestLessonServiceListForwardsTopicFilter(t *testing.T) {
	lessons := []models.Lesson{
		{ID: "l1", TopicID: "t1", Title: "Intro", Order: 1},
		{ID: "l2", TopicID: "t1", Title: "Basics", Order: 2},
	}
	body, _ := json.Marshal(lessons)
	fwd := &fakeForwarder{responses: map[string]*upstream.Response{
		"GET /api/lessons?topicId=t1": {Status: http.StatusOK, Body: body},
	}}
	svc := NewLessonService(fwd, nil, nil)

	resp, err := svc.List(context.Background(), "", url.Values{"topicId": {"t1"}})
	require.NoError(t, err)

	var got []models.Lesson
	require.NoError(t, resp.Decode(&got))
	assert.Equal(t, lessons, got)
}

func TestLessonServiceCreateRequiresTopic(t *testing.T) {
	fwd := &fakeForwarder{}
	svc := NewLessonService(fwd, nil, nil)
	caller := &models.Caller{ID: "3", Role: models.RoleTeacher, Token: "t"}

	_, err := svc.Create(context.Background(), caller, dto.CreateLessonRequest{Title: "Intro"})
	require.Error(t, err)
	assert.Contains(t, appErrors.FromError(err).Details, "topicId")
	assert.Empty(t, fwd.calls)
}

func TestLessonServiceCreateForwardsPayload(t *testing.T) {
	fwd := &fakeForwarder{}
	svc := NewLessonService(fwd, nil, nil)
	caller := &models.Caller{ID: "3", Role: models.RoleTeacher, Token: "teacher-token"}

	_, err := svc.Create(context.Background(), caller, dto.CreateLessonRequest{
		TopicID:  "t1",
		Title:    "Intro",
		Duration: 45,
	})
	require.NoError(t, err)
	require.Len(t, fwd.calls, 1)

	call := fwd.calls[0]
	assert.Equal(t, http.MethodPost, call.Method)
	assert.Equal(t, "/api/lessons", call.Path)
	assert.Equal(t, "teacher-token", call.Token)

	var forwarded models.Lesson
	require.NoError(t, json.Unmarshal(call.Body, &forwarded))
	assert.Equal(t, "t1", forwarded.TopicID)
	assert.Equal(t, 45, forwarded.Duration)
}
