package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlearn/lms-gateway/internal/dto"
	"github.com/openlearn/lms-gateway/internal/models"
	"github.com/openlearn/lms-gateway/internal/upstream"
	appErrors "github.com/openlearn/lms-gateway/pkg/errors"
)

type forwardedCall struct {
	Method string
	Path   string
	Token  string
	Body   []byte
}

// fakeForwarder records calls and serves canned responses keyed by
// "METHOD path".
type fakeForwarder struct {
	calls     []forwardedCall
	responses map[string]*upstream.Response
	err       error
}

func (f *fakeForwarder) Do(_ context.Context, method, path, token string, body interface{}) (*upstream.Response, error) {
	var data []byte
	if body != nil {
		data, _ = json.Marshal(body)
	}
	f.calls = append(f.calls, forwardedCall{Method: method, Path: path, Token: token, Body: data})

	if f.err != nil {
		return nil, f.err
	}
	if resp, ok := f.responses[method+" "+path]; ok {
		return resp, nil
	}
	return &upstream.Response{Status: http.StatusOK, Body: json.RawMessage(`{}`)}, nil
}

func adminCaller() *models.Caller {
	return &models.Caller{ID: "1", Role: models.RoleAdmin, Token: "admin-token"}
}

func TestUserServiceCreateRemapsCreatorRole(t *testing.T) {
	fwd := &fakeForwarder{}
	svc := NewUserService(fwd, nil, nil)

	_, err := svc.Create(context.Background(), adminCaller(), dto.CreateUserRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Password:  "secret123",
		Role:      models.RoleCreator,
	})
	require.NoError(t, err)
	require.Len(t, fwd.calls, 1)

	call := fwd.calls[0]
	assert.Equal(t, http.MethodPost, call.Method)
	assert.Equal(t, "/api/users", call.Path)
	assert.Equal(t, "admin-token", call.Token)

	var forwarded map[string]interface{}
	require.NoError(t, json.Unmarshal(call.Body, &forwarded))
	assert.Equal(t, "teacher", forwarded["role"])
	assert.Equal(t, "Grace", forwarded["firstName"])
}

func TestUserServiceCreateRejectsShortPassword(t *testing.T) {
	fwd := &fakeForwarder{}
	svc := NewUserService(fwd, nil, nil)

	_, err := svc.Create(context.Background(), adminCaller(), dto.CreateUserRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Password:  "abc",
		Role:      models.RoleStudent,
	})
	require.Error(t, err)
	assert.Equal(t, "Password must be at least 6 characters long", appErrors.FromError(err).Message)
	assert.Empty(t, fwd.calls, "invalid payloads must never reach the backend")
}

func TestUserServiceUpdateIsRepeatable(t *testing.T) {
	fwd := &fakeForwarder{}
	svc := NewUserService(fwd, nil, nil)

	req := dto.UpdateUserRequest{FirstName: "Ada", LastName: "Lovelace"}
	_, err := svc.Update(context.Background(), adminCaller(), "42", req)
	require.NoError(t, err)
	_, err = svc.Update(context.Background(), adminCaller(), "42", req)
	require.NoError(t, err)

	require.Len(t, fwd.calls, 2)
	assert.Equal(t, fwd.calls[0].Body, fwd.calls[1].Body, "repeating the same update must forward the same payload")
}

func TestUserServiceUpdateRoleRequiresAdmin(t *testing.T) {
	fwd := &fakeForwarder{}
	svc := NewUserService(fwd, nil, nil)

	caller := &models.Caller{ID: "7", Role: models.RoleStudent, Token: "t"}
	_, err := svc.Update(context.Background(), caller, "7", dto.UpdateUserRequest{Role: models.RoleAdmin})
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, appErrors.FromError(err).Status)
	assert.Empty(t, fwd.calls)
}

func TestUserServiceSelfDeleteBlocked(t *testing.T) {
	fwd := &fakeForwarder{}
	svc := NewUserService(fwd, nil, nil)

	_, err := svc.Delete(context.Background(), adminCaller(), "1")
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "You cannot delete your own account", appErr.Message)
	assert.Empty(t, fwd.calls)
}

func TestUserServiceDeleteOtherUser(t *testing.T) {
	fwd := &fakeForwarder{}
	svc := NewUserService(fwd, nil, nil)

	_, err := svc.Delete(context.Background(), adminCaller(), "42")
	require.NoError(t, err)
	require.Len(t, fwd.calls, 1)
	assert.Equal(t, http.MethodDelete, fwd.calls[0].Method)
	assert.Equal(t, "/api/users/42", fwd.calls[0].Path)
}

func TestUserServiceUpdatePasswordShort(t *testing.T) {
	fwd := &fakeForwarder{}
	svc := NewUserService(fwd, nil, nil)

	_, err := svc.UpdatePassword(context.Background(), adminCaller(), "42", dto.UpdatePasswordRequest{NewPassword: "abc"})
	require.Error(t, err)
	assert.Equal(t, "Password must be at least 6 characters long", appErrors.FromError(err).Message)
}

func profileImage(size int) string {
	raw := bytes.Repeat([]byte{0x01}, size)
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw)
}

func TestUserServiceProfileImageBoundary(t *testing.T) {
	fwd := &fakeForwarder{}
	svc := NewUserService(fwd, nil, nil)

	_, err := svc.UpdateProfileImage(context.Background(), adminCaller(), "1",
		dto.UpdateProfileImageRequest{Image: profileImage(2 * 1024 * 1024)})
	assert.NoError(t, err, "a decoded payload of exactly 2MiB is accepted")

	_, err = svc.UpdateProfileImage(context.Background(), adminCaller(), "1",
		dto.UpdateProfileImageRequest{Image: profileImage(2*1024*1024 + 1)})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}
