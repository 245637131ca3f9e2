package upstream

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlearn/lms-gateway/pkg/config"
	appErrors "github.com/openlearn/lms-gateway/pkg/errors"
	"github.com/openlearn/lms-gateway/pkg/middleware/requestid"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.BackendConfig{BaseURL: baseURL, Timeout: 5 * time.Second}, nil, nil)
}

func TestDoForwardsMethodPathAndBody(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotAuth   string
		gotBody   []byte
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	resp, err := client.Do(context.Background(), http.MethodPut, "/api/users/42", "tok", map[string]string{"firstName": "Ada"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/users/42", gotPath)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.JSONEq(t, `{"firstName":"Ada"}`, string(gotBody))
	assert.Equal(t, http.StatusOK, resp.Status)
}

func TestDoOmitsAuthorizationWithoutToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Do(context.Background(), http.MethodGet, "/api/topics", "", nil)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestDoTranslates422WithDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"errors":{"email":["taken"]}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Do(context.Background(), http.MethodPost, "/api/users", "tok", map[string]string{})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Status)
	assert.Equal(t, "Validation failed", appErr.Message)
	assert.Equal(t, []string{"taken"}, appErr.Details["email"])
}

func TestDoTranslatesKnownStatuses(t *testing.T) {
	cases := []struct {
		upstream int
		message  string
	}{
		{http.StatusUnauthorized, "Unauthorized"},
		{http.StatusForbidden, "Forbidden"},
		{http.StatusNotFound, "Resource not found"},
	}

	for _, tc := range cases {
		status := tc.upstream
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		_, err := newTestClient(server.URL).Do(context.Background(), http.MethodGet, "/api/users/1", "tok", nil)
		server.Close()
		require.Error(t, err)

		appErr := appErrors.FromError(err)
		assert.Equal(t, tc.upstream, appErr.Status)
		assert.Equal(t, tc.message, appErr.Message)
	}
}

func TestDoPassesThroughUnknownStatusWithMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"email already exists"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Do(context.Background(), http.MethodPost, "/api/users", "tok", map[string]string{})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusConflict, appErr.Status)
	assert.Equal(t, "email already exists", appErr.Message)
}

func TestDoPropagatesInboundRequestID(t *testing.T) {
	var gotID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx := requestid.NewContext(context.Background(), "gw-abc-123")
	_, err := newTestClient(server.URL).Do(ctx, http.MethodGet, "/api/topics", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "gw-abc-123", gotID, "gateway and backend logs must share the correlation ID")
}

func TestDoMintsRequestIDWhenAbsent(t *testing.T) {
	var gotID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Do(context.Background(), http.MethodGet, "/api/topics", "", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, gotID)
}

func TestDoNetworkFailure(t *testing.T) {
	// a closed server guarantees connection refused
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := newTestClient(server.URL).Do(context.Background(), http.MethodGet, "/api/topics", "", nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, appErrors.FromError(err).Status)
}

func TestTranslateUnparseableBody(t *testing.T) {
	appErr := Translate(http.StatusInternalServerError, []byte("<html>boom</html>"))
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Equal(t, "Request failed", appErr.Message)
}

func TestResponseDecode(t *testing.T) {
	resp := &Response{Status: http.StatusOK, Body: json.RawMessage(`{"id":"7"}`)}

	var out struct {
		ID string `json:"id"`
	}
	require.NoError(t, resp.Decode(&out))
	assert.Equal(t, "7", out.ID)

	empty := &Response{Status: http.StatusNoContent}
	assert.Error(t, empty.Decode(&out))
}
