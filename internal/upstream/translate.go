package upstream

import (
	"encoding/json"
	"net/http"

	appErrors "github.com/openlearn/lms-gateway/pkg/errors"
)

// errorBody covers the error shapes the backend is known to emit.
type errorBody struct {
	Message string              `json:"message"`
	Error   string              `json:"error"`
	Errors  map[string][]string `json:"errors"`
}

// Translate maps a non-2xx upstream reply onto the gateway's uniform error
// taxonomy. 422 keeps the backend's field-level error map verbatim; unknown
// statuses pass through with whatever message the body yields.
func Translate(status int, body []byte) *appErrors.Error {
	var parsed errorBody
	if len(body) > 0 {
		_ = json.Unmarshal(body, &parsed)
	}

	switch status {
	case http.StatusUnauthorized:
		return appErrors.ErrUnauthorized
	case http.StatusForbidden:
		return appErrors.ErrForbidden
	case http.StatusNotFound:
		return appErrors.ErrNotFound
	case http.StatusUnprocessableEntity:
		e := appErrors.New(appErrors.ErrValidation.Code, http.StatusUnprocessableEntity, "Validation failed")
		e.Details = parsed.Errors
		return e
	}

	message := parsed.Message
	if message == "" {
		message = parsed.Error
	}
	if message == "" {
		message = "Request failed"
	}
	return appErrors.New(appErrors.ErrUpstream.Code, status, message)
}
