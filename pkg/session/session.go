package session

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/openlearn/lms-gateway/internal/models"
	"github.com/openlearn/lms-gateway/pkg/config"
)

const cookieName = "lms_session"

const (
	keyUserID    = "user_id"
	keyRole      = "role"
	keyFirstName = "first_name"
	keyLastName  = "last_name"
	keyToken     = "access_token"
)

// Manager wraps a gorilla cookie store holding the authenticated caller's
// identity and backend access token. The cookie is the only session state
// the gateway keeps; everything else lives in the backend.
type Manager struct {
	store *sessions.CookieStore
}

// NewManager builds a cookie-session manager. Secure must be true in
// production so the cookie is never sent over plain HTTP.
func NewManager(cfg config.SessionConfig, secure bool) *Manager {
	store := sessions.NewCookieStore([]byte(cfg.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

// Caller reconstructs the authenticated caller from the request's cookie.
// The second return is false for anonymous or undecodable sessions.
func (m *Manager) Caller(r *http.Request) (*models.Caller, bool) {
	sess, err := m.store.Get(r, cookieName)
	if err != nil || sess.IsNew {
		return nil, false
	}

	id, ok := sess.Values[keyUserID].(string)
	if !ok || id == "" {
		return nil, false
	}
	role, _ := sess.Values[keyRole].(string)
	firstName, _ := sess.Values[keyFirstName].(string)
	lastName, _ := sess.Values[keyLastName].(string)
	token, _ := sess.Values[keyToken].(string)

	return &models.Caller{
		ID:        id,
		Role:      models.Role(role),
		FirstName: firstName,
		LastName:  lastName,
		Token:     token,
	}, true
}

// Save persists the caller into a fresh session cookie.
func (m *Manager) Save(w http.ResponseWriter, r *http.Request, caller *models.Caller) error {
	sess, _ := m.store.Get(r, cookieName)
	sess.Values[keyUserID] = caller.ID
	sess.Values[keyRole] = string(caller.Role)
	sess.Values[keyFirstName] = caller.FirstName
	sess.Values[keyLastName] = caller.LastName
	sess.Values[keyToken] = caller.Token
	return sess.Save(r, w)
}

// Clear expires the session cookie.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, cookieName)
	sess.Options.MaxAge = -1
	for k := range sess.Values {
		delete(sess.Values, k)
	}
	return sess.Save(r, w)
}
