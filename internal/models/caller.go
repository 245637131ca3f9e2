package models

// Role represents the role vocabulary accepted at the gateway boundary.
// The backend only knows admin, student and teacher; creator is a synonym
// for teacher accepted here and remapped before forwarding.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleCreator Role = "creator"
)

// Valid reports whether the role belongs to the gateway vocabulary.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStudent, RoleTeacher, RoleCreator:
		return true
	}
	return false
}

// Normalize maps the gateway-only creator synonym onto the backend's teacher
// role. All other roles pass through unchanged. The mapping is one-way:
// backend responses are never translated back to creator.
func (r Role) Normalize() Role {
	if r == RoleCreator {
		return RoleTeacher
	}
	return r
}

// Caller is the authenticated identity resolved per request from the cookie
// session or a bearer token. It is threaded explicitly through handlers and
// services; nothing reads it from ambient state.
type Caller struct {
	ID        string `json:"id"`
	Role      Role   `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Token     string `json:"-"`
}

// IsAdmin reports whether the caller holds the admin role.
func (c *Caller) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}
