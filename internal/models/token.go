package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the payload of backend-issued access tokens. API clients
// that skip the cookie session authenticate with one of these directly.
type SessionClaims struct {
	Role      Role   `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	jwt.RegisteredClaims
}
