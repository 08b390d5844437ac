package domain

import (
	"errors"
	"time"
)

// Role is the derived access tier of a signed-in identity. It is computed on
// every sign-in and rehydration, never stored on the identity itself.
type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleSchool    Role = "school"
	RoleAdmin     Role = "admin"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrIdentityNotFound = errors.New("identity not found")
var ErrSessionNotFound = errors.New("session not found")

// ResolveRole derives the effective role from the two role-determining
// lookups. Admin wins when an identity both appears in the admin directory
// and has a school record.
func ResolveRole(isAdmin, hasSchool bool) Role {
	switch {
	case isAdmin:
		return RoleAdmin
	case hasSchool:
		return RoleSchool
	default:
		return RoleAnonymous
	}
}

// Identity is the credential record held by the identity provider. The core
// keeps only a non-owning copy for the session's duration.
type Identity struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session is the authenticated state cached for one credential token. It is
// recreated on every sign-in and discarded on sign-out.
type Session struct {
	TokenID   string    `json:"token_id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	SchoolID  string    `json:"school_id,omitempty"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// HasSchool reports whether a school record is associated with the session's
// email. An admin may also carry a school association.
func (s *Session) HasSchool() bool {
	return s != nil && s.SchoolID != ""
}

// State maps the session onto the route-guard state machine. A signed-in
// identity that matched neither the admin directory nor a school record is
// authenticated but roleless, which the guard treats differently from an
// absent identity.
func (s *Session) State() SessionState {
	if s == nil {
		return StateAnonymous
	}
	switch s.Role {
	case RoleAdmin:
		return StateAuthenticatedAdmin
	case RoleSchool:
		return StateAuthenticatedSchool
	default:
		return StateAuthenticated
	}
}
