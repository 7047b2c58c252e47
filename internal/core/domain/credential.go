package domain

import (
	"errors"
	"time"
)

// Gate failures. Both surface as 401; the message is the only difference.
var (
	ErrMissingCredential = errors.New("no token, authorization denied")
	ErrInvalidCredential = errors.New("token is not valid")
)

// AuthUser is the identity embedded in a credential under the "user" claim
// and attached to the request once the gate lets it through.
type AuthUser struct {
	ID   string `json:"id"`
	Role string `json:"role,omitempty"`
}

// IsAdmin reports whether the identity carries the admin role.
func (u *AuthUser) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Claims is the decoded, already verified payload of a credential.
type Claims struct {
	User      AuthUser
	IssuedAt  time.Time
	ExpiresAt time.Time
}
