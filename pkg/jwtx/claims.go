// Package jwtx is the token codec: it turns claim sets into signed compact
// strings and back. There are two independent signing domains, access and
// refresh, each with its own secret. A token minted in one domain never
// verifies in the other.
package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default token TTLs. Access tokens are short-lived, refresh tokens carry the
// session across access expiries.
const (
	DefaultAccessTokenTTL  = 60 * time.Minute
	DefaultRefreshTokenTTL = 31 * 24 * time.Hour
)

// Kind names a signing domain. It is embedded in the token and checked on
// decode in addition to the per-domain secret.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Claims is the payload embedded in every token. The subject is the
// username; scopes and roles are frozen at issuance time, so a principal's
// authority never changes for the lifetime of the token.
type Claims struct {
	jwt.RegisteredClaims

	// Kind marks which signing domain the token belongs to.
	Kind Kind `json:"kind"`

	// Scopes are the permission strings granted to this session,
	// e.g. "users:read".
	Scopes []string `json:"scopes,omitempty"`

	// Roles are coarse-grained groups, e.g. "Admin".
	Roles []string `json:"roles,omitempty"`

	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
}

// NewClaims builds a claim set expiring ttl after now. The expiry is always
// set; decode rejects tokens without one.
func NewClaims(
	subject string,
	scopes, roles []string,
	fullName, email string,
	ttl time.Duration,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Scopes:   scopes,
		Roles:    roles,
		FullName: fullName,
		Email:    email,
	}
}

// HasScope reports whether the claim set carries the named scope.
func (c *Claims) HasScope(scope string) bool {
	for _, s := range c.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

// InRole reports whether the claim set carries the named role.
func (c *Claims) InRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Principal is the authenticated identity handed to request handlers. It is
// rebuilt from verified claims on every request and never re-fetched from
// the identity store.
type Principal struct {
	Username string
	FullName string
	Email    string
	Scopes   []string
	Roles    []string
}

// Principal converts verified claims into the identity downstream handlers
// consume.
func (c *Claims) Principal() Principal {
	return Principal{
		Username: c.Subject,
		FullName: c.FullName,
		Email:    c.Email,
		Scopes:   c.Scopes,
		Roles:    c.Roles,
	}
}

// HasScope reports whether the principal was granted the named scope.
func (p Principal) HasScope(scope string) bool {
	for _, s := range p.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

// InRole reports whether the principal carries the named role.
func (p Principal) InRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}
