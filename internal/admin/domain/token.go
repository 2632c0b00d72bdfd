package domain

import "time"

// TokenPair is what a successful login returns: a short-lived access token
// and a long-lived refresh token, each with its absolute expiry. Refresh
// responses reuse the shape with the refresh fields empty.
type TokenPair struct {
	AccessToken      string    `json:"access_token"`
	TokenType        string    `json:"token_type"`
	ExpiresAt        time.Time `json:"exp"`
	RefreshToken     string    `json:"refresh_token,omitempty"`
	RefreshExpiresAt time.Time `json:"refresh_exp,omitzero"`
}
