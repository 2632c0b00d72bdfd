// Package service holds the business rules between the HTTP layer and the
// store. Handlers translate errors from here into status codes; nothing in
// this package knows about HTTP.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/nextx/admin-api/internal/admin/domain"
	"github.com/nextx/admin-api/internal/admin/store"
	"github.com/nextx/admin-api/pkg/cryptox"
	"github.com/nextx/admin-api/pkg/jwtx"
	"github.com/nextx/admin-api/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInactiveUser       = errors.New("inactive_user")
	ErrInvalidRefresh     = errors.New("invalid_refresh_token")
)

// SessionService authenticates users and mints token pairs. Sessions are
// stateless: nothing is written to the store on login, and refresh validity
// rests entirely on the refresh token's signature and expiry.
type SessionService struct {
	Store        store.Store
	AccessCodec  *jwtx.Codec
	RefreshCodec *jwtx.Codec
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
}

// Login verifies the password grant and issues an access/refresh pair.
//
// The granted scopes are the intersection of the requested scopes and the
// scopes assigned to the user. Requesting nothing grants nothing; requesting
// a scope the user does not hold silently drops it rather than failing the
// login.
func (s *SessionService) Login(ctx context.Context, username, password string, requestedScopes []string) (domain.TokenPair, error) {
	l := slogx.FromContext(ctx)
	now := time.Now()

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a hash comparison so unknown usernames cost the same
			// as wrong passwords.
			_ = cryptox.VerifyPassword(password, cryptox.DummyHash)
			l.Info("login failed: unknown user", slog.String("username", username))
			return domain.TokenPair{}, ErrInvalidCredentials
		}
		return domain.TokenPair{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("login failed: bad password", slog.String("username", username))
		return domain.TokenPair{}, ErrInvalidCredentials
	}

	if user.Disabled {
		l.Info("login rejected: user disabled", slog.String("username", username))
		return domain.TokenPair{}, ErrInactiveUser
	}

	granted := intersectScopes(requestedScopes, user.Scopes)

	access := jwtx.NewClaims(user.Username, granted, user.Roles, user.FullName, user.Email, s.AccessTTL, now)
	accessToken, err := s.AccessCodec.Encode(access)
	if err != nil {
		return domain.TokenPair{}, err
	}

	refresh := jwtx.NewClaims(user.Username, granted, user.Roles, user.FullName, user.Email, s.RefreshTTL, now)
	refreshToken, err := s.RefreshCodec.Encode(refresh)
	if err != nil {
		return domain.TokenPair{}, err
	}

	l.Info("login succeeded",
		slog.String("username", username),
		slog.Int("granted_scopes", len(granted)),
	)

	return domain.TokenPair{
		AccessToken:      accessToken,
		TokenType:        "bearer",
		ExpiresAt:        access.ExpiresAt.Time,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refresh.ExpiresAt.Time,
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh access token. The user
// record is re-read so a user disabled or deleted after login cannot keep
// minting access tokens; scopes are re-intersected against the current
// assignment for the same reason.
func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	now := time.Now()

	claims, err := s.RefreshCodec.Decode(refreshToken)
	if err != nil {
		return domain.TokenPair{}, ErrInvalidRefresh
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TokenPair{}, ErrInvalidRefresh
		}
		return domain.TokenPair{}, err
	}
	if user.Disabled {
		return domain.TokenPair{}, ErrInactiveUser
	}

	granted := intersectScopes(claims.Scopes, user.Scopes)

	access := jwtx.NewClaims(user.Username, granted, user.Roles, user.FullName, user.Email, s.AccessTTL, now)
	accessToken, err := s.AccessCodec.Encode(access)
	if err != nil {
		return domain.TokenPair{}, err
	}

	return domain.TokenPair{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresAt:   access.ExpiresAt.Time,
	}, nil
}

// intersectScopes returns the requested scopes the user actually holds,
// preserving request order and dropping duplicates.
func intersectScopes(requested, assigned []string) []string {
	held := make(map[string]struct{}, len(assigned))
	for _, s := range assigned {
		held[s] = struct{}{}
	}

	var granted []string
	seen := make(map[string]struct{}, len(requested))
	for _, s := range requested {
		if _, ok := held[s]; !ok {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		granted = append(granted, s)
	}
	return granted
}
