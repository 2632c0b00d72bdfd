package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewClaimsAlwaysSetsExpiry(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	claims := NewClaims("bob", nil, nil, "", "", 45*time.Minute, now)

	require.NotNil(t, claims.ExpiresAt)
	require.Equal(t, now.Add(45*time.Minute).Unix(), claims.ExpiresAt.Unix())
	require.Equal(t, now.Unix(), claims.IssuedAt.Unix())
	require.Equal(t, "bob", claims.Subject)
}

func TestClaimsScopeAndRoleMembership(t *testing.T) {
	claims := NewClaims(
		"carol",
		[]string{"users:read", "nomenclature:read"},
		[]string{"Editor"},
		"", "",
		time.Hour,
		time.Now(),
	)

	require.True(t, claims.HasScope("users:read"))
	require.False(t, claims.HasScope("users:write"))
	require.True(t, claims.InRole("Editor"))
	require.False(t, claims.InRole("Admin"))
}

func TestPrincipalMirrorsClaims(t *testing.T) {
	claims := NewClaims(
		"dave",
		[]string{"users:read"},
		[]string{"Admin", "Editor"},
		"Dave Example",
		"dave@example.com",
		time.Hour,
		time.Now(),
	)

	p := claims.Principal()
	require.Equal(t, "dave", p.Username)
	require.Equal(t, "Dave Example", p.FullName)
	require.Equal(t, "dave@example.com", p.Email)
	require.Equal(t, claims.Scopes, p.Scopes)
	require.Equal(t, claims.Roles, p.Roles)

	require.True(t, p.HasScope("users:read"))
	require.False(t, p.HasScope("users:delete"))
	require.True(t, p.InRole("Admin"))
	require.False(t, p.InRole("Viewer"))
}
