package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/nextx/admin-api/pkg/jwtx"
	"github.com/nextx/admin-api/pkg/slogx"
)

// Policy declares what an endpoint requires of its caller. Scopes are
// conjunctive: the token must carry every one. Roles are disjunctive: the
// token must carry at least one, unless the set is empty, in which case any
// authenticated principal with the right scopes passes.
type Policy struct {
	Scopes []string
	Roles  []string
}

var (
	// ErrUnauthenticated covers the missing, malformed, expired and
	// wrong-domain token cases. The caller cannot tell which one occurred.
	ErrUnauthenticated = errors.New("httpx: could not validate credentials")

	// ErrForbidden marks a valid principal with insufficient authority.
	ErrForbidden = errors.New("httpx: forbidden")

	ErrMissingScope = fmt.Errorf("%w: not enough permissions", ErrForbidden)
	ErrMissingRole  = fmt.Errorf("%w: not allowed user role", ErrForbidden)
)

// Authorize runs the per-request access decision: extract the bearer token,
// decode it under the access domain, check the policy's scopes, then its
// roles. On success it returns the principal rebuilt from the token's
// claims; the identity store is never consulted.
func Authorize(codec *jwtx.Codec, r *http.Request, policy Policy) (jwtx.Principal, error) {
	authz := r.Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		return jwtx.Principal{}, ErrUnauthenticated
	}
	raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

	claims, err := codec.Decode(raw)
	if err != nil {
		return jwtx.Principal{}, ErrUnauthenticated
	}

	for _, scope := range policy.Scopes {
		if !claims.HasScope(scope) {
			return jwtx.Principal{}, ErrMissingScope
		}
	}

	if len(policy.Roles) > 0 {
		matched := false
		for _, role := range policy.Roles {
			if claims.InRole(role) {
				matched = true
				break
			}
		}
		if !matched {
			return jwtx.Principal{}, ErrMissingRole
		}
	}

	return claims.Principal(), nil
}

// Guard wraps a handler with the policy decision. Rejections are written as
// 401 with a WWW-Authenticate challenge; insufficient scope or role keeps
// the 401 status, only the message changes.
func Guard(codec *jwtx.Codec, policy Policy) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			principal, err := Authorize(codec, r, policy)
			if err != nil {
				writeGuardError(w, policy, err)
				if errors.Is(err, ErrForbidden) {
					slogx.FromContext(ctx).Warn("request forbidden",
						"path", r.URL.Path, "err", err)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithPrincipal(ctx, principal)))
		})
	}
}

func writeGuardError(w http.ResponseWriter, policy Policy, err error) {
	w.Header().Set("WWW-Authenticate", challenge(policy))

	message := "Could not validate credentials"
	switch {
	case errors.Is(err, ErrMissingScope):
		message = "Not enough permissions"
	case errors.Is(err, ErrMissingRole):
		message = "Not allowed user role"
	}

	WriteEnvelope(w, http.StatusUnauthorized, nil, message)
}

// challenge builds the RFC 6750 bearer challenge, naming the required scopes
// when the endpoint declares any.
func challenge(policy Policy) string {
	if len(policy.Scopes) == 0 {
		return "Bearer"
	}
	return `Bearer scope="` + strings.Join(policy.Scopes, " ") + `"`
}
