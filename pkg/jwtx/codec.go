package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the only decode error this package surfaces. Signature
// mismatch, malformed structure, expiry, and wrong-domain tokens are all
// deliberately indistinguishable to the caller.
var ErrInvalidToken = errors.New("jwtx: invalid token")

// Codec signs and verifies tokens for one domain. Encode and decode are pure
// CPU operations with no shared mutable state, safe for concurrent use.
type Codec struct {
	kind   Kind
	secret []byte
	parser *jwt.Parser
}

// NewCodec returns a codec bound to one signing domain. The secret must not
// be shared between domains.
func NewCodec(kind Kind, secret []byte) *Codec {
	return &Codec{
		kind:   kind,
		secret: secret,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

// Kind returns the codec's signing domain.
func (c *Codec) Kind() Kind { return c.kind }

// Encode stamps the claims with the codec's domain and signs them with
// HMAC-SHA256 under the domain secret.
func (c *Codec) Encode(claims Claims) (string, error) {
	claims.Kind = c.kind
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Decode verifies signature and expiry and returns the embedded claims.
// Expiry comparison is wall-clock UTC at second granularity, matching
// issuance. Every failure mode maps to ErrInvalidToken.
func (c *Codec) Decode(tokenString string) (Claims, error) {
	var claims Claims
	token, err := c.parser.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	// A token signed with this domain's secret but carrying another kind
	// would mean the domains share a secret. Reject it regardless.
	if claims.Kind != c.kind {
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}
