// Package auth implements the session token codec and password hashing for
// the server. Tokens are HS256-signed JWTs carrying a minimal identity
// claim; validity is purely a function of signature and expiry, nothing is
// persisted server-side.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/songkeeper/internal/common"
)

// Identity is the minimal identity claim carried by a session token and, on
// successful verification, attached to the request.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Claims is the JWT claim set for session tokens. The user id travels in
// the registered Subject claim.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// Codec creates and parses signed session tokens. The signing secret is
// process-wide configuration injected once at construction; handlers never
// reach into the environment for it.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret []byte, ttl time.Duration) *Codec {
	return &Codec{secret: secret, ttl: ttl}
}

// TTL returns the configured token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue encodes the identity into a signed token with issued-at = now and
// expires-at = now + TTL.
func (c *Codec) Issue(identity Identity) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		Username: identity.Username,
	})
	return token.SignedString(c.secret)
}

// IssueExpiringAt is like Issue but with an explicit lifetime. Used by
// tests to produce already-expired tokens without a fake clock.
func (c *Codec) IssueExpiringAt(identity Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Username: identity.Username,
	})
	return token.SignedString(c.secret)
}

// Parse verifies the token and returns the identity it asserts. Failures
// map onto the taxonomy in internal/common:
//
//	common.ErrBadSignature  — signature does not verify (checked first;
//	                          a bad signature never reveals whether expiry
//	                          would also have failed)
//	common.ErrTokenExpired  — signature fine, exp in the past
//	common.ErrTokenMalformed — anything else
func (c *Codec) Parse(tokenString string) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, common.ErrBadSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		default:
			return nil, common.ErrTokenMalformed
		}
	}

	if !token.Valid || claims.Subject == "" {
		return nil, common.ErrTokenMalformed
	}

	return &Identity{ID: claims.Subject, Username: claims.Username}, nil
}
