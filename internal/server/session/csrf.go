package session

import (
	"bytes"
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gorilla/securecookie"

	"github.com/dmitrijs2005/songkeeper/internal/common"
)

const (
	// CSRFHeaderName is the custom header the client must echo the token on
	// for every mutating request.
	CSRFHeaderName = "X-CSRF-Token"

	// CSRFCookieName holds the per-client secret. httpOnly and distinct
	// from the session cookie, so knowing the session token alone is never
	// enough to pass the guard.
	CSRFCookieName = "_csrf_secret"

	csrfTokenLength = 32
)

var errNoCSRFCookie = errors.New("no csrf cookie")

// CSRFGuard implements the double-submit pattern: a random secret lives in
// an httpOnly cookie encoded with securecookie, and the derived token is
// handed to the client once through the issuance endpoint. A mutating
// request passes iff the echoed header token matches the secret cookie
// attached to that same request.
type CSRFGuard struct {
	sc     *securecookie.SecureCookie
	secure bool
}

// NewCSRFGuard builds the guard. authKey keys the cookie HMAC and should be
// derived from the process secret.
func NewCSRFGuard(authKey []byte, secure bool) *CSRFGuard {
	sc := securecookie.New(authKey, nil)
	sc.SetSerializer(securecookie.JSONEncoder{})
	// The secret has no explicit expiry; it is rotated on login/logout.
	sc.MaxAge(0)

	return &CSRFGuard{sc: sc, secure: secure}
}

// tokenFromCookie returns the secret stored in the cookie, or
// errNoCSRFCookie if the request carries none. A cookie that exists but
// fails to decode is reported as its decode error.
func (g *CSRFGuard) tokenFromCookie(r *http.Request) ([]byte, error) {
	cookie, err := r.Cookie(CSRFCookieName)
	if err != nil {
		return nil, errNoCSRFCookie
	}

	var token []byte
	if err := g.sc.Decode(CSRFCookieName, cookie.Value, &token); err != nil {
		return nil, err
	}
	if len(token) != csrfTokenLength {
		return nil, errors.New("unexpected csrf token length")
	}

	return token, nil
}

func (g *CSRFGuard) setNewCookie(w http.ResponseWriter, token []byte) error {
	encoded, err := g.sc.Encode(CSRFCookieName, token)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CSRFCookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   g.secure,
		SameSite: http.SameSiteStrictMode,
	})
	return nil
}

// EnsureCookieSet sets a CSRF secret cookie on the response if the request
// does not already carry a valid one, and returns the current token
// (base64-encoded) for the response body. The issuance endpoint is the only
// place the token crosses to the client.
func (g *CSRFGuard) EnsureCookieSet(w http.ResponseWriter, r *http.Request) (string, error) {
	token, err := g.tokenFromCookie(r)
	if err != nil {
		token, err = common.GenerateRandByteArray(csrfTokenLength)
		if err != nil {
			return "", err
		}
		if err := g.setNewCookie(w, token); err != nil {
			return "", err
		}
	}
	return base64.StdEncoding.EncodeToString(token), nil
}

// Rotate unconditionally replaces the secret cookie. Called after a
// successful login or logout so a token fixed before the identity change
// stops validating; the client refetches the new token from the issuance
// endpoint.
func (g *CSRFGuard) Rotate(w http.ResponseWriter) error {
	token, err := common.GenerateRandByteArray(csrfTokenLength)
	if err != nil {
		return err
	}
	return g.setNewCookie(w, token)
}

// ValidateRequest checks the echoed header token against the secret cookie
// currently attached to the request. Any failure collapses to
// common.ErrBadCSRFToken; the guard never reveals whether the session
// itself was valid.
func (g *CSRFGuard) ValidateRequest(r *http.Request) error {
	echoed := r.Header.Get(CSRFHeaderName)
	if echoed == "" {
		return common.ErrBadCSRFToken
	}
	decoded, err := base64.StdEncoding.DecodeString(echoed)
	if err != nil {
		return common.ErrBadCSRFToken
	}
	token, err := g.tokenFromCookie(r)
	if err != nil {
		return common.ErrBadCSRFToken
	}
	if !bytes.Equal(token, decoded) {
		return common.ErrBadCSRFToken
	}
	return nil
}
