package session

import (
	"net/http"
	"time"
)

// CookieName is the session cookie. httpOnly, so script-accessible storage
// never touches the credential.
const CookieName = "session_token"

// CookieTransport is the cookie strategy: the browser stores and forwards
// the token automatically, and the server enforces the cookie's security
// attributes.
type CookieTransport struct {
	secure bool
	maxAge int
}

// NewCookieTransport builds the cookie strategy. secure should be true in
// production; maxAge is the cookie lifetime and should match the token TTL.
func NewCookieTransport(secure bool, maxAge time.Duration) *CookieTransport {
	return &CookieTransport{secure: secure, maxAge: int(maxAge.Seconds())}
}

func (t *CookieTransport) Name() string { return "cookie" }

// Extract reads the token from the cookie jar only, never from a header.
func (t *CookieTransport) Extract(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func (t *CookieTransport) Attach(w http.ResponseWriter, token string) string {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   t.maxAge,
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: http.SameSiteStrictMode,
	})
	return ""
}

// Clear overwrites the cookie with an empty value and an expiry in the
// past, so a stale or garbled cookie is not resent indefinitely.
func (t *CookieTransport) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: http.SameSiteStrictMode,
	})
}
