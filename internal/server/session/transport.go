// Package session owns how the session credential moves between client and
// server (cookie vs. bearer header) and the CSRF double-submit guard that
// protects the cookie strategy. Exactly one Transport is constructed at
// startup; strategies are never mixed per request.
package session

import (
	"net/http"
	"strings"
)

// Transport moves the session token between client and server.
type Transport interface {
	// Name identifies the strategy ("cookie" or "bearer").
	Name() string

	// Extract pulls the token off an inbound request. ok is false when the
	// request carries no credential for this strategy.
	Extract(r *http.Request) (token string, ok bool)

	// Attach binds a freshly issued token to the login response. The cookie
	// transport sets the session cookie and returns ""; the bearer
	// transport returns the token so the handler can place it in the
	// response body (the client stores it itself).
	Attach(w http.ResponseWriter, token string) string

	// Clear invalidates the credential client-side. For cookies this
	// overwrites with an empty value and an expiry in the past; for bearer
	// it is a no-op, the token simply ages out.
	Clear(w http.ResponseWriter)
}

const bearerPrefix = "Bearer "

// BearerTransport is the header strategy: the client keeps the token itself
// and presents it via "Authorization: Bearer <token>". Immune to CSRF by
// construction, so the guard is inert under this transport.
type BearerTransport struct{}

func NewBearerTransport() *BearerTransport {
	return &BearerTransport{}
}

func (t *BearerTransport) Name() string { return "bearer" }

func (t *BearerTransport) Extract(r *http.Request) (string, bool) {
	value := r.Header.Get("Authorization")
	if !strings.HasPrefix(value, bearerPrefix) {
		return "", false
	}
	token := value[len(bearerPrefix):]
	if token == "" {
		return "", false
	}
	return token, true
}

func (t *BearerTransport) Attach(_ http.ResponseWriter, token string) string {
	return token
}

func (t *BearerTransport) Clear(http.ResponseWriter) {}
