// Package common defines shared constants and sentinel errors used across
// songkeeper components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound       = errors.New("not found")
	ErrorAlreadyExists  = errors.New("already exists")
	ErrStoreUnavailable = errors.New("store unavailable")

	// Service-level errors (generic/internal flow control).
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Credential verification. The same value covers both an unknown
	// username and a wrong password so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Session token lifecycle errors. The HTTP layer collapses all three
	// into a single client-visible reason; they stay distinct here so the
	// precise cause can be logged server-side.
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	ErrBadSignature   = errors.New("bad token signature")

	// Authorization gate errors.
	ErrNoToken  = errors.New("no token")
	ErrUserGone = errors.New("user no longer exists")

	// CSRF guard errors.
	ErrBadCSRFToken = errors.New("missing or invalid csrf token")
)
