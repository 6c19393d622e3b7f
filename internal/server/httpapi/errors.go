package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/songkeeper/internal/common"
)

// Machine-checkable reason codes returned to clients. Stable; user-visible
// messages may change, codes may not.
const (
	codeInvalidCredentials = "invalid_credentials"
	codeDuplicateUser      = "duplicate_user"
	codeValidationError    = "validation_error"
	codeNoToken            = "no_token"
	codeTokenInvalid       = "token_invalid"
	codeUserGone           = "user_gone"
	codeBadCSRFToken       = "bad_csrf_token"
	codeStoreUnavailable   = "store_unavailable"
	codeNotFound           = "not_found"
	codeInternalError      = "internal_error"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps a service error onto an HTTP status and a structured JSON
// body. The three token-parse failures collapse into the single
// token_invalid reason here; the precise cause is only ever logged
// server-side.
func writeError(c *gin.Context, err error) {
	status, body := http.StatusInternalServerError, errorBody{
		Code:    codeInternalError,
		Message: "internal server error",
	}

	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		status = http.StatusBadRequest
		body = errorBody{codeInvalidCredentials, "invalid username or password"}
	case errors.Is(err, common.ErrorAlreadyExists):
		status = http.StatusBadRequest
		body = errorBody{codeDuplicateUser, "user already exists"}
	case errors.Is(err, common.ErrorValidation):
		status = http.StatusBadRequest
		body = errorBody{codeValidationError, err.Error()}
	case errors.Is(err, common.ErrNoToken):
		status = http.StatusUnauthorized
		body = errorBody{codeNoToken, "not authorized, no token"}
	case errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrTokenMalformed),
		errors.Is(err, common.ErrBadSignature):
		status = http.StatusUnauthorized
		body = errorBody{codeTokenInvalid, "not authorized, token failed"}
	case errors.Is(err, common.ErrUserGone):
		status = http.StatusUnauthorized
		body = errorBody{codeUserGone, "not authorized, user not found"}
	case errors.Is(err, common.ErrBadCSRFToken):
		status = http.StatusForbidden
		body = errorBody{codeBadCSRFToken, "missing or invalid csrf token"}
	case errors.Is(err, common.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
		body = errorBody{codeStoreUnavailable, "storage temporarily unavailable"}
	case errors.Is(err, common.ErrorNotFound):
		status = http.StatusNotFound
		body = errorBody{codeNotFound, "not found"}
	}

	c.AbortWithStatusJSON(status, body)
}
