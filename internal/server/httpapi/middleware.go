package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/songkeeper/internal/common"
	"github.com/dmitrijs2005/songkeeper/internal/server/auth"
	"github.com/dmitrijs2005/songkeeper/internal/server/session"
)

const identityKey = "auth_identity"

// IdentityFromContext returns the authenticated identity the gate attached
// to the request, if any.
func IdentityFromContext(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	identity, ok := v.(auth.Identity)
	return identity, ok
}

// resolveIdentity runs the gate's state machine for one request: extract
// the token via the active transport, parse it, and — under the bearer
// transport only — re-resolve the subject against the store to catch
// accounts deleted after token issuance.
func (s *Server) resolveIdentity(c *gin.Context) (*auth.Identity, error) {
	token, ok := s.transport.Extract(c.Request)
	if !ok {
		return nil, common.ErrNoToken
	}

	identity, err := s.codec.Parse(token)
	if err != nil {
		return nil, err
	}

	if s.transport.Name() == "bearer" {
		user, err := s.users.GetByID(c.Request.Context(), identity.ID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return nil, common.ErrUserGone
			}
			return nil, err
		}
		identity.Username = user.Username
	}

	return identity, nil
}

// requireAuth is the authorization gate in hard mode: a rejection
// terminates the request. The specific parse failure is logged here and
// collapsed into one client-visible reason by writeError.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := s.resolveIdentity(c)
		if err != nil {
			s.logger.Warn(c.Request.Context(), "request rejected", "reason", err.Error())
			if s.isTokenRejection(err) {
				// A stale or garbled cookie should not be resent forever.
				s.transport.Clear(c.Writer)
			}
			writeError(c, err)
			return
		}
		c.Set(identityKey, *identity)
		c.Next()
	}
}

// isTokenRejection reports whether err means the presented credential is
// unusable, as opposed to an infrastructure fault that should leave the
// client's state alone.
func (s *Server) isTokenRejection(err error) bool {
	return errors.Is(err, common.ErrTokenExpired) ||
		errors.Is(err, common.ErrTokenMalformed) ||
		errors.Is(err, common.ErrBadSignature) ||
		errors.Is(err, common.ErrUserGone)
}

// csrfMiddleware enforces the double-submit check on every mutating method.
// It runs before any business logic, independent of session validity.
func (s *Server) csrfMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if err := s.csrf.ValidateRequest(c.Request); err != nil {
			writeError(c, err)
			return
		}
		c.Next()
	}
}

// corsMiddleware allows credentialed requests from the single configured
// origin and answers preflights.
func (s *Server) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" && origin == s.cfg.AllowedOrigin {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+session.CSRFHeaderName)
			h.Set("Vary", "Origin")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
