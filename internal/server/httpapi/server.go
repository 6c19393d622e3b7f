// Package httpapi exposes the server over HTTP: route wiring, the
// authorization gate middleware, the CSRF guard hook-up, and the JSON
// handlers for auth and song endpoints.
package httpapi

import (
	"context"
	"crypto/sha256"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/songkeeper/internal/logging"
	"github.com/dmitrijs2005/songkeeper/internal/server/auth"
	"github.com/dmitrijs2005/songkeeper/internal/server/config"
	"github.com/dmitrijs2005/songkeeper/internal/server/session"
	"github.com/dmitrijs2005/songkeeper/internal/server/songs"
	"github.com/dmitrijs2005/songkeeper/internal/server/users"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	cfg       *config.Config
	logger    logging.Logger
	codec     *auth.Codec
	transport session.Transport
	csrf      *session.CSRFGuard // nil under the bearer transport
	users     *users.Service
	songs     *songs.Service
	router    *gin.Engine
}

// NewServer wires the HTTP layer. The session transport is chosen here,
// once, from config; the CSRF guard exists only for the cookie strategy
// (bearer credentials are immune to CSRF by construction).
func NewServer(cfg *config.Config, l logging.Logger, us *users.Service, ss *songs.Service) *Server {
	s := &Server{
		cfg:    cfg,
		logger: l.With("module", "http_server"),
		codec:  auth.NewCodec([]byte(cfg.SecretKey), cfg.TokenValidityDuration),
		users:  us,
		songs:  ss,
	}

	switch cfg.SessionTransport {
	case config.TransportBearer:
		s.transport = session.NewBearerTransport()
	default:
		s.transport = session.NewCookieTransport(cfg.IsProduction(), cfg.TokenValidityDuration)
		csrfKey := sha256.Sum256([]byte(cfg.SecretKey + "/csrf"))
		s.csrf = session.NewCSRFGuard(csrfKey[:], cfg.IsProduction())
	}

	s.router = s.buildRouter()
	return s
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.EndpointAddr,
		Handler: s.router,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server",
		"address", s.cfg.EndpointAddr, "transport", s.transport.Name())

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
