package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/songkeeper/internal/common"
	"github.com/dmitrijs2005/songkeeper/internal/server/auth"
)

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type loginResponse struct {
	User userResponse `json:"user"`
	// Token is present only under the bearer transport; the cookie
	// transport delivers the credential as a Set-Cookie header instead.
	Token string `json:"token,omitempty"`
}

type statusResponse struct {
	IsAuthenticated bool          `json:"isAuthenticated"`
	User            *userResponse `json:"user"`
}

func (s *Server) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: username and password are required", common.ErrorValidation))
		return
	}

	user, err := s.users.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		s.logger.Warn(c.Request.Context(), "registration failed", "reason", err.Error())
		writeError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "user registered", "username", user.Username)
	c.JSON(http.StatusCreated, gin.H{"user": userResponse{ID: user.ID, Username: user.Username}})
}

func (s *Server) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: username and password are required", common.ErrorValidation))
		return
	}

	user, err := s.users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// The precise cause (unknown user vs. wrong password vs. store
		// fault) stays in the log; the response stays vague.
		s.logger.Warn(c.Request.Context(), "login failed", "username", req.Username, "reason", err.Error())
		writeError(c, err)
		return
	}

	token, err := s.codec.Issue(auth.Identity{ID: user.ID, Username: user.Username})
	if err != nil {
		s.logger.Error(c.Request.Context(), "token issue failed", "error", err)
		writeError(c, common.ErrorInternal)
		return
	}

	resp := loginResponse{User: userResponse{ID: user.ID, Username: user.Username}}
	resp.Token = s.transport.Attach(c.Writer, token)

	if s.csrf != nil {
		// A token fixed before this identity change must stop validating.
		if err := s.csrf.Rotate(c.Writer); err != nil {
			s.logger.Error(c.Request.Context(), "csrf rotation failed", "error", err)
			writeError(c, common.ErrorInternal)
			return
		}
	}

	s.logger.Info(c.Request.Context(), "login successful", "username", user.Username)
	c.JSON(http.StatusOK, resp)
}

func (s *Server) logout(c *gin.Context) {
	s.transport.Clear(c.Writer)

	if s.csrf != nil {
		if err := s.csrf.Rotate(c.Writer); err != nil {
			s.logger.Error(c.Request.Context(), "csrf rotation failed", "error", err)
			writeError(c, common.ErrorInternal)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "logout successful"})
}

// status reflects the gate's decision in soft mode: rejections become
// {isAuthenticated:false, user:null} with HTTP 200, never an error status.
// The client polls it on every page load to decide whether to show a login
// prompt.
func (s *Server) status(c *gin.Context) {
	identity, err := s.resolveIdentity(c)
	if err != nil {
		if !errors.Is(err, common.ErrNoToken) {
			s.logger.Warn(c.Request.Context(), "status check with unusable token", "reason", err.Error())
		}
		if s.isTokenRejection(err) {
			s.transport.Clear(c.Writer)
		}
		c.JSON(http.StatusOK, statusResponse{IsAuthenticated: false, User: nil})
		return
	}

	c.JSON(http.StatusOK, statusResponse{
		IsAuthenticated: true,
		User:            &userResponse{ID: identity.ID, Username: identity.Username},
	})
}

// csrfToken is the guard's issuance endpoint: always accessible without a
// session, token delivered in the response body only. Routed only under
// the cookie transport.
func (s *Server) csrfToken(c *gin.Context) {
	token, err := s.csrf.EnsureCookieSet(c.Writer, c.Request)
	if err != nil {
		s.logger.Error(c.Request.Context(), "csrf issuance failed", "error", err)
		writeError(c, common.ErrorInternal)
		return
	}
	c.JSON(http.StatusOK, gin.H{"csrfToken": token})
}
