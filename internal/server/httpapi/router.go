package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (s *Server) buildRouter() *gin.Engine {
	if s.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())
	r.Use(s.corsMiddleware())

	api := r.Group("/api")

	// The CSRF guard runs before the authorization gate on every mutating
	// route, pre-auth endpoints included: the two rejections are
	// independent and a CSRF failure must not reveal whether the session
	// was valid.
	if s.csrf != nil {
		api.Use(s.csrfMiddleware())
		api.GET("/csrf-token", s.csrfToken)
	}

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", s.register)
		authGroup.POST("/login", s.login)
		authGroup.POST("/logout", s.logout)
		authGroup.GET("/status", s.status)
	}

	songGroup := api.Group("/songs")
	{
		songGroup.GET("", s.listSongs)
		songGroup.GET("/:id", s.requireAuth(), s.getSong)
		songGroup.POST("", s.requireAuth(), s.createSong)
		songGroup.PUT("/:id", s.requireAuth(), s.updateSong)
		songGroup.DELETE("/:id", s.requireAuth(), s.deleteSong)
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, errorBody{codeNotFound, "route not found"})
			return
		}
		c.Status(http.StatusNotFound)
	})

	return r
}
