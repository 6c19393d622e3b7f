package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/songkeeper/internal/common"
	"github.com/dmitrijs2005/songkeeper/internal/server/songs"
)

type songRequest struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	Words    string `json:"words"`
	Category string `json:"category"`
	Typology string `json:"typology"`
	Tone     string `json:"tone"`
}

func (r *songRequest) toModel() *songs.Song {
	return &songs.Song{
		Title:    r.Title,
		Author:   r.Author,
		Words:    r.Words,
		Category: r.Category,
		Typology: r.Typology,
		Tone:     r.Tone,
	}
}

func (s *Server) listSongs(c *gin.Context) {
	result, err := s.songs.List(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "listing songs failed", "error", err)
		writeError(c, err)
		return
	}
	if result == nil {
		result = []*songs.Song{}
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) getSong(c *gin.Context) {
	song, err := s.songs.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, song)
}

func (s *Server) createSong(c *gin.Context) {
	var req songRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: invalid request body", common.ErrorValidation))
		return
	}

	created, err := s.songs.Create(c.Request.Context(), req.toModel())
	if err != nil {
		writeError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "song created", "id", created.ID, "title", created.Title)
	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateSong(c *gin.Context) {
	var req songRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: invalid request body", common.ErrorValidation))
		return
	}

	song := req.toModel()
	song.ID = c.Param("id")

	updated, err := s.songs.Update(c.Request.Context(), song)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteSong(c *gin.Context) {
	deleted, err := s.songs.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, deleted)
}
