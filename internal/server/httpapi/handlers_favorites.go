package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hallowedlibrary/backend/internal/server/favorites"
)

// handleListFavorites returns the caller's library, most recent first.
// GET /api/me/library
func (s *Server) handleListFavorites(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.writeUnauthenticated(c)
		return
	}

	list, err := s.favorites.List(c.Request.Context(), user.ID)
	if err != nil {
		s.writeError(c, err)
		return
	}

	result := make([]favoriteResponse, 0, len(list))
	for _, fav := range list {
		result = append(result, toFavoriteResponse(fav))
	}
	c.JSON(http.StatusOK, result)
}

type addFavoriteRequest struct {
	VolumeID  string   `json:"volumeId"`
	Title     string   `json:"title"`
	Miniature string   `json:"miniature"`
	Authors   []string `json:"authors"`
}

// handleAddFavorite registers a volume in the caller's library. The call
// succeeds whether the record is new or already existed.
// POST /api/me/library
func (s *Server) handleAddFavorite(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.writeUnauthenticated(c)
		return
	}

	var req addFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	fav, err := s.favorites.Add(c.Request.Context(), user.ID, favorites.AddInput{
		VolumeID:  req.VolumeID,
		Title:     req.Title,
		Miniature: req.Miniature,
		Authors:   req.Authors,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toFavoriteResponse(fav))
}

// handleRemoveFavorite deletes the pair; removing an absent pair is fine.
// DELETE /api/me/library/{volumeId}
func (s *Server) handleRemoveFavorite(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.writeUnauthenticated(c)
		return
	}

	if err := s.favorites.Remove(c.Request.Context(), user.ID, c.Param("volumeId")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
