package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hallowedlibrary/backend/internal/common"
	"github.com/hallowedlibrary/backend/internal/server/favorites"
	"github.com/hallowedlibrary/backend/internal/server/users"
)

type userResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *users.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		Bio:       u.Bio,
		ImageURL:  u.ImageURL,
		CreatedAt: u.CreatedAt,
	}
}

type favoriteResponse struct {
	VolumeID  string   `json:"volumeId"`
	Title     string   `json:"title"`
	Miniature string   `json:"miniature"`
	Authors   []string `json:"authors"`
}

func toFavoriteResponse(f *favorites.Favorite) favoriteResponse {
	authors := f.Authors
	if authors == nil {
		authors = []string{}
	}
	return favoriteResponse{
		VolumeID:  f.VolumeID,
		Title:     f.Title,
		Miniature: f.Miniature,
		Authors:   authors,
	}
}

// writeError maps service errors onto status codes with a single-field
// body. Unanticipated errors are logged with full detail and the caller
// only sees an opaque message.
func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrAlreadyExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrUnauthorized), errors.Is(err, common.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, common.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		s.logger.Error(c.Request.Context(), "request failed",
			"error", err.Error(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(requestIDKey))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (s *Server) writeUnauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
}
