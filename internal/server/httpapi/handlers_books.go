package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hallowedlibrary/backend/internal/server/books"
)

// handleBookSearch proxies a catalog search. Public endpoint.
// GET /api/books/search?q=...|title=...&author=...|isbn=...
func (s *Server) handleBookSearch(c *gin.Context) {
	query := books.BuildQuery(
		c.Query("q"),
		c.Query("title"),
		c.Query("author"),
		c.Query("isbn"),
	)

	startIndex, _ := strconv.Atoi(c.DefaultQuery("startIndex", "0"))
	maxResults, _ := strconv.Atoi(c.DefaultQuery("maxResults", "20"))

	result, err := s.catalog.Search(c.Request.Context(), query, startIndex, maxResults)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// handleBookByID proxies a single volume lookup. Public endpoint.
// GET /api/books/{id}
func (s *Server) handleBookByID(c *gin.Context) {
	book, err := s.catalog.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}
