// Package httpapi exposes the JSON API: signup/login, the protected
// profile, the catalog proxy, and the per-user favorites library.
package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hallowedlibrary/backend/internal/logging"
	"github.com/hallowedlibrary/backend/internal/server/auth"
	"github.com/hallowedlibrary/backend/internal/server/books"
	"github.com/hallowedlibrary/backend/internal/server/favorites"
	"github.com/hallowedlibrary/backend/internal/server/users"
)

type Server struct {
	router    *gin.Engine
	logger    logging.Logger
	users     *users.Service
	favorites *favorites.Service
	catalog   *books.Client
	tokens    *auth.TokenService
}

// NewServer wires the router, CORS, and the authentication gate around the
// route handlers. allowedOrigins feeds the CORS middleware; preflight
// OPTIONS requests are answered there and never reach the gate.
func NewServer(
	logger logging.Logger,
	userSvc *users.Service,
	favoriteSvc *favorites.Service,
	catalog *books.Client,
	tokens *auth.TokenService,
	allowedOrigins []string,
) *Server {
	s := &Server{
		logger:    logger,
		users:     userSvc,
		favorites: favoriteSvc,
		catalog:   catalog,
		tokens:    tokens,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestID())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = allowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.Use(s.authenticate())

	api := router.Group("/api")
	{
		api.POST("/users", s.handleSignup)
		api.POST("/login", s.handleLogin)
		api.GET("/profile", s.handleProfile)

		api.GET("/books/search", s.handleBookSearch)
		api.GET("/books/:id", s.handleBookByID)

		library := api.Group("/me/library")
		{
			library.GET("", s.handleListFavorites)
			library.POST("", s.handleAddFavorite)
			library.DELETE("/:volumeId", s.handleRemoveFavorite)
		}
	}

	s.router = router
	return s
}

// Handler returns the root http.Handler for the API.
func (s *Server) Handler() http.Handler {
	return s.router
}
