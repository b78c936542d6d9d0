package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hallowedlibrary/backend/internal/server/users"
)

type signupRequest struct {
	Username             string `json:"username"`
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
}

// handleSignup creates an account. POST /api/users
func (s *Server) handleSignup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := s.users.Register(c.Request.Context(), users.RegisterInput{
		Username:             req.Username,
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "user created",
		"user":    toUserResponse(user),
	})
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// handleLogin verifies credentials and returns a bearer token plus the
// public profile. POST /api/login
func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, token, err := s.users.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"user":         toUserResponse(user),
	})
}

// handleProfile returns the resolved identity. GET /api/profile
func (s *Server) handleProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.writeUnauthenticated(c)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}
