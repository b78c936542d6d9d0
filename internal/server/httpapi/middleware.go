package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hallowedlibrary/backend/internal/server/users"
)

const (
	principalKey  = "httpapi.principal"
	requestIDKey  = "httpapi.request_id"
	bearerPrefix  = "Bearer "
	requestIDName = "X-Request-ID"
)

// requestID tags every request with an id for log correlation.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDName, id)
		c.Next()
	}
}

// authenticate is the per-request identity gate. It is fail-open: a
// missing, malformed, invalid, or expired token leaves the request
// unauthenticated and processing continues — handlers that need an
// identity reject on their own. Preflight OPTIONS requests are skipped
// entirely. Only the per-request context is mutated.
func (s *Server) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.Next()
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))

		userID, err := s.tokens.Verify(token)
		if err != nil {
			s.logger.Debug(c.Request.Context(), "rejected bearer token",
				"reason", err.Error(), "path", c.Request.URL.Path)
			c.Next()
			return
		}

		user, err := s.users.GetByID(c.Request.Context(), userID)
		if err != nil {
			// Valid token for an account that no longer exists.
			s.logger.Debug(c.Request.Context(), "token subject not found",
				"user_id", userID, "path", c.Request.URL.Path)
			c.Next()
			return
		}

		c.Set(principalKey, user)
		c.Next()
	}
}

// currentUser returns the principal resolved by the gate, if any.
func currentUser(c *gin.Context) (*users.User, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*users.User)
	return user, ok
}
