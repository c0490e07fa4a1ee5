package http

import (
	"net/http"
	"strings"

	"jobdesk/internal/domain"

	"github.com/gin-gonic/gin"
)

const (
	userContextKey  = "user"
	tokenCookieName = "token"
)

// requireUser is the guard every protected route composes with: extract
// the credential, verify it, resolve the local user, attach it to the
// request context. Nothing downstream runs until all of that succeeds.
func (s *Server) requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			writeErrorCode(c, http.StatusUnauthorized, "MISSING_CREDENTIAL", "missing credentials")
			return
		}
		identity, err := s.verifier.Verify(c.Request.Context(), token)
		if err != nil {
			writeErrorCode(c, http.StatusUnauthorized, "INVALID_CREDENTIAL", "invalid or expired token")
			return
		}
		user, err := s.directory.Resolve(c.Request.Context(), identity)
		if err != nil {
			writeError(c, err)
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

// extractToken prefers the Authorization header, with or without the
// Bearer prefix, and falls back to the session cookie set by the login
// callback.
func extractToken(c *gin.Context) string {
	if value := strings.TrimSpace(c.GetHeader("Authorization")); value != "" {
		if strings.HasPrefix(strings.ToLower(value), "bearer ") {
			return strings.TrimSpace(value[len("bearer "):])
		}
		return value
	}
	if cookie, err := c.Cookie(tokenCookieName); err == nil {
		return strings.TrimSpace(cookie)
	}
	return ""
}

func userFromContext(c *gin.Context) (domain.User, bool) {
	raw, ok := c.Get(userContextKey)
	if !ok {
		writeErrorCode(c, http.StatusInternalServerError, "INTERNAL", "user missing from context")
		return domain.User{}, false
	}
	user, ok := raw.(domain.User)
	if !ok {
		writeErrorCode(c, http.StatusInternalServerError, "INTERNAL", "user invalid in context")
		return domain.User{}, false
	}
	return user, true
}
