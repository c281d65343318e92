package httpserver

import (
	"net/http"
	"strings"

	identitysvc "shopfront/internal/service/identity"
	"github.com/gin-gonic/gin"
)

const sessionContextKey = "shopfront.session"

// sessionAuth resolves the Authorization bearer token to a session and
// stores it on the request context. Requests without a valid token are
// rejected; clients obtain a token from POST /session first.
func sessionAuth(identity *identitysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		sess, err := identity.Resolve(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

func sessionFromContext(c *gin.Context) identitysvc.Session {
	v, _ := c.Get(sessionContextKey)
	sess, _ := v.(identitysvc.Session)
	return sess
}
