package httpserver

import (
	"net/http"
	"strconv"

	identitysvc "shopfront/internal/service/identity"
	"github.com/gin-gonic/gin"
)

type sessionResponse struct {
	Token     string `json:"token"`
	SessionID string `json:"sessionId"`
	ExpiresIn int    `json:"expiresIn"`
}

// issueSessionHandler mints a session token for cart and checkout calls.
// An upstream auth layer may assert the caller's identity via the
// X-User-ID header; auth itself lives outside this service, so the
// header is trusted as-is.
func issueSessionHandler(identity *identitysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var userID *int64
		if raw := c.GetHeader("X-User-ID"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid X-User-ID header"})
				return
			}
			userID = &id
		}

		token, sess, err := identity.Issue(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue session"})
			return
		}

		c.JSON(http.StatusCreated, sessionResponse{
			Token:     token,
			SessionID: sess.SessionID,
			ExpiresIn: identity.TTLSeconds(),
		})
	}
}
