package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/foliocms/foliocms/internal/models"
)

const userKey = "user"

// TokenVerifier validates a bearer token and returns the subject id.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// UserLookup resolves a subject id to a user record.
type UserLookup interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// RequireAuth guards mutation routes: extract bearer token, verify it,
// resolve the subject to a user. Every failure mode answers the same way
// so callers learn nothing beyond "credentials rejected".
func RequireAuth(ver TokenVerifier, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		reject := func() {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
		}

		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			reject()
			return
		}
		sub, err := ver.VerifyToken(parts[1])
		if err != nil {
			reject()
			return
		}
		u, err := users.GetByID(c.Request.Context(), sub)
		if err != nil || u == nil {
			reject()
			return
		}

		c.Set(userKey, u)
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by RequireAuth, or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}
