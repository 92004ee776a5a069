package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gentle-app/gentle-api/internal/config"
	"github.com/gentle-app/gentle-api/internal/modules/serializer"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenVerifier validates one bearer token; auth.Verifier satisfies it.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (uuid.UUID, error)
}

// userIDKey is the gin context key holding the authenticated user id.
const userIDKey = "user_id"

// UserID extracts the authenticated identity set by UserAuth.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// UserAuth authenticates requests with a bearer token. When
// cfg.Auth.DevBypassUserID is set (local development only, explicit
// opt-in) verification is skipped and that fixed identity is used.
func UserAuth(cfg *config.Config, verifier TokenVerifier, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.Auth.DevBypassUserID != "" {
			id, err := uuid.Parse(cfg.Auth.DevBypassUserID)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
				return
			}
			c.Set(userIDKey, id)
			c.Next()
			return
		}

		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		userID, err := verifier.Verify(c.Request.Context(), raw)
		if err != nil {
			log.Sugar().Debugw("token verification failed", "err", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}
