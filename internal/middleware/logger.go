package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ZapLogger returns a middleware that logs HTTP requests using zap.
// API paths (/v1/*) log at info level, everything else at debug.
func ZapLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		dur := time.Since(start)

		path := c.Request.URL.Path
		isAPIPath := strings.HasPrefix(path, "/v1/")

		if isAPIPath {
			log.Sugar().Infow("HTTP",
				"method", c.Request.Method,
				"path", path,
				"status", c.Writer.Status(),
				"latency", dur.String(),
				"clientIP", c.ClientIP(),
			)
		} else {
			log.Sugar().Debugw("HTTP",
				"method", c.Request.Method,
				"path", path,
				"status", c.Writer.Status(),
				"latency", dur.String(),
				"clientIP", c.ClientIP(),
			)
		}
	}
}
