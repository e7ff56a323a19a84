package middlewares

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request with the authenticated user id
// when the auth middleware has run.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if userID := c.GetUint("userID"); userID != 0 {
			attrs = append(attrs, "user_id", userID)
		}

		if c.Writer.Status() >= 500 {
			slog.Error("http request", attrs...)
		} else {
			slog.Info("http request", attrs...)
		}
	}
}
