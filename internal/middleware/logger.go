package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/joborbit/backend/internal/pkg/logger"
)

// Logger logs one structured line per request. Liveness probes are skipped.
func Logger() gin.HandlerFunc {
	skip := map[string]bool{"/": true}

	return func(c *gin.Context) {
		if skip[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		fields := logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
			"request_id": c.GetString(requestIDKey),
		}
		if query := c.Request.URL.RawQuery; query != "" {
			fields["query"] = query
		}
		if email := c.GetString("email"); email != "" {
			fields["user"] = email
		}

		entry := logger.Log.WithFields(fields)
		switch {
		case c.Writer.Status() >= 500:
			entry.Error("request failed")
		case c.Writer.Status() >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request completed")
		}
	}
}
