package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oncabito/sentinela/internal/shared/logger"
)

// Logger logs every HTTP request with latency and status.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if operator := c.GetString(ContextKeyOperator); operator != "" {
			args = append(args, "operator", operator)
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Errorw("HTTP request completed", args...)
		case status >= 400:
			log.Warnw("HTTP request completed", args...)
		default:
			log.Debugw("HTTP request completed", args...)
		}
	}
}
