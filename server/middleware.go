package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// rateLimit answers 429 once the process-wide limiter is exhausted.
func (s *Server) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.limiter != nil && !s.limiter.Allow() {
			s.metrics.limited.Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

// logRequests logs every request at Debug, server errors at Error.
func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		t0 := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", status,
			"elapsed", time.Since(t0),
		}
		if status >= http.StatusInternalServerError {
			s.cfg.Logger.Error("request failed", attrs...)
			return
		}
		s.cfg.Logger.Debug("request served", attrs...)
	}
}
