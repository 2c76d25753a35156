package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"carteira/internal/logger"
	"carteira/internal/uuid"
)

const requestIDKey = "requestID"

// RequestLogging logs each request with a request ID, the authenticated
// user when there is one, method, path, status, latency and client IP.
// An incoming X-Request-ID is kept when it is a valid UUID.
func RequestLogging() gin.HandlerFunc {
	log := logger.Named("http")
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if !uuid.IsValid(requestID) {
			requestID = uuid.New()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		fields := []interface{}{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if userID := c.GetString(UserIDKey); userID != "" {
			fields = append(fields, "user_id", userID)
		}
		log.Infow("request", fields...)
	}
}
