package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kolsense/kolsense/internal/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func LoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		log.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		)
	}
}

// RateLimitMiddleware applies a process-wide token bucket sized from the
// per-minute budget. A non-positive budget disables limiting.
func RateLimitMiddleware(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	burst := perMinute / 10
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
			})
			return
		}
		c.Next()
	}
}
