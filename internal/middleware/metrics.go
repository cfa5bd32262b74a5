package middleware

import (
	"github.com/SscSPs/growth_storefront/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request counts and latency by matched route.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		done := metrics.RequestStarted(c.Request.Method)
		c.Next()
		done(c.FullPath(), c.Writer.Status())
	}
}
