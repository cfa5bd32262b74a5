package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const (
	// adminIDKey holds the authenticated admin's email.
	adminIDKey = contextKey("adminID")
	// visitorIDKey holds the anonymous visitor session id.
	visitorIDKey = contextKey("visitorID")
)

// GetAdminIDFromContext retrieves the authenticated admin ID from the Gin context.
// It returns the admin ID and a boolean indicating if it was found.
func GetAdminIDFromContext(c *gin.Context) (string, bool) {
	return stringFromContext(c, adminIDKey)
}

// GetVisitorIDFromContext retrieves the visitor session ID set by VisitorSessionMiddleware.
func GetVisitorIDFromContext(c *gin.Context) (string, bool) {
	return stringFromContext(c, visitorIDKey)
}

// VisitorIDFromCtx is GetVisitorIDFromContext for code that only has a standard context.
func VisitorIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(visitorIDKey).(string)
	return id, ok && id != ""
}

func stringFromContext(c *gin.Context, key contextKey) (string, bool) {
	if val, exists := c.Get(string(key)); exists {
		s, ok := val.(string)
		return s, ok && s != ""
	}
	// check in the request context as well
	s, ok := c.Request.Context().Value(key).(string)
	return s, ok && s != ""
}
