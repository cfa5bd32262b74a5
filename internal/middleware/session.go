package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const visitorCookieMaxAge = 365 * 24 * time.Hour

// VisitorSessionMiddleware identifies anonymous visitors by a long-lived cookie, issuing a new
// UUID when the cookie is missing or malformed. The id scopes stored preferences only.
func VisitorSessionMiddleware(cookieName string, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		visitorID, err := c.Cookie(cookieName)
		if err == nil {
			_, err = uuid.Parse(visitorID)
		}
		if err != nil {
			visitorID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, visitorID, int(visitorCookieMaxAge.Seconds()), "/", "", secure, true)
		}

		c.Set(string(visitorIDKey), visitorID)
		ctx := context.WithValue(c.Request.Context(), visitorIDKey, visitorID)
		ctx = WithLogger(ctx, GetLoggerFromCtx(ctx).With(slog.String("visitor_id", visitorID)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
