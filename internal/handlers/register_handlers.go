package handlers

import (
	"net/http"

	"github.com/SscSPs/growth_storefront/cmd/docs"
	portssvc "github.com/SscSPs/growth_storefront/internal/core/ports/services"
	"github.com/SscSPs/growth_storefront/internal/middleware"
	"github.com/SscSPs/growth_storefront/internal/platform/config"
	"github.com/SscSPs/growth_storefront/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// rateLimiter may be nil to disable rate limiting.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	registerValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	setupAPIV1Routes(r, cfg, services, rateLimiter)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1")
	if rateLimiter != nil {
		v1.Use(middleware.RateLimit(rateLimiter))
	}

	// Storefront routes are anonymous; the visitor cookie only scopes preferences.
	storefront := v1.Group("", middleware.VisitorSessionMiddleware(cfg.VisitorCookieName, cfg.IsProduction))
	registerCurrencyRoutes(storefront, services.Currency)
	registerPreferenceRoutes(storefront, services.CurrencyPreference)
	registerPackageRoutes(storefront, services.Storefront, services.CurrencyPreference)

	admin := v1.Group("/admin")
	registerAuthRoutes(admin, services.AdminAuth)
	registerAdminRoutes(admin.Group("", middleware.AuthMiddleware(cfg.JWTSecret)), services.Catalog)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
