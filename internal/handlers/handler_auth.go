package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/growth_storefront/internal/core/ports/services"
	"github.com/SscSPs/growth_storefront/internal/dto"
	"github.com/SscSPs/growth_storefront/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles admin sign-in.
type authHandler struct {
	authenticator portssvc.AdminAuthenticatorSvc
}

func registerAuthRoutes(rg *gin.RouterGroup, authenticator portssvc.AdminAuthenticatorSvc) {
	h := &authHandler{authenticator: authenticator}
	rg.POST("/login", h.login)
}

// login godoc
// @Summary Admin login
// @Description Verifies admin credentials and returns a bearer token for the admin API
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   credentials body dto.LoginRequest true "Admin credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Failed to sign in"
// @Router /admin/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	token, expiresAt, err := h.authenticator.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(c, logger, err, "Failed to sign in")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt})
}
