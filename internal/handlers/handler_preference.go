package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/growth_storefront/internal/core/ports/services"
	"github.com/SscSPs/growth_storefront/internal/dto"
	"github.com/SscSPs/growth_storefront/internal/middleware"
	"github.com/gin-gonic/gin"
)

// preferenceHandler serves the visitor's display currency preference.
type preferenceHandler struct {
	preferenceService portssvc.CurrencyPreferenceSvc
}

func registerPreferenceRoutes(rg *gin.RouterGroup, preferenceService portssvc.CurrencyPreferenceSvc) {
	h := &preferenceHandler{preferenceService: preferenceService}

	prefs := rg.Group("/preferences")
	{
		prefs.GET("/currency", h.getCurrencyPreference)
		prefs.PUT("/currency", h.updateCurrencyPreference)
	}
}

// getCurrencyPreference godoc
// @Summary Get the visitor's display currency
// @Description Returns the remembered currency for this visitor, or the base currency
// @Tags preferences
// @Produce  json
// @Success 200 {object} dto.CurrencyResponse
// @Router /preferences/currency [get]
func (h *preferenceHandler) getCurrencyPreference(c *gin.Context) {
	visitorID, _ := middleware.GetVisitorIDFromContext(c)
	curr := h.preferenceService.Load(c.Request.Context(), visitorID)
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(curr))
}

// updateCurrencyPreference godoc
// @Summary Change the visitor's display currency
// @Description Validates the currency code and remembers it for this visitor
// @Tags preferences
// @Accept  json
// @Produce  json
// @Param   preference body dto.UpdateCurrencyPreferenceRequest true "Currency selection"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Unsupported currency"
// @Failure 500 {object} map[string]string "Failed to save preference"
// @Router /preferences/currency [put]
func (h *preferenceHandler) updateCurrencyPreference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateCurrencyPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCurrencyPreference", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	visitorID, ok := middleware.GetVisitorIDFromContext(c)
	if !ok {
		logger.Error("Visitor ID not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Visitor session unavailable"})
		return
	}

	curr, err := h.preferenceService.ChangeCurrency(c.Request.Context(), visitorID, req.CurrencyCode)
	if err != nil {
		respondWithError(c, logger, err, "Failed to save currency preference")
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(curr))
}
