package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/growth_storefront/internal/core/ports/services"
	"github.com/SscSPs/growth_storefront/internal/dto"
	"github.com/SscSPs/growth_storefront/internal/middleware"
	"github.com/SscSPs/growth_storefront/internal/utils"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/convert", h.convertCurrency)
	}
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Retrieves every currency the storefront can display prices in, base currency first
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	currencies := h.currencyService.ListCurrencies(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// convertCurrency godoc
// @Summary Convert an amount between currencies
// @Description Converts amount from one supported currency into another. An unknown source is treated as the base currency.
// @Tags currencies
// @Produce  json
// @Param   amount query number true "Amount to convert"
// @Param   from query string true "Source currency code"
// @Param   to query string true "Target currency code"
// @Success 200 {object} dto.ConvertCurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input or unsupported target currency"
// @Router /currencies/convert [get]
func (h *currencyHandler) convertCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ConvertCurrencyParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ConvertCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	params.From = strings.ToUpper(params.From)
	params.To = strings.ToUpper(params.To)

	converted, target, err := h.currencyService.Convert(c.Request.Context(), params.Amount, params.From, params.To)
	if err != nil {
		respondWithError(c, logger, err, "Failed to convert currency")
		return
	}

	locale := utils.LocaleFromAcceptLanguage(c.GetHeader("Accept-Language"))
	c.JSON(http.StatusOK, dto.ConvertCurrencyResponse{
		Amount:    params.Amount,
		From:      params.From,
		To:        dto.ToCurrencyResponse(target),
		Converted: converted,
		Formatted: utils.FormatMoney(converted, target, locale),
	})
}
