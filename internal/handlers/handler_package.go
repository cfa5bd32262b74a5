package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/growth_storefront/internal/apperrors"
	"github.com/SscSPs/growth_storefront/internal/core/domain"
	portssvc "github.com/SscSPs/growth_storefront/internal/core/ports/services"
	"github.com/SscSPs/growth_storefront/internal/dto"
	"github.com/SscSPs/growth_storefront/internal/middleware"
	"github.com/SscSPs/growth_storefront/internal/utils"
	"github.com/gin-gonic/gin"
)

// packageHandler serves the customer-facing package catalog.
type packageHandler struct {
	storefrontService portssvc.StorefrontSvc
	preferenceService portssvc.CurrencyPreferenceSvc
}

func registerPackageRoutes(rg *gin.RouterGroup, storefrontService portssvc.StorefrontSvc, preferenceService portssvc.CurrencyPreferenceSvc) {
	h := &packageHandler{
		storefrontService: storefrontService,
		preferenceService: preferenceService,
	}

	packages := rg.Group("/packages")
	{
		packages.GET("", h.listPackages)
		packages.GET("/:packageID", h.getPackage)
	}
	rg.GET("/service-types", h.listServiceTypes)
}

// displayCurrency picks the explicit ?currency= code when given, else the visitor preference.
func (h *packageHandler) displayCurrency(c *gin.Context, code string) (domain.Currency, error) {
	if code != "" {
		curr, ok := domain.LookupCurrency(strings.ToUpper(code))
		if !ok {
			return domain.Currency{}, apperrors.NewValidationError("unsupported currency code " + code)
		}
		return curr, nil
	}
	visitorID, _ := middleware.GetVisitorIDFromContext(c)
	return h.preferenceService.Load(c.Request.Context(), visitorID), nil
}

// listPackages godoc
// @Summary List storefront packages
// @Description Lists active packages with prices converted into the requested or preferred currency
// @Tags packages
// @Produce  json
// @Param   currency query string false "Display currency code; defaults to the visitor preference"
// @Param   serviceType query string false "Only packages of this service type"
// @Success 200 {object} dto.ListPackagesResponse
// @Failure 400 {object} map[string]string "Unsupported currency"
// @Failure 500 {object} map[string]string "Failed to list packages"
// @Router /packages [get]
func (h *packageHandler) listPackages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPackagesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListPackages", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	curr, err := h.displayCurrency(c, params.Currency)
	if err != nil {
		respondWithError(c, logger, err, "Failed to resolve currency")
		return
	}

	ctx := utils.WithLocale(c.Request.Context(), utils.LocaleFromAcceptLanguage(c.GetHeader("Accept-Language")))
	resp, err := h.storefrontService.ListOffers(ctx, curr, params.ServiceType)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list packages")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getPackage godoc
// @Summary Get a storefront package
// @Description Returns one active package with its items and converted price
// @Tags packages
// @Produce  json
// @Param   packageID path string true "Package ID"
// @Param   currency query string false "Display currency code; defaults to the visitor preference"
// @Success 200 {object} dto.PackageResponse
// @Failure 400 {object} map[string]string "Unsupported currency"
// @Failure 404 {object} map[string]string "Package not found"
// @Failure 500 {object} map[string]string "Failed to get package"
// @Router /packages/{packageID} [get]
func (h *packageHandler) getPackage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	packageID := c.Param("packageID")

	var params dto.GetPackageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	curr, err := h.displayCurrency(c, params.Currency)
	if err != nil {
		respondWithError(c, logger, err, "Failed to resolve currency")
		return
	}

	ctx := utils.WithLocale(c.Request.Context(), utils.LocaleFromAcceptLanguage(c.GetHeader("Accept-Language")))
	offer, err := h.storefrontService.GetOffer(ctx, packageID, curr)
	if err != nil {
		respondWithError(c, logger.With(slog.String("package_id", packageID)), err, "Failed to get package")
		return
	}

	c.JSON(http.StatusOK, offer)
}

// listServiceTypes godoc
// @Summary List service types
// @Description Derives the service categories present in the active catalog
// @Tags packages
// @Produce  json
// @Success 200 {object} dto.ServiceTypesResponse
// @Failure 500 {object} map[string]string "Failed to list service types"
// @Router /service-types [get]
func (h *packageHandler) listServiceTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	types, err := h.storefrontService.ListServiceTypes(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list service types")
		return
	}
	c.JSON(http.StatusOK, dto.ServiceTypesResponse{ServiceTypes: types})
}
