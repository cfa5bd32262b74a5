package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/growth_storefront/internal/core/ports/services"
	"github.com/SscSPs/growth_storefront/internal/dto"
	"github.com/SscSPs/growth_storefront/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler handles catalog management for authenticated admins.
type adminHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func registerAdminRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := &adminHandler{catalogService: catalogService}

	packages := rg.Group("/packages")
	{
		packages.GET("", h.listPackages)
		packages.POST("", h.createPackage)
		packages.PUT("/:packageID", h.updatePackage)
		packages.GET("/:packageID/items", h.listPackageItems)
		packages.POST("/:packageID/items", h.addPackageItem)
	}

	products := rg.Group("/products")
	{
		products.GET("", h.listProducts)
		products.POST("", h.createProduct)
	}
}

// adminID returns the authenticated admin or aborts with 401.
func adminID(c *gin.Context, logger *slog.Logger) (string, bool) {
	id, ok := middleware.GetAdminIDFromContext(c)
	if !ok {
		logger.Error("Admin ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
	return id, ok
}

// listPackages godoc
// @Summary List all packages
// @Description Lists every package including inactive ones, without pricing
// @Tags admin
// @Produce  json
// @Success 200 {array} dto.AdminPackageResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list packages"
// @Security BearerAuth
// @Router /admin/packages [get]
func (h *adminHandler) listPackages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	pkgs, err := h.catalogService.ListPackages(c.Request.Context(), false)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list packages")
		return
	}

	res := make([]dto.AdminPackageResponse, len(pkgs))
	for i := range pkgs {
		res[i] = dto.ToAdminPackageResponse(&pkgs[i])
	}
	c.JSON(http.StatusOK, res)
}

// createPackage godoc
// @Summary Create a package
// @Description Creates a package with optional stored price, discount and initial items
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   package body dto.CreatePackageRequest true "Package details"
// @Success 201 {object} dto.AdminPackageResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create package"
// @Security BearerAuth
// @Router /admin/packages [post]
func (h *adminHandler) createPackage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePackage", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creator, ok := adminID(c, logger)
	if !ok {
		return
	}

	pkg, err := h.catalogService.CreatePackage(c.Request.Context(), req, creator)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create package")
		return
	}

	logger.Info("Package created successfully", slog.String("package_id", pkg.PackageID))
	c.JSON(http.StatusCreated, dto.ToAdminPackageResponse(pkg))
}

// updatePackage godoc
// @Summary Update a package
// @Description Applies a partial update. clearPrice reverts the package to item-based pricing.
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   packageID path string true "Package ID"
// @Param   package body dto.UpdatePackageRequest true "Fields to update"
// @Success 200 {object} dto.AdminPackageResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Package not found"
// @Failure 500 {object} map[string]string "Failed to update package"
// @Security BearerAuth
// @Router /admin/packages/{packageID} [put]
func (h *adminHandler) updatePackage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	packageID := c.Param("packageID")
	var req dto.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePackage", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updater, ok := adminID(c, logger)
	if !ok {
		return
	}

	pkg, err := h.catalogService.UpdatePackage(c.Request.Context(), packageID, req, updater)
	if err != nil {
		respondWithError(c, logger.With(slog.String("package_id", packageID)), err, "Failed to update package")
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminPackageResponse(pkg))
}

// listPackageItems godoc
// @Summary List package items
// @Tags admin
// @Produce  json
// @Param   packageID path string true "Package ID"
// @Success 200 {array} dto.PackageItemResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Package not found"
// @Security BearerAuth
// @Router /admin/packages/{packageID}/items [get]
func (h *adminHandler) listPackageItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	packageID := c.Param("packageID")

	items, err := h.catalogService.ListPackageItems(c.Request.Context(), packageID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("package_id", packageID)), err, "Failed to list package items")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPackageItemResponse(items))
}

// addPackageItem godoc
// @Summary Add an item to a package
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   packageID path string true "Package ID"
// @Param   item body dto.AddPackageItemRequest true "Product and quantity"
// @Success 201 {object} dto.PackageItemResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown product"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Package not found"
// @Failure 500 {object} map[string]string "Failed to add item"
// @Security BearerAuth
// @Router /admin/packages/{packageID}/items [post]
func (h *adminHandler) addPackageItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	packageID := c.Param("packageID")
	var req dto.AddPackageItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddPackageItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creator, ok := adminID(c, logger)
	if !ok {
		return
	}

	item, err := h.catalogService.AddPackageItem(c.Request.Context(), packageID, req, creator)
	if err != nil {
		respondWithError(c, logger.With(slog.String("package_id", packageID)), err, "Failed to add item")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPackageItemResponse(*item))
}

// listProducts godoc
// @Summary List products
// @Tags admin
// @Produce  json
// @Success 200 {array} dto.ProductResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list products"
// @Security BearerAuth
// @Router /admin/products [get]
func (h *adminHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	products, err := h.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, dto.ToListProductResponse(products))
}

// createProduct godoc
// @Summary Create a product
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Product already exists"
// @Failure 500 {object} map[string]string "Failed to create product"
// @Security BearerAuth
// @Router /admin/products [post]
func (h *adminHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creator, ok := adminID(c, logger)
	if !ok {
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), req, creator)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}
