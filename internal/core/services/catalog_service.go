package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/growth_storefront/internal/apperrors"
	"github.com/SscSPs/growth_storefront/internal/core/domain"
	portsrepo "github.com/SscSPs/growth_storefront/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/growth_storefront/internal/core/ports/services"
	"github.com/SscSPs/growth_storefront/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// catalogService manages packages and products on behalf of admins.
type catalogService struct {
	BaseService
	packageRepo portsrepo.PackageRepositoryFacade
	productRepo portsrepo.ProductRepositoryFacade
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(packageRepo portsrepo.PackageRepositoryFacade, productRepo portsrepo.ProductRepositoryFacade) portssvc.CatalogSvcFacade {
	return &catalogService{
		packageRepo: packageRepo,
		productRepo: productRepo,
	}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

func (s *catalogService) ListPackages(ctx context.Context, activeOnly bool) ([]domain.Package, error) {
	pkgs, err := s.packageRepo.ListPackages(ctx, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list packages")
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	return pkgs, nil
}

func (s *catalogService) GetPackage(ctx context.Context, packageID string) (*domain.Package, error) {
	pkg, err := s.packageRepo.FindPackageByID(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get package %s: %w", packageID, err)
	}
	return pkg, nil
}

func (s *catalogService) ListPackageItems(ctx context.Context, packageID string) ([]domain.PackageItem, error) {
	if _, err := s.GetPackage(ctx, packageID); err != nil {
		return nil, err
	}
	items, err := s.packageRepo.ListItemsForPackage(ctx, packageID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list package items", slog.String("package_id", packageID))
		return nil, fmt.Errorf("failed to list items for package %s: %w", packageID, err)
	}
	return items, nil
}

func (s *catalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *catalogService) CreatePackage(ctx context.Context, req dto.CreatePackageRequest, adminID string) (*domain.Package, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("package name is required")
	}
	if err := validateStoredPrice(req.Price); err != nil {
		return nil, err
	}
	if err := validateDiscount(req.DiscountPercentage); err != nil {
		return nil, err
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     adminID,
		LastUpdatedAt: now,
		LastUpdatedBy: adminID,
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	pkg := domain.Package{
		PackageID:          uuid.NewString(),
		Name:               name,
		Description:        req.Description,
		StoredPrice:        req.Price,
		DiscountPercentage: req.DiscountPercentage,
		IsActive:           isActive,
		AuditFields:        audit,
	}

	items := make([]domain.PackageItem, 0, len(req.Items))
	for _, in := range req.Items {
		item, err := s.newPackageItem(ctx, pkg.PackageID, in.ProductID, in.Quantity, audit)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := s.packageRepo.SavePackage(ctx, pkg, items); err != nil {
		s.LogError(ctx, err, "Failed to save package", slog.String("name", name))
		return nil, fmt.Errorf("failed to create package: %w", err)
	}

	s.LogInfo(ctx, "Package created",
		slog.String("package_id", pkg.PackageID),
		slog.Int("items", len(items)))
	return &pkg, nil
}

func (s *catalogService) UpdatePackage(ctx context.Context, packageID string, req dto.UpdatePackageRequest, adminID string) (*domain.Package, error) {
	pkg, err := s.GetPackage(ctx, packageID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("package name cannot be empty")
		}
		pkg.Name = name
	}
	if req.Description != nil {
		pkg.Description = *req.Description
	}
	if req.ClearPrice {
		pkg.StoredPrice = nil
	} else if req.Price != nil {
		if err := validateStoredPrice(req.Price); err != nil {
			return nil, err
		}
		pkg.StoredPrice = req.Price
	}
	if req.DiscountPercentage != nil {
		if err := validateDiscount(req.DiscountPercentage); err != nil {
			return nil, err
		}
		pkg.DiscountPercentage = req.DiscountPercentage
	}
	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
	}

	pkg.LastUpdatedAt = time.Now()
	pkg.LastUpdatedBy = adminID

	if err := s.packageRepo.UpdatePackage(ctx, *pkg); err != nil {
		s.LogError(ctx, err, "Failed to update package", slog.String("package_id", packageID))
		return nil, fmt.Errorf("failed to update package %s: %w", packageID, err)
	}
	return pkg, nil
}

func (s *catalogService) AddPackageItem(ctx context.Context, packageID string, req dto.AddPackageItemRequest, adminID string) (*domain.PackageItem, error) {
	if _, err := s.GetPackage(ctx, packageID); err != nil {
		return nil, err
	}

	now := time.Now()
	item, err := s.newPackageItem(ctx, packageID, req.ProductID, req.Quantity, domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     adminID,
		LastUpdatedAt: now,
		LastUpdatedBy: adminID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.packageRepo.SavePackageItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save package item",
			slog.String("package_id", packageID),
			slog.String("product_id", req.ProductID))
		return nil, fmt.Errorf("failed to add item to package %s: %w", packageID, err)
	}
	return &item, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, adminID string) (*domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("product name is required")
	}
	if !req.UnitPrice.IsPositive() {
		return nil, apperrors.NewValidationError("unit price must be greater than zero")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	product := domain.Product{
		ProductID:   uuid.NewString(),
		Name:        name,
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
		IsActive:    isActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     adminID,
			LastUpdatedAt: now,
			LastUpdatedBy: adminID,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product", slog.String("name", name))
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

// newPackageItem validates a product line and snapshots the product's name and unit price.
func (s *catalogService) newPackageItem(ctx context.Context, packageID, productID string, quantity int, audit domain.AuditFields) (domain.PackageItem, error) {
	if quantity < 1 {
		return domain.PackageItem{}, apperrors.NewValidationError("quantity must be at least 1")
	}
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.PackageItem{}, apperrors.NewValidationError("product " + productID + " does not exist")
		}
		return domain.PackageItem{}, fmt.Errorf("failed to look up product %s: %w", productID, err)
	}
	return domain.PackageItem{
		PackageItemID: uuid.NewString(),
		PackageID:     packageID,
		ProductID:     product.ProductID,
		ProductName:   product.Name,
		Quantity:      quantity,
		UnitPrice:     product.UnitPrice,
		AuditFields:   audit,
	}, nil
}

func validateStoredPrice(price *decimal.Decimal) error {
	if price != nil && !price.IsPositive() {
		return apperrors.NewValidationError("price must be greater than zero")
	}
	return nil
}

func validateDiscount(pct *decimal.Decimal) error {
	if pct != nil && (pct.IsNegative() || pct.GreaterThan(hundred)) {
		return apperrors.NewValidationError("discount percentage must be between 0 and 100")
	}
	return nil
}
