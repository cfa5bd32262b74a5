package services

import (
	"context"

	"github.com/SscSPs/growth_storefront/internal/core/domain"
	"github.com/SscSPs/growth_storefront/internal/dto"
)

// CatalogReaderSvc defines read operations for packages and products
type CatalogReaderSvc interface {
	// ListPackages retrieves packages; activeOnly hides deactivated ones.
	ListPackages(ctx context.Context, activeOnly bool) ([]domain.Package, error)

	// GetPackage retrieves a package by ID.
	GetPackage(ctx context.Context, packageID string) (*domain.Package, error)

	// ListPackageItems retrieves the items of a package.
	ListPackageItems(ctx context.Context, packageID string) ([]domain.PackageItem, error)

	// ListProducts retrieves every product.
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// CatalogWriterSvc defines admin write operations for packages and products
type CatalogWriterSvc interface {
	// CreatePackage creates a package along with its initial items.
	CreatePackage(ctx context.Context, req dto.CreatePackageRequest, adminID string) (*domain.Package, error)

	// UpdatePackage applies a partial update to a package.
	UpdatePackage(ctx context.Context, packageID string, req dto.UpdatePackageRequest, adminID string) (*domain.Package, error)

	// AddPackageItem adds a product line to a package.
	AddPackageItem(ctx context.Context, packageID string, req dto.AddPackageItemRequest, adminID string) (*domain.PackageItem, error)

	// CreateProduct creates a product.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, adminID string) (*domain.Product, error)
}

// CatalogSvcFacade combines all catalog-related service interfaces
type CatalogSvcFacade interface {
	CatalogReaderSvc
	CatalogWriterSvc
}
