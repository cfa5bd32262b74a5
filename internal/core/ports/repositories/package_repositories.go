package repositories

import (
	"context"

	"github.com/SscSPs/growth_storefront/internal/core/domain"
)

// PackageReader defines read operations for package data
type PackageReader interface {
	// FindPackageByID retrieves a specific package by its unique identifier.
	FindPackageByID(ctx context.Context, packageID string) (*domain.Package, error)

	// ListPackages retrieves all packages ordered by name. activeOnly hides deactivated packages.
	ListPackages(ctx context.Context, activeOnly bool) ([]domain.Package, error)
}

// PackageItemReader defines read operations for the items inside a package
type PackageItemReader interface {
	// ListItemsForPackage retrieves the items of a package joined with each product's unit price.
	ListItemsForPackage(ctx context.Context, packageID string) ([]domain.PackageItem, error)
}

// PackageWriter defines write operations for package data
type PackageWriter interface {
	// SavePackage persists a new package together with its initial items.
	SavePackage(ctx context.Context, pkg domain.Package, items []domain.PackageItem) error

	// UpdatePackage updates an existing package's details.
	UpdatePackage(ctx context.Context, pkg domain.Package) error

	// SavePackageItem adds a single item to an existing package.
	SavePackageItem(ctx context.Context, item domain.PackageItem) error
}

// PackageRepositoryFacade combines all package-related repository interfaces
type PackageRepositoryFacade interface {
	PackageReader
	PackageItemReader
	PackageWriter
}

// PackageRepositoryWithTx extends PackageRepositoryFacade with transaction capabilities
type PackageRepositoryWithTx interface {
	PackageRepositoryFacade
	TransactionManager
}
