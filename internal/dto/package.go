package dto

import (
	"time"

	"github.com/SscSPs/growth_storefront/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PackageItemInput is one product line of a new package.
type PackageItemInput struct {
	ProductID string `json:"productID" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// CreatePackageRequest defines the data needed to create a new package.
// Price is optional; without it the package is priced from its items.
type CreatePackageRequest struct {
	Name               string             `json:"name" binding:"required"`
	Description        string             `json:"description"`
	Price              *decimal.Decimal   `json:"price"`
	DiscountPercentage *decimal.Decimal   `json:"discountPercentage"`
	IsActive           *bool              `json:"isActive"` // defaults to true
	Items              []PackageItemInput `json:"items" binding:"dive"`
}

// UpdatePackageRequest defines the data allowed for updating a package.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdatePackageRequest struct {
	Name               *string          `json:"name"`
	Description        *string          `json:"description"`
	Price              *decimal.Decimal `json:"price"`
	ClearPrice         bool             `json:"clearPrice"` // price from items again
	DiscountPercentage *decimal.Decimal `json:"discountPercentage"`
	IsActive           *bool            `json:"isActive"`
}

// AddPackageItemRequest adds a product line to an existing package.
type AddPackageItemRequest struct {
	ProductID string `json:"productID" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// ListPackagesParams defines query parameters for the storefront listing.
type ListPackagesParams struct {
	Currency    string `form:"currency"`
	ServiceType string `form:"serviceType"`
}

// GetPackageParams defines query parameters for a single storefront package.
type GetPackageParams struct {
	Currency string `form:"currency"`
}

// PackageItemResponse defines the data returned for a package item.
type PackageItemResponse struct {
	PackageItemID string          `json:"packageItemID"`
	ProductID     string          `json:"productID"`
	ProductName   string          `json:"productName"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
}

// PackageResponse is a package as shown on the storefront.
// Price and DiscountedPrice are in the base currency; Display* fields are converted.
type PackageResponse struct {
	PackageID                string                `json:"packageID"`
	Name                     string                `json:"name"`
	Description              string                `json:"description"`
	ServiceType              string                `json:"serviceType"`
	DiscountPercentage       *decimal.Decimal      `json:"discountPercentage,omitempty"`
	Priced                   bool                  `json:"priced"`
	Price                    decimal.Decimal       `json:"price"`
	DiscountedPrice          decimal.Decimal       `json:"discountedPrice"`
	Currency                 CurrencyResponse      `json:"currency"`
	DisplayPrice             float64               `json:"displayPrice"`
	DisplayDiscountedPrice   float64               `json:"displayDiscountedPrice"`
	FormattedPrice           string                `json:"formattedPrice"`
	FormattedDiscountedPrice string                `json:"formattedDiscountedPrice"`
	Items                    []PackageItemResponse `json:"items,omitempty"`
}

// ListPackagesResponse wraps the storefront package listing.
type ListPackagesResponse struct {
	Packages     []PackageResponse `json:"packages"`
	ServiceTypes []string          `json:"serviceTypes"`
	Currency     CurrencyResponse  `json:"currency"`
}

// ServiceTypesResponse wraps the derived service categories.
type ServiceTypesResponse struct {
	ServiceTypes []string `json:"serviceTypes"`
}

// AdminPackageResponse defines the data returned to admins for a package.
type AdminPackageResponse struct {
	PackageID          string           `json:"packageID"`
	Name               string           `json:"name"`
	Description        string           `json:"description"`
	StoredPrice        *decimal.Decimal `json:"storedPrice"`
	DiscountPercentage *decimal.Decimal `json:"discountPercentage"`
	IsActive           bool             `json:"isActive"`
	CreatedAt          time.Time        `json:"createdAt"`
	CreatedBy          string           `json:"createdBy"`
	LastUpdatedAt      time.Time        `json:"lastUpdatedAt"`
	LastUpdatedBy      string           `json:"lastUpdatedBy"`
}

// ToPackageItemResponse converts a domain.PackageItem to PackageItemResponse DTO
func ToPackageItemResponse(item domain.PackageItem) PackageItemResponse {
	return PackageItemResponse{
		PackageItemID: item.PackageItemID,
		ProductID:     item.ProductID,
		ProductName:   item.ProductName,
		Quantity:      item.Quantity,
		UnitPrice:     item.UnitPrice,
	}
}

// ToListPackageItemResponse converts a slice of domain.PackageItem to DTOs
func ToListPackageItemResponse(items []domain.PackageItem) []PackageItemResponse {
	res := make([]PackageItemResponse, len(items))
	for i, item := range items {
		res[i] = ToPackageItemResponse(item)
	}
	return res
}

// ToAdminPackageResponse converts a domain.Package to AdminPackageResponse DTO
func ToAdminPackageResponse(pkg *domain.Package) AdminPackageResponse {
	return AdminPackageResponse{
		PackageID:          pkg.PackageID,
		Name:               pkg.Name,
		Description:        pkg.Description,
		StoredPrice:        pkg.StoredPrice,
		DiscountPercentage: pkg.DiscountPercentage,
		IsActive:           pkg.IsActive,
		CreatedAt:          pkg.CreatedAt,
		CreatedBy:          pkg.CreatedBy,
		LastUpdatedAt:      pkg.LastUpdatedAt,
		LastUpdatedBy:      pkg.LastUpdatedBy,
	}
}
