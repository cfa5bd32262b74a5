package domain

import (
	"github.com/shopspring/decimal"
)

// Package represents a sellable bundle of growth services (e.g., "YouTube Starter").
type Package struct {
	PackageID          string           `json:"packageID"` // Primary Key (UUID)
	Name               string           `json:"name"`
	Description        string           `json:"description"`
	StoredPrice        *decimal.Decimal `json:"storedPrice"`        // Nullable, base currency
	DiscountPercentage *decimal.Decimal `json:"discountPercentage"` // Nullable, 0-100
	IsActive           bool             `json:"isActive"`
	AuditFields
}

// HasStoredPrice reports whether the package carries its own price.
// A zero stored price counts as absent.
func (p Package) HasStoredPrice() bool {
	return p.StoredPrice != nil && !p.StoredPrice.IsZero()
}

// PackageItem is one product line inside a package, joined with the product's unit price.
type PackageItem struct {
	PackageItemID string          `json:"packageItemID"`
	PackageID     string          `json:"packageID"` // FK -> product_packages.package_id
	ProductID     string          `json:"productID"` // FK -> products.product_id
	ProductName   string          `json:"productName"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	AuditFields
}

// LineTotal is quantity times unit price.
func (i PackageItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// PackagePrice is the resolved base-currency price of a package.
// Priced is false when neither a stored price nor any items were available.
type PackagePrice struct {
	PackageID       string          `json:"packageID"`
	Price           decimal.Decimal `json:"price"`
	DiscountedPrice decimal.Decimal `json:"discountedPrice"`
	Priced          bool            `json:"priced"`
}

// Product is a single purchasable service (e.g., "1000 YouTube views").
type Product struct {
	ProductID   string          `json:"productID"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"` // base currency
	IsActive    bool            `json:"isActive"`
	AuditFields
}
