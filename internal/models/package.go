package models

import (
	"github.com/shopspring/decimal"
)

// Package is a row of product_packages.
type Package struct {
	PackageID          string              `db:"package_id"`
	Name               string              `db:"name"`
	Description        string              `db:"description"`
	Price              decimal.NullDecimal `db:"price"`               // Nullable
	DiscountPercentage decimal.NullDecimal `db:"discount_percentage"` // Nullable
	IsActive           bool                `db:"is_active"`
	AuditFields
}

// PackageItem is a row of product_package_items joined with its product.
type PackageItem struct {
	PackageItemID string          `db:"package_item_id"`
	PackageID     string          `db:"package_id"`
	ProductID     string          `db:"product_id"`
	ProductName   string          `db:"product_name"` // products.name
	Quantity      int             `db:"quantity"`
	UnitPrice     decimal.Decimal `db:"unit_price"` // products.unit_price
	AuditFields
}
