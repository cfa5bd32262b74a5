package mapping

import (
	"github.com/SscSPs/growth_storefront/internal/core/domain"
	"github.com/SscSPs/growth_storefront/internal/models"
	"github.com/shopspring/decimal"
)

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func fromNullDecimal(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := n.Decimal
	return &d
}

// ToModelPackage converts a domain Package to a model Package
func ToModelPackage(d domain.Package) models.Package {
	return models.Package{
		PackageID:          d.PackageID,
		Name:               d.Name,
		Description:        d.Description,
		Price:              toNullDecimal(d.StoredPrice),
		DiscountPercentage: toNullDecimal(d.DiscountPercentage),
		IsActive:           d.IsActive,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPackage converts a model Package to a domain Package
func ToDomainPackage(m models.Package) domain.Package {
	return domain.Package{
		PackageID:          m.PackageID,
		Name:               m.Name,
		Description:        m.Description,
		StoredPrice:        fromNullDecimal(m.Price),
		DiscountPercentage: fromNullDecimal(m.DiscountPercentage),
		IsActive:           m.IsActive,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPackageSlice converts a slice of model Packages to a slice of domain Packages
func ToDomainPackageSlice(ms []models.Package) []domain.Package {
	ds := make([]domain.Package, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPackage(m)
	}
	return ds
}

// ToModelPackageItem converts a domain PackageItem to a model PackageItem
func ToModelPackageItem(d domain.PackageItem) models.PackageItem {
	return models.PackageItem{
		PackageItemID: d.PackageItemID,
		PackageID:     d.PackageID,
		ProductID:     d.ProductID,
		ProductName:   d.ProductName,
		Quantity:      d.Quantity,
		UnitPrice:     d.UnitPrice,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPackageItem converts a model PackageItem to a domain PackageItem
func ToDomainPackageItem(m models.PackageItem) domain.PackageItem {
	return domain.PackageItem{
		PackageItemID: m.PackageItemID,
		PackageID:     m.PackageID,
		ProductID:     m.ProductID,
		ProductName:   m.ProductName,
		Quantity:      m.Quantity,
		UnitPrice:     m.UnitPrice,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPackageItemSlice converts a slice of model PackageItems to domain PackageItems
func ToDomainPackageItemSlice(ms []models.PackageItem) []domain.PackageItem {
	ds := make([]domain.PackageItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPackageItem(m)
	}
	return ds
}
