package services

import (
	"context"

	"github.com/SscSPs/growth_storefront/internal/core/domain"
	"github.com/SscSPs/growth_storefront/internal/dto"
)

// PricingSvc resolves base-currency package prices. Neither method returns an error:
// failures degrade to an unpriced package.
type PricingSvc interface {
	// ResolvePrice computes the price and discounted price of a single package.
	ResolvePrice(ctx context.Context, pkg domain.Package) domain.PackagePrice

	// ResolvePrices resolves every package concurrently and returns results in input order.
	ResolvePrices(ctx context.Context, pkgs []domain.Package) []domain.PackagePrice
}

// StorefrontSvc assembles customer-facing package listings in a display currency.
type StorefrontSvc interface {
	// ListOffers lists active packages priced in currency. serviceType filters when non-empty.
	ListOffers(ctx context.Context, currency domain.Currency, serviceType string) (*dto.ListPackagesResponse, error)

	// GetOffer returns one active package with its items, priced in currency.
	GetOffer(ctx context.Context, packageID string, currency domain.Currency) (*dto.PackageResponse, error)

	// ListServiceTypes derives the service categories of the active catalog.
	ListServiceTypes(ctx context.Context) ([]string, error)
}
