package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/growth_storefront/internal/apperrors"
	"github.com/SscSPs/growth_storefront/internal/core/domain"
	portsrepo "github.com/SscSPs/growth_storefront/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/growth_storefront/internal/core/ports/services"
	"github.com/SscSPs/growth_storefront/internal/dto"
	"github.com/SscSPs/growth_storefront/internal/utils"
)

type storefrontService struct {
	BaseService
	packageRepo portsrepo.PackageRepositoryFacade
	pricing     portssvc.PricingSvc
}

// NewStorefrontService creates the customer-facing listing service.
func NewStorefrontService(packageRepo portsrepo.PackageRepositoryFacade, pricing portssvc.PricingSvc) portssvc.StorefrontSvc {
	return &storefrontService{
		packageRepo: packageRepo,
		pricing:     pricing,
	}
}

var _ portssvc.StorefrontSvc = (*storefrontService)(nil)

func (s *storefrontService) ListOffers(ctx context.Context, currency domain.Currency, serviceType string) (*dto.ListPackagesResponse, error) {
	pkgs, err := s.packageRepo.ListPackages(ctx, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to list packages")
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	// Service types always come from the unfiltered catalog so the filter UI stays stable.
	serviceTypes := domain.DeriveServiceTypes(pkgs)

	if serviceType != "" {
		filtered := make([]domain.Package, 0, len(pkgs))
		for _, p := range pkgs {
			if strings.EqualFold(domain.ServiceTypeOf(p), serviceType) {
				filtered = append(filtered, p)
			}
		}
		pkgs = filtered
	}

	prices := s.pricing.ResolvePrices(ctx, pkgs)

	offers := make([]dto.PackageResponse, len(pkgs))
	for i, p := range pkgs {
		offers[i] = s.toOffer(ctx, p, prices[i], currency)
	}

	s.LogDebug(ctx, "Listed offers",
		slog.Int("count", len(offers)),
		slog.String("currency", currency.Code),
		slog.String("service_type", serviceType))

	return &dto.ListPackagesResponse{
		Packages:     offers,
		ServiceTypes: serviceTypes,
		Currency:     dto.ToCurrencyResponse(currency),
	}, nil
}

func (s *storefrontService) GetOffer(ctx context.Context, packageID string, currency domain.Currency) (*dto.PackageResponse, error) {
	pkg, err := s.packageRepo.FindPackageByID(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get package %s: %w", packageID, err)
	}
	if !pkg.IsActive {
		return nil, apperrors.NewNotFoundError("package " + packageID + " not found")
	}

	items, err := s.packageRepo.ListItemsForPackage(ctx, packageID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list package items", slog.String("package_id", packageID))
		return nil, fmt.Errorf("failed to list items for package %s: %w", packageID, err)
	}

	offer := s.toOffer(ctx, *pkg, s.pricing.ResolvePrice(ctx, *pkg), currency)
	offer.Items = dto.ToListPackageItemResponse(items)
	return &offer, nil
}

func (s *storefrontService) ListServiceTypes(ctx context.Context) ([]string, error) {
	pkgs, err := s.packageRepo.ListPackages(ctx, true)
	if err != nil {
		s.LogError(ctx, err, "Failed to list packages for service types")
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	return domain.DeriveServiceTypes(pkgs), nil
}

// toOffer converts base-currency prices into the display currency.
func (s *storefrontService) toOffer(ctx context.Context, pkg domain.Package, price domain.PackagePrice, currency domain.Currency) dto.PackageResponse {
	locale := utils.LocaleFromCtx(ctx)
	display := domain.Convert(price.Price.InexactFloat64(), domain.BaseCurrencyCode, currency)
	displayDiscounted := domain.Convert(price.DiscountedPrice.InexactFloat64(), domain.BaseCurrencyCode, currency)

	return dto.PackageResponse{
		PackageID:                pkg.PackageID,
		Name:                     pkg.Name,
		Description:              pkg.Description,
		ServiceType:              domain.ServiceTypeOf(pkg),
		DiscountPercentage:       pkg.DiscountPercentage,
		Priced:                   price.Priced,
		Price:                    price.Price,
		DiscountedPrice:          price.DiscountedPrice,
		Currency:                 dto.ToCurrencyResponse(currency),
		DisplayPrice:             display,
		DisplayDiscountedPrice:   displayDiscounted,
		FormattedPrice:           utils.FormatMoney(display, currency, locale),
		FormattedDiscountedPrice: utils.FormatMoney(displayDiscounted, currency, locale),
	}
}
