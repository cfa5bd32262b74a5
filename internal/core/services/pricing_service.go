package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/growth_storefront/internal/core/domain"
	portsrepo "github.com/SscSPs/growth_storefront/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/growth_storefront/internal/core/ports/services"
	"github.com/SscSPs/growth_storefront/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var hundred = decimal.NewFromInt(100)

type pricingService struct {
	BaseService
	itemReader  portsrepo.PackageItemReader
	concurrency int
	failures    prometheus.Counter
}

// PricingOption is a functional option for configuring the pricing service
type PricingOption func(*pricingService)

// WithConcurrency bounds how many item fetches ResolvePrices runs at once.
// Zero or negative means one goroutine per package.
func WithConcurrency(n int) PricingOption {
	return func(s *pricingService) {
		s.concurrency = max(n, 0)
	}
}

// WithFailureCounter counts swallowed resolution failures on c.
func WithFailureCounter(c prometheus.Counter) PricingOption {
	return func(s *pricingService) {
		s.failures = c
	}
}

// NewPricingService creates a pricing service that reads package items from itemReader.
func NewPricingService(itemReader portsrepo.PackageItemReader, options ...PricingOption) portssvc.PricingSvc {
	svc := &pricingService{
		itemReader: itemReader,
		failures:   metrics.PricingResolutionFailures,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PricingSvc = (*pricingService)(nil)

// ResolvePrice prices a package from its stored price, or from its items when it has none,
// then applies the discount. Failures are logged and yield an unpriced result.
func (s *pricingService) ResolvePrice(ctx context.Context, pkg domain.Package) domain.PackagePrice {
	price, err := s.resolve(ctx, pkg)
	if err != nil {
		s.LogWarn(ctx, err, "Failed to resolve package price, leaving it unpriced",
			slog.String("package_id", pkg.PackageID))
		s.failures.Inc()
		return domain.PackagePrice{PackageID: pkg.PackageID}
	}
	return price
}

// ResolvePrices resolves every package concurrently. The result has one entry per input, in
// input order, and no failure affects any other package. Packages with a stored price need no
// I/O and are priced inline, so a slow item fetch never holds them up.
func (s *pricingService) ResolvePrices(ctx context.Context, pkgs []domain.Package) []domain.PackagePrice {
	results := make([]domain.PackagePrice, len(pkgs))

	var g errgroup.Group
	if s.concurrency > 0 {
		g.SetLimit(s.concurrency)
	}
	for i, pkg := range pkgs {
		if pkg.HasStoredPrice() {
			results[i] = s.ResolvePrice(ctx, pkg)
			continue
		}
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					s.LogError(ctx, fmt.Errorf("panic: %v", r), "Package price resolution panicked",
						slog.String("package_id", pkg.PackageID))
					s.failures.Inc()
					results[i] = domain.PackagePrice{PackageID: pkg.PackageID}
				}
			}()
			results[i] = s.ResolvePrice(ctx, pkg)
			return nil
		})
	}
	// Workers never return errors.
	_ = g.Wait()

	return results
}

func (s *pricingService) resolve(ctx context.Context, pkg domain.Package) (domain.PackagePrice, error) {
	result := domain.PackagePrice{PackageID: pkg.PackageID}

	var price decimal.Decimal
	if pkg.HasStoredPrice() {
		price = *pkg.StoredPrice
	} else {
		items, err := s.itemReader.ListItemsForPackage(ctx, pkg.PackageID)
		if err != nil {
			return result, fmt.Errorf("failed to list items for package %s: %w", pkg.PackageID, err)
		}
		if len(items) == 0 {
			return result, nil
		}
		for _, item := range items {
			price = price.Add(item.LineTotal())
		}
	}

	result.Price = price
	result.DiscountedPrice = applyDiscount(price, pkg.DiscountPercentage)
	result.Priced = true
	return result, nil
}

// applyDiscount returns price reduced by pct percent. A nil or non-positive pct leaves it unchanged.
func applyDiscount(price decimal.Decimal, pct *decimal.Decimal) decimal.Decimal {
	if pct == nil || !pct.IsPositive() {
		return price
	}
	return price.Mul(decimal.NewFromInt(1).Sub(pct.Div(hundred)))
}
