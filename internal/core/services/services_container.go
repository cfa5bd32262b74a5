package services

import (
	portsrepo "github.com/SscSPs/growth_storefront/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/growth_storefront/internal/core/ports/services"
	"github.com/SscSPs/growth_storefront/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, tracker EventTracker) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService()

	prefOpts := []PreferenceOption{}
	if tracker != nil {
		prefOpts = append(prefOpts, WithEventTracker(tracker))
	}
	container.CurrencyPreference = NewCurrencyPreferenceService(repos.PreferenceStore, prefOpts...)

	container.Pricing = NewPricingService(repos.PackageRepo, WithConcurrency(cfg.PriceResolveConcurrency))
	container.Storefront = NewStorefrontService(repos.PackageRepo, container.Pricing)
	container.Catalog = NewCatalogService(repos.PackageRepo, repos.ProductRepo)
	container.AdminAuth = NewAdminAuthenticator(cfg)

	return container
}
