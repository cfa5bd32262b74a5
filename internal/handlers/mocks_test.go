package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/growth_storefront/internal/core/domain"
	portssvc "github.com/SscSPs/growth_storefront/internal/core/ports/services"
	"github.com/SscSPs/growth_storefront/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyPreferenceService ---
type MockPreferenceService struct {
	mock.Mock
}

func (m *MockPreferenceService) Load(ctx context.Context, sessionID string) domain.Currency {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(domain.Currency)
}

func (m *MockPreferenceService) Save(ctx context.Context, sessionID string, currency domain.Currency) error {
	args := m.Called(ctx, sessionID, currency)
	return args.Error(0)
}

func (m *MockPreferenceService) ChangeCurrency(ctx context.Context, sessionID string, code string) (domain.Currency, error) {
	args := m.Called(ctx, sessionID, code)
	return args.Get(0).(domain.Currency), args.Error(1)
}

var _ portssvc.CurrencyPreferenceSvc = (*MockPreferenceService)(nil)

// --- Mock StorefrontService ---
type MockStorefrontService struct {
	mock.Mock
}

func (m *MockStorefrontService) ListOffers(ctx context.Context, currency domain.Currency, serviceType string) (*dto.ListPackagesResponse, error) {
	args := m.Called(ctx, currency, serviceType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListPackagesResponse), args.Error(1)
}

func (m *MockStorefrontService) GetOffer(ctx context.Context, packageID string, currency domain.Currency) (*dto.PackageResponse, error) {
	args := m.Called(ctx, packageID, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PackageResponse), args.Error(1)
}

func (m *MockStorefrontService) ListServiceTypes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ portssvc.StorefrontSvc = (*MockStorefrontService)(nil)

// --- Mock CatalogService ---
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListPackages(ctx context.Context, activeOnly bool) ([]domain.Package, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Package), args.Error(1)
}

func (m *MockCatalogService) GetPackage(ctx context.Context, packageID string) (*domain.Package, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Package), args.Error(1)
}

func (m *MockCatalogService) ListPackageItems(ctx context.Context, packageID string) ([]domain.PackageItem, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PackageItem), args.Error(1)
}

func (m *MockCatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockCatalogService) CreatePackage(ctx context.Context, req dto.CreatePackageRequest, adminID string) (*domain.Package, error) {
	args := m.Called(ctx, req, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Package), args.Error(1)
}

func (m *MockCatalogService) UpdatePackage(ctx context.Context, packageID string, req dto.UpdatePackageRequest, adminID string) (*domain.Package, error) {
	args := m.Called(ctx, packageID, req, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Package), args.Error(1)
}

func (m *MockCatalogService) AddPackageItem(ctx context.Context, packageID string, req dto.AddPackageItemRequest, adminID string) (*domain.PackageItem, error) {
	args := m.Called(ctx, packageID, req, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PackageItem), args.Error(1)
}

func (m *MockCatalogService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, adminID string) (*domain.Product, error) {
	args := m.Called(ctx, req, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

var _ portssvc.CatalogSvcFacade = (*MockCatalogService)(nil)

// --- Mock AdminAuthenticator ---
type MockAdminAuthenticator struct {
	mock.Mock
}

func (m *MockAdminAuthenticator) Authenticate(ctx context.Context, email, password string) (string, time.Time, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.AdminAuthenticatorSvc = (*MockAdminAuthenticator)(nil)
