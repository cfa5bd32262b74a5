package services_test

import (
	"context"
	"sync"

	"github.com/SscSPs/growth_storefront/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock PackageRepository ---
type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) FindPackageByID(ctx context.Context, packageID string) (*domain.Package, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Package), args.Error(1)
}

func (m *MockPackageRepository) ListPackages(ctx context.Context, activeOnly bool) ([]domain.Package, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Package), args.Error(1)
}

func (m *MockPackageRepository) ListItemsForPackage(ctx context.Context, packageID string) ([]domain.PackageItem, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PackageItem), args.Error(1)
}

func (m *MockPackageRepository) SavePackage(ctx context.Context, pkg domain.Package, items []domain.PackageItem) error {
	args := m.Called(ctx, pkg, items)
	return args.Error(0)
}

func (m *MockPackageRepository) UpdatePackage(ctx context.Context, pkg domain.Package) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockPackageRepository) SavePackageItem(ctx context.Context, item domain.PackageItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

// --- Mock PreferenceStore ---
type MockPreferenceStore struct {
	mock.Mock
}

func (m *MockPreferenceStore) GetPreference(ctx context.Context, sessionID, key string) (string, error) {
	args := m.Called(ctx, sessionID, key)
	return args.String(0), args.Error(1)
}

func (m *MockPreferenceStore) SetPreference(ctx context.Context, sessionID, key, value string) error {
	args := m.Called(ctx, sessionID, key, value)
	return args.Error(0)
}

// --- Mock PricingService ---
type MockPricingService struct {
	mock.Mock
}

func (m *MockPricingService) ResolvePrice(ctx context.Context, pkg domain.Package) domain.PackagePrice {
	args := m.Called(ctx, pkg)
	return args.Get(0).(domain.PackagePrice)
}

func (m *MockPricingService) ResolvePrices(ctx context.Context, pkgs []domain.Package) []domain.PackagePrice {
	args := m.Called(ctx, pkgs)
	return args.Get(0).([]domain.PackagePrice)
}

// --- Recording EventTracker ---
type trackedEvent struct {
	DistinctID string
	Event      string
	Properties map[string]any
}

type recordingTracker struct {
	mu     sync.Mutex
	events []trackedEvent
}

func (r *recordingTracker) Enqueue(distinctID string, event string, properties map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, trackedEvent{DistinctID: distinctID, Event: event, Properties: properties})
}
