package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/growth_storefront/internal/apperrors"
	"github.com/SscSPs/growth_storefront/internal/core/domain"
	portssvc "github.com/SscSPs/growth_storefront/internal/core/ports/services"
	"github.com/SscSPs/growth_storefront/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type StorefrontServiceTestSuite struct {
	suite.Suite
	mockRepo    *MockPackageRepository
	mockPricing *MockPricingService
	service     portssvc.StorefrontSvc
	catalog     []domain.Package
}

func (suite *StorefrontServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPackageRepository)
	suite.mockPricing = new(MockPricingService)
	suite.service = services.NewStorefrontService(suite.mockRepo, suite.mockPricing)
	suite.catalog = []domain.Package{
		{PackageID: "p1", Name: "Instagram Boost", IsActive: true},
		{PackageID: "p2", Name: "YouTube Starter", IsActive: true},
		{PackageID: "p3", Name: "YouTube Pro", IsActive: true},
	}
}

func pricedAt(id, price, discounted string) domain.PackagePrice {
	return domain.PackagePrice{
		PackageID:       id,
		Price:           decimal.RequireFromString(price),
		DiscountedPrice: decimal.RequireFromString(discounted),
		Priced:          true,
	}
}

func (suite *StorefrontServiceTestSuite) TestListOffersConvertsPrices() {
	ctx := context.Background()
	eur, _ := domain.LookupCurrency("EUR")
	suite.mockRepo.On("ListPackages", ctx, true).Return(suite.catalog, nil).Once()
	suite.mockPricing.On("ResolvePrices", ctx, suite.catalog).Return([]domain.PackagePrice{
		pricedAt("p1", "10", "10"),
		pricedAt("p2", "100", "90"),
		{PackageID: "p3"},
	}).Once()

	resp, err := suite.service.ListOffers(ctx, eur, "")

	suite.Require().NoError(err)
	suite.Equal([]string{"Instagram", "YouTube"}, resp.ServiceTypes)
	suite.Equal("EUR", resp.Currency.Code)
	suite.Require().Len(resp.Packages, 3)

	suite.Equal("p2", resp.Packages[1].PackageID)
	suite.Equal("YouTube", resp.Packages[1].ServiceType)
	suite.InDelta(92.0, resp.Packages[1].DisplayPrice, 1e-9)
	suite.InDelta(82.8, resp.Packages[1].DisplayDiscountedPrice, 1e-9)
	suite.Contains(resp.Packages[1].FormattedPrice, "92.00")

	suite.False(resp.Packages[2].Priced)
	suite.Equal(0.0, resp.Packages[2].DisplayPrice)
	suite.mockPricing.AssertExpectations(suite.T())
}

func (suite *StorefrontServiceTestSuite) TestListOffersFiltersByServiceType() {
	ctx := context.Background()
	suite.mockRepo.On("ListPackages", ctx, true).Return(suite.catalog, nil).Once()
	suite.mockPricing.On("ResolvePrices", ctx, mock.MatchedBy(func(pkgs []domain.Package) bool {
		return len(pkgs) == 2 && pkgs[0].PackageID == "p2" && pkgs[1].PackageID == "p3"
	})).Return([]domain.PackagePrice{pricedAt("p2", "1", "1"), pricedAt("p3", "2", "2")}).Once()

	resp, err := suite.service.ListOffers(ctx, domain.BaseCurrency(), "youtube")

	suite.Require().NoError(err)
	suite.Len(resp.Packages, 2)
	// Service types still describe the whole catalog.
	suite.Equal([]string{"Instagram", "YouTube"}, resp.ServiceTypes)
}

func (suite *StorefrontServiceTestSuite) TestListOffersRepoError() {
	ctx := context.Background()
	suite.mockRepo.On("ListPackages", ctx, true).Return(nil, errors.New("db down")).Once()

	resp, err := suite.service.ListOffers(ctx, domain.BaseCurrency(), "")

	suite.Error(err)
	suite.Nil(resp)
	suite.mockPricing.AssertNotCalled(suite.T(), "ResolvePrices", mock.Anything, mock.Anything)
}

func (suite *StorefrontServiceTestSuite) TestGetOffer() {
	ctx := context.Background()
	pkg := suite.catalog[1]
	items := []domain.PackageItem{{PackageItemID: "i1", ProductID: "prod-1", ProductName: "1000 views", Quantity: 2, UnitPrice: decimal.NewFromInt(5)}}
	suite.mockRepo.On("FindPackageByID", ctx, "p2").Return(&pkg, nil).Once()
	suite.mockRepo.On("ListItemsForPackage", ctx, "p2").Return(items, nil).Once()
	suite.mockPricing.On("ResolvePrice", ctx, pkg).Return(pricedAt("p2", "10", "10")).Once()

	offer, err := suite.service.GetOffer(ctx, "p2", domain.BaseCurrency())

	suite.Require().NoError(err)
	suite.Equal("YouTube Starter", offer.Name)
	suite.Require().Len(offer.Items, 1)
	suite.Equal("1000 views", offer.Items[0].ProductName)
	suite.InDelta(10.0, offer.DisplayPrice, 1e-9)
}

func (suite *StorefrontServiceTestSuite) TestGetOfferInactiveIsNotFound() {
	ctx := context.Background()
	pkg := domain.Package{PackageID: "p9", Name: "Hidden", IsActive: false}
	suite.mockRepo.On("FindPackageByID", ctx, "p9").Return(&pkg, nil).Once()

	_, err := suite.service.GetOffer(ctx, "p9", domain.BaseCurrency())

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *StorefrontServiceTestSuite) TestGetOfferMissing() {
	ctx := context.Background()
	suite.mockRepo.On("FindPackageByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetOffer(ctx, "nope", domain.BaseCurrency())

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *StorefrontServiceTestSuite) TestListServiceTypes() {
	ctx := context.Background()
	suite.mockRepo.On("ListPackages", ctx, true).Return(suite.catalog, nil).Once()

	types, err := suite.service.ListServiceTypes(ctx)

	suite.Require().NoError(err)
	suite.Equal([]string{"Instagram", "YouTube"}, types)
}

func TestStorefrontServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StorefrontServiceTestSuite))
}
