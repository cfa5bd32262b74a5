package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/growth_storefront/internal/apperrors"
	"github.com/SscSPs/growth_storefront/internal/core/domain"
	portssvc "github.com/SscSPs/growth_storefront/internal/core/ports/services"
	"github.com/SscSPs/growth_storefront/internal/core/services"
	"github.com/SscSPs/growth_storefront/internal/dto"
	"github.com/SscSPs/growth_storefront/internal/handlers"
	"github.com/SscSPs/growth_storefront/internal/platform/config"
	"github.com/SscSPs/growth_storefront/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testSecret  = "test-secret-key-that-is-long-enough"
	testCookie  = "sfv"
	testAdminID = "ops@example.com"
)

type HandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockPreference *MockPreferenceService
	mockStorefront *MockStorefrontService
	mockCatalog    *MockCatalogService
	mockAuth       *MockAdminAuthenticator
	visitorID      string
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockPreference = new(MockPreferenceService)
	suite.mockStorefront = new(MockStorefrontService)
	suite.mockCatalog = new(MockCatalogService)
	suite.mockAuth = new(MockAdminAuthenticator)
	suite.visitorID = uuid.NewString()

	cfg := &config.Config{
		JWTSecret:         testSecret,
		VisitorCookieName: testCookie,
		IsProduction:      true,
	}
	container := &portssvc.ServiceContainer{
		Currency:           services.NewCurrencyService(),
		CurrencyPreference: suite.mockPreference,
		Storefront:         suite.mockStorefront,
		Catalog:            suite.mockCatalog,
		AdminAuth:          suite.mockAuth,
	}
	handlers.RegisterRoutes(suite.router, cfg, container, nil)
}

func (suite *HandlerTestSuite) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: testCookie, Value: suite.visitorID})
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

func (suite *HandlerTestSuite) adminToken() string {
	token, err := utils.GenerateJWT(testAdminID, testSecret, time.Hour, "test")
	suite.Require().NoError(err)
	return token
}

func currency(code string) domain.Currency {
	c, _ := domain.LookupCurrency(code)
	return c
}

// --- Public routes ---

func (suite *HandlerTestSuite) TestHealth() {
	rec := suite.do(http.MethodGet, "/health", nil, "")
	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("OK", rec.Body.String())
}

func (suite *HandlerTestSuite) TestMetrics() {
	rec := suite.do(http.MethodGet, "/metrics", nil, "")
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "storefront_pricing_resolution_failures_total")
}

func (suite *HandlerTestSuite) TestListCurrencies() {
	rec := suite.do(http.MethodGet, "/api/v1/currencies", nil, "")

	suite.Require().Equal(http.StatusOK, rec.Code)
	var resp []dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Equal(len(domain.SupportedCurrencies()), len(resp))
	suite.Equal("USD", resp[0].Code)
}

func (suite *HandlerTestSuite) TestConvertCurrency() {
	rec := suite.do(http.MethodGet, "/api/v1/currencies/convert?amount=10&from=USD&to=INR", nil, "")

	suite.Require().Equal(http.StatusOK, rec.Code)
	var resp dto.ConvertCurrencyResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.InDelta(831.2, resp.Converted, 1e-9)
	suite.Equal("INR", resp.To.Code)
	suite.NotEmpty(resp.Formatted)
}

func (suite *HandlerTestSuite) TestConvertCurrencyIgnoresCodeCase() {
	rec := suite.do(http.MethodGet, "/api/v1/currencies/convert?amount=100&from=eur&to=gbp", nil, "")

	suite.Require().Equal(http.StatusOK, rec.Code)
	var resp dto.ConvertCurrencyResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Equal("EUR", resp.From)
	suite.Equal("GBP", resp.To.Code)
	suite.InDelta(100/0.92*0.79, resp.Converted, 1e-9)
}

func (suite *HandlerTestSuite) TestConvertCurrencyUnknownTarget() {
	rec := suite.do(http.MethodGet, "/api/v1/currencies/convert?amount=10&from=USD&to=ZZZ", nil, "")
	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *HandlerTestSuite) TestConvertCurrencyMissingParams() {
	rec := suite.do(http.MethodGet, "/api/v1/currencies/convert?amount=10", nil, "")
	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *HandlerTestSuite) TestGetCurrencyPreference() {
	suite.mockPreference.On("Load", mock.Anything, suite.visitorID).Return(currency("GBP")).Once()

	rec := suite.do(http.MethodGet, "/api/v1/preferences/currency", nil, "")

	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), `"code":"GBP"`)
	suite.mockPreference.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestUpdateCurrencyPreference() {
	suite.mockPreference.On("ChangeCurrency", mock.Anything, suite.visitorID, "EUR").Return(currency("EUR"), nil).Once()

	rec := suite.do(http.MethodPut, "/api/v1/preferences/currency", dto.UpdateCurrencyPreferenceRequest{CurrencyCode: "EUR"}, "")

	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), `"code":"EUR"`)
}

func (suite *HandlerTestSuite) TestUpdateCurrencyPreferenceRejectsUnknownCode() {
	rec := suite.do(http.MethodPut, "/api/v1/preferences/currency", dto.UpdateCurrencyPreferenceRequest{CurrencyCode: "ZZZ"}, "")

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.mockPreference.AssertNotCalled(suite.T(), "ChangeCurrency", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListPackagesUsesPreference() {
	resp := &dto.ListPackagesResponse{ServiceTypes: []string{"YouTube"}, Currency: dto.ToCurrencyResponse(currency("JPY"))}
	suite.mockPreference.On("Load", mock.Anything, suite.visitorID).Return(currency("JPY")).Once()
	suite.mockStorefront.On("ListOffers", mock.Anything, currency("JPY"), "YouTube").Return(resp, nil).Once()

	rec := suite.do(http.MethodGet, "/api/v1/packages?serviceType=YouTube", nil, "")

	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), `"serviceTypes":["YouTube"]`)
	suite.mockStorefront.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestListPackagesExplicitCurrency() {
	suite.mockStorefront.On("ListOffers", mock.Anything, currency("EUR"), "").
		Return(&dto.ListPackagesResponse{}, nil).Once()

	rec := suite.do(http.MethodGet, "/api/v1/packages?currency=eur", nil, "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.mockPreference.AssertNotCalled(suite.T(), "Load", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListPackagesUnknownCurrency() {
	rec := suite.do(http.MethodGet, "/api/v1/packages?currency=ZZZ", nil, "")
	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *HandlerTestSuite) TestListPackagesServiceError() {
	suite.mockPreference.On("Load", mock.Anything, suite.visitorID).Return(domain.BaseCurrency()).Once()
	suite.mockStorefront.On("ListOffers", mock.Anything, domain.BaseCurrency(), "").Return(nil, assert.AnError).Once()

	rec := suite.do(http.MethodGet, "/api/v1/packages", nil, "")

	suite.Equal(http.StatusInternalServerError, rec.Code)
	suite.Contains(rec.Body.String(), "Failed to list packages")
}

func (suite *HandlerTestSuite) TestGetPackageNotFound() {
	suite.mockPreference.On("Load", mock.Anything, suite.visitorID).Return(domain.BaseCurrency()).Once()
	suite.mockStorefront.On("GetOffer", mock.Anything, "missing", domain.BaseCurrency()).
		Return(nil, apperrors.NewNotFoundError("package missing not found")).Once()

	rec := suite.do(http.MethodGet, "/api/v1/packages/missing", nil, "")

	suite.Equal(http.StatusNotFound, rec.Code)
	suite.Contains(rec.Body.String(), "package missing not found")
}

func (suite *HandlerTestSuite) TestListServiceTypes() {
	suite.mockStorefront.On("ListServiceTypes", mock.Anything).Return([]string{"Instagram", "YouTube"}, nil).Once()

	rec := suite.do(http.MethodGet, "/api/v1/service-types", nil, "")

	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`{"serviceTypes":["Instagram","YouTube"]}`, rec.Body.String())
}

func (suite *HandlerTestSuite) TestVisitorCookieIssued() {
	suite.mockPreference.On("Load", mock.Anything, mock.AnythingOfType("string")).Return(domain.BaseCurrency()).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/preferences/currency", nil)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	suite.Equal(http.StatusOK, rec.Code)
	suite.Require().Len(rec.Result().Cookies(), 1)
	suite.Equal(testCookie, rec.Result().Cookies()[0].Name)
}

// --- Admin routes ---

func (suite *HandlerTestSuite) TestLogin() {
	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	suite.mockAuth.On("Authenticate", mock.Anything, testAdminID, "pw").Return("signed", expires, nil).Once()

	rec := suite.do(http.MethodPost, "/api/v1/admin/login", dto.LoginRequest{Email: testAdminID, Password: "pw"}, "")

	suite.Require().Equal(http.StatusOK, rec.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Equal("signed", resp.Token)
	suite.True(expires.Equal(resp.ExpiresAt))
}

func (suite *HandlerTestSuite) TestLoginRejected() {
	suite.mockAuth.On("Authenticate", mock.Anything, testAdminID, "bad").Return("", time.Time{}, apperrors.ErrUnauthorized).Once()

	rec := suite.do(http.MethodPost, "/api/v1/admin/login", dto.LoginRequest{Email: testAdminID, Password: "bad"}, "")

	suite.Equal(http.StatusUnauthorized, rec.Code)
}

func (suite *HandlerTestSuite) TestAdminRoutesRequireToken() {
	rec := suite.do(http.MethodGet, "/api/v1/admin/products", nil, "")
	suite.Equal(http.StatusUnauthorized, rec.Code)
	suite.mockCatalog.AssertNotCalled(suite.T(), "ListProducts", mock.Anything)
}

func (suite *HandlerTestSuite) TestCreatePackage() {
	price := decimal.RequireFromString("19.99")
	req := dto.CreatePackageRequest{Name: "YouTube Starter", Price: &price}
	suite.mockCatalog.On("CreatePackage", mock.Anything, mock.MatchedBy(func(r dto.CreatePackageRequest) bool {
		return r.Name == "YouTube Starter" && r.Price != nil && r.Price.Equal(price)
	}), testAdminID).Return(&domain.Package{PackageID: "p1", Name: "YouTube Starter", StoredPrice: &price, IsActive: true}, nil).Once()

	rec := suite.do(http.MethodPost, "/api/v1/admin/packages", req, suite.adminToken())

	suite.Require().Equal(http.StatusCreated, rec.Code)
	suite.Contains(rec.Body.String(), `"packageID":"p1"`)
}

func (suite *HandlerTestSuite) TestCreatePackageValidationError() {
	suite.mockCatalog.On("CreatePackage", mock.Anything, mock.Anything, testAdminID).
		Return(nil, apperrors.NewValidationError("discount percentage must be between 0 and 100")).Once()

	rec := suite.do(http.MethodPost, "/api/v1/admin/packages", dto.CreatePackageRequest{Name: "X"}, suite.adminToken())

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Contains(rec.Body.String(), "discount percentage")
}

func (suite *HandlerTestSuite) TestCreatePackageMissingName() {
	rec := suite.do(http.MethodPost, "/api/v1/admin/packages", map[string]any{"description": "no name"}, suite.adminToken())
	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *HandlerTestSuite) TestUpdatePackageNotFound() {
	suite.mockCatalog.On("UpdatePackage", mock.Anything, "nope", mock.Anything, testAdminID).
		Return(nil, apperrors.ErrNotFound).Once()

	rec := suite.do(http.MethodPut, "/api/v1/admin/packages/nope", dto.UpdatePackageRequest{ClearPrice: true}, suite.adminToken())

	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *HandlerTestSuite) TestAddPackageItem() {
	suite.mockCatalog.On("AddPackageItem", mock.Anything, "p1", dto.AddPackageItemRequest{ProductID: "prod-1", Quantity: 2}, testAdminID).
		Return(&domain.PackageItem{PackageItemID: "i1", PackageID: "p1", ProductID: "prod-1", Quantity: 2, UnitPrice: decimal.NewFromInt(5)}, nil).Once()

	rec := suite.do(http.MethodPost, "/api/v1/admin/packages/p1/items", dto.AddPackageItemRequest{ProductID: "prod-1", Quantity: 2}, suite.adminToken())

	suite.Require().Equal(http.StatusCreated, rec.Code)
	suite.Contains(rec.Body.String(), `"packageItemID":"i1"`)
}

func (suite *HandlerTestSuite) TestAddPackageItemZeroQuantity() {
	rec := suite.do(http.MethodPost, "/api/v1/admin/packages/p1/items", map[string]any{"productID": "prod-1", "quantity": 0}, suite.adminToken())
	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *HandlerTestSuite) TestCreateProductDuplicate() {
	suite.mockCatalog.On("CreateProduct", mock.Anything, mock.Anything, testAdminID).Return(nil, apperrors.ErrDuplicate).Once()

	rec := suite.do(http.MethodPost, "/api/v1/admin/products",
		dto.CreateProductRequest{Name: "1000 views", UnitPrice: decimal.RequireFromString("4.99")}, suite.adminToken())

	suite.Equal(http.StatusConflict, rec.Code)
}

func (suite *HandlerTestSuite) TestListProducts() {
	suite.mockCatalog.On("ListProducts", mock.Anything).
		Return([]domain.Product{{ProductID: "prod-1", Name: "1000 views", UnitPrice: decimal.RequireFromString("4.99")}}, nil).Once()

	rec := suite.do(http.MethodGet, "/api/v1/admin/products", nil, suite.adminToken())

	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), `"productID":"prod-1"`)
}

func (suite *HandlerTestSuite) TestAdminListPackagesIncludesInactive() {
	suite.mockCatalog.On("ListPackages", mock.Anything, false).
		Return([]domain.Package{{PackageID: "p1", IsActive: false}}, nil).Once()

	rec := suite.do(http.MethodGet, "/api/v1/admin/packages", nil, suite.adminToken())

	suite.Require().Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), `"isActive":false`)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
