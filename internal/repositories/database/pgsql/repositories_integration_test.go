package pgsql

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/SscSPs/growth_storefront/internal/apperrors"
	"github.com/SscSPs/growth_storefront/internal/core/domain"
	portsrepo "github.com/SscSPs/growth_storefront/internal/core/ports/repositories"
	"github.com/SscSPs/growth_storefront/pkg/database"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RepositoryIntegrationSuite runs the pgx repositories against a real database.
// Set TEST_POSTGRES_DSN to a disposable database to enable it.
type RepositoryIntegrationSuite struct {
	suite.Suite
	ctx   context.Context
	repos portsrepo.RepositoryProvider
	close func()
}

func (s *RepositoryIntegrationSuite) SetupSuite() {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		s.T().Skip("TEST_POSTGRES_DSN not set; skipping postgres integration test")
	}
	s.ctx = context.Background()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	require.NoError(s.T(), database.RunMigrations(dsn, "file://../../../../migrations", logger))

	pool, err := database.NewPgxPool(s.ctx, dsn, true)
	require.NoError(s.T(), err)
	s.close = func() { database.ClosePgxPool(pool) }
	s.repos = NewRepositoryProvider(pool)
}

func (s *RepositoryIntegrationSuite) TearDownSuite() {
	if s.close != nil {
		s.close()
	}
}

func audit() domain.AuditFields {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return domain.AuditFields{CreatedAt: now, CreatedBy: "ops@example.com", LastUpdatedAt: now, LastUpdatedBy: "ops@example.com"}
}

func (s *RepositoryIntegrationSuite) newProduct(price string) domain.Product {
	p := domain.Product{
		ProductID:   uuid.NewString(),
		Name:        "1000 views",
		UnitPrice:   decimal.RequireFromString(price),
		IsActive:    true,
		AuditFields: audit(),
	}
	require.NoError(s.T(), s.repos.ProductRepo.SaveProduct(s.ctx, p))
	return p
}

func (s *RepositoryIntegrationSuite) TestPreferenceOverwriteLastWriteWins() {
	store := s.repos.PreferenceStore
	session := uuid.NewString()

	_, err := store.GetPreference(s.ctx, session, domain.CurrencyPreferenceKey)
	s.ErrorIs(err, apperrors.ErrNotFound)

	s.Require().NoError(store.SetPreference(s.ctx, session, domain.CurrencyPreferenceKey, `{"code":"EUR"}`))
	s.Require().NoError(store.SetPreference(s.ctx, session, domain.CurrencyPreferenceKey, `{"code":"GBP"}`))

	got, err := store.GetPreference(s.ctx, session, domain.CurrencyPreferenceKey)
	s.Require().NoError(err)
	s.Equal(`{"code":"GBP"}`, got)

	_, err = store.GetPreference(s.ctx, uuid.NewString(), domain.CurrencyPreferenceKey)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositoryIntegrationSuite) TestPackageItemsCarryProductUnitPrice() {
	views := s.newProduct("4.99")
	likes := s.newProduct("2.50")

	pkg := domain.Package{PackageID: uuid.NewString(), Name: "YouTube Starter", IsActive: true, AuditFields: audit()}
	items := []domain.PackageItem{
		{PackageItemID: uuid.NewString(), PackageID: pkg.PackageID, ProductID: views.ProductID, Quantity: 2, AuditFields: audit()},
	}
	s.Require().NoError(s.repos.PackageRepo.SavePackage(s.ctx, pkg, items))
	s.Require().NoError(s.repos.PackageRepo.SavePackageItem(s.ctx, domain.PackageItem{
		PackageItemID: uuid.NewString(), PackageID: pkg.PackageID, ProductID: likes.ProductID, Quantity: 3, AuditFields: audit(),
	}))

	got, err := s.repos.PackageRepo.ListItemsForPackage(s.ctx, pkg.PackageID)
	s.Require().NoError(err)
	s.Require().Len(got, 2)

	total := decimal.Zero
	for _, item := range got {
		s.Equal("1000 views", item.ProductName)
		total = total.Add(item.LineTotal())
	}
	s.True(decimal.RequireFromString("17.48").Equal(total), total.String())

	found, err := s.repos.PackageRepo.FindPackageByID(s.ctx, pkg.PackageID)
	s.Require().NoError(err)
	s.Nil(found.StoredPrice)
	s.False(found.HasStoredPrice())
}

func (s *RepositoryIntegrationSuite) TestUpdatePackageStoresPriceAndDiscount() {
	pkg := domain.Package{PackageID: uuid.NewString(), Name: "Instagram Pro", IsActive: true, AuditFields: audit()}
	s.Require().NoError(s.repos.PackageRepo.SavePackage(s.ctx, pkg, nil))

	price := decimal.RequireFromString("19.99")
	pct := decimal.NewFromInt(10)
	pkg.StoredPrice = &price
	pkg.DiscountPercentage = &pct
	pkg.IsActive = false
	s.Require().NoError(s.repos.PackageRepo.UpdatePackage(s.ctx, pkg))

	found, err := s.repos.PackageRepo.FindPackageByID(s.ctx, pkg.PackageID)
	s.Require().NoError(err)
	s.Require().NotNil(found.StoredPrice)
	s.True(price.Equal(*found.StoredPrice))
	s.True(pct.Equal(*found.DiscountPercentage))
	s.False(found.IsActive)

	active, err := s.repos.PackageRepo.ListPackages(s.ctx, true)
	s.Require().NoError(err)
	for _, p := range active {
		s.NotEqual(pkg.PackageID, p.PackageID)
	}
}

func (s *RepositoryIntegrationSuite) TestMissingRowsAndConstraintErrors() {
	_, err := s.repos.PackageRepo.FindPackageByID(s.ctx, uuid.NewString())
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = s.repos.ProductRepo.FindProductByID(s.ctx, uuid.NewString())
	s.ErrorIs(err, apperrors.ErrNotFound)

	err = s.repos.PackageRepo.UpdatePackage(s.ctx, domain.Package{PackageID: uuid.NewString(), Name: "Ghost", AuditFields: audit()})
	s.ErrorIs(err, apperrors.ErrNotFound)

	product := s.newProduct("1.00")
	s.ErrorIs(s.repos.ProductRepo.SaveProduct(s.ctx, product), apperrors.ErrDuplicate)

	pkg := domain.Package{PackageID: uuid.NewString(), Name: "TikTok Boost", IsActive: true, AuditFields: audit()}
	s.Require().NoError(s.repos.PackageRepo.SavePackage(s.ctx, pkg, nil))
	err = s.repos.PackageRepo.SavePackageItem(s.ctx, domain.PackageItem{
		PackageItemID: uuid.NewString(), PackageID: pkg.PackageID, ProductID: uuid.NewString(), Quantity: 1, AuditFields: audit(),
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func TestRepositoryIntegrationSuite(t *testing.T) {
	if os.Getenv("TEST_POSTGRES_DSN") == "" {
		t.Skip("TEST_POSTGRES_DSN not set; skipping postgres integration test")
	}
	suite.Run(t, new(RepositoryIntegrationSuite))
}
