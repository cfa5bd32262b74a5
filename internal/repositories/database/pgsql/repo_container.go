package pgsql

import (
	portsrepo "github.com/SscSPs/growth_storefront/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres repositories. The preference store defaults to
// Postgres; callers may swap in another implementation afterwards.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PackageRepo:     newPgxPackageRepository(dbPool),
		ProductRepo:     newPgxProductRepository(dbPool),
		PreferenceStore: NewPgxPreferenceStore(dbPool),
	}
}
