package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/growth_storefront/internal/apperrors"
	"github.com/SscSPs/growth_storefront/internal/core/domain"
	portsrepo "github.com/SscSPs/growth_storefront/internal/core/ports/repositories"
	"github.com/SscSPs/growth_storefront/internal/models"
	"github.com/SscSPs/growth_storefront/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPackageRepository implements portsrepo.PackageRepositoryWithTx on product_packages
// and product_package_items.
type PgxPackageRepository struct {
	BaseRepository
}

// newPgxPackageRepository creates a new repository for package data.
func newPgxPackageRepository(pool *pgxpool.Pool) portsrepo.PackageRepositoryWithTx {
	return &PgxPackageRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PackageRepositoryWithTx = (*PgxPackageRepository)(nil)

const packageColumns = `package_id, name, description, price, discount_percentage, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func scanPackage(row pgx.Row) (models.Package, error) {
	var p models.Package
	err := row.Scan(
		&p.PackageID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.DiscountPercentage,
		&p.IsActive,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	return p, err
}

// SavePackage inserts a package and its initial items in one transaction.
func (r *PgxPackageRepository) SavePackage(ctx context.Context, pkg domain.Package, items []domain.PackageItem) error {
	modelPkg := mapping.ToModelPackage(pkg)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO product_packages (`+packageColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		modelPkg.PackageID,
		modelPkg.Name,
		modelPkg.Description,
		modelPkg.Price,
		modelPkg.DiscountPercentage,
		modelPkg.IsActive,
		modelPkg.CreatedAt,
		modelPkg.CreatedBy,
		modelPkg.LastUpdatedAt,
		modelPkg.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err, "package "+modelPkg.PackageID)
	}

	for _, item := range items {
		if err := insertPackageItem(ctx, tx, mapping.ToModelPackageItem(item)); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// UpdatePackage updates an existing package's details.
func (r *PgxPackageRepository) UpdatePackage(ctx context.Context, pkg domain.Package) error {
	modelPkg := mapping.ToModelPackage(pkg)

	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE product_packages
		SET name = $1, description = $2, price = $3, discount_percentage = $4, is_active = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE package_id = $8`,
		modelPkg.Name,
		modelPkg.Description,
		modelPkg.Price,
		modelPkg.DiscountPercentage,
		modelPkg.IsActive,
		modelPkg.LastUpdatedAt,
		modelPkg.LastUpdatedBy,
		modelPkg.PackageID,
	)
	if err != nil {
		return translatePgError(err, "package "+modelPkg.PackageID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("package " + modelPkg.PackageID + " not found")
	}
	return nil
}

// SavePackageItem adds a single item to an existing package.
func (r *PgxPackageRepository) SavePackageItem(ctx context.Context, item domain.PackageItem) error {
	return insertPackageItem(ctx, r.Pool, mapping.ToModelPackageItem(item))
}

// execer is satisfied by both *pgxpool.Pool and pgx.Tx.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func insertPackageItem(ctx context.Context, db execer, item models.PackageItem) error {
	_, err := db.Exec(ctx, `
		INSERT INTO product_package_items (package_item_id, package_id, product_id, quantity,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.PackageItemID,
		item.PackageID,
		item.ProductID,
		item.Quantity,
		item.CreatedAt,
		item.CreatedBy,
		item.LastUpdatedAt,
		item.LastUpdatedBy,
	)
	if err != nil {
		return translatePgError(err, "package item "+item.PackageItemID)
	}
	return nil
}

// FindPackageByID retrieves a package by its ID.
func (r *PgxPackageRepository) FindPackageByID(ctx context.Context, packageID string) (*domain.Package, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+packageColumns+` FROM product_packages WHERE package_id = $1`, packageID)
	modelPkg, err := scanPackage(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find package by id %s: %w", packageID, err)
	}

	domainPkg := mapping.ToDomainPackage(modelPkg)
	return &domainPkg, nil
}

// ListPackages retrieves packages ordered by name.
func (r *PgxPackageRepository) ListPackages(ctx context.Context, activeOnly bool) ([]domain.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM product_packages`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name, package_id`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query packages: %w", err)
	}
	defer rows.Close()

	modelPkgs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Package, error) {
		return scanPackage(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan packages: %w", err)
	}

	return mapping.ToDomainPackageSlice(modelPkgs), nil
}

// ListItemsForPackage retrieves a package's items joined with each product's unit price.
func (r *PgxPackageRepository) ListItemsForPackage(ctx context.Context, packageID string) ([]domain.PackageItem, error) {
	query := `
		SELECT i.package_item_id, i.package_id, i.product_id, p.name, i.quantity, p.unit_price,
			i.created_at, i.created_by, i.last_updated_at, i.last_updated_by
		FROM product_package_items i
		JOIN products p ON p.product_id = i.product_id
		WHERE i.package_id = $1
		ORDER BY i.created_at, i.package_item_id;
	`
	rows, err := r.Pool.Query(ctx, query, packageID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for package %s: %w", packageID, err)
	}
	defer rows.Close()

	modelItems, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PackageItem, error) {
		var item models.PackageItem
		err := row.Scan(
			&item.PackageItemID,
			&item.PackageID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&item.CreatedAt,
			&item.CreatedBy,
			&item.LastUpdatedAt,
			&item.LastUpdatedBy,
		)
		return item, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan items for package %s: %w", packageID, err)
	}

	return mapping.ToDomainPackageItemSlice(modelItems), nil
}
