package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/growth_storefront/internal/apperrors"
	portsrepo "github.com/SscSPs/growth_storefront/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPreferenceStore keeps visitor preferences in visitor_preferences.
type PgxPreferenceStore struct {
	BaseRepository
}

// NewPgxPreferenceStore creates a Postgres-backed preference store.
func NewPgxPreferenceStore(pool *pgxpool.Pool) *PgxPreferenceStore {
	return &PgxPreferenceStore{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PreferenceStore = (*PgxPreferenceStore)(nil)

// GetPreference returns the stored value or apperrors.ErrNotFound.
func (s *PgxPreferenceStore) GetPreference(ctx context.Context, sessionID, key string) (string, error) {
	var value string
	err := s.Pool.QueryRow(ctx,
		`SELECT pref_value FROM visitor_preferences WHERE session_id = $1 AND pref_key = $2`,
		sessionID, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to read preference %s: %w", key, err)
	}
	return value, nil
}

// SetPreference upserts the value; the latest write wins.
func (s *PgxPreferenceStore) SetPreference(ctx context.Context, sessionID, key, value string) error {
	_, err := s.Pool.Exec(ctx, `
		INSERT INTO visitor_preferences (session_id, pref_key, pref_value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (session_id, pref_key) DO UPDATE SET
			pref_value = EXCLUDED.pref_value,
			updated_at = EXCLUDED.updated_at;
	`, sessionID, key, value)
	if err != nil {
		return fmt.Errorf("failed to write preference %s: %w", key, err)
	}
	return nil
}
