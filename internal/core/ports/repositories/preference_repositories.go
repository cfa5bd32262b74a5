package repositories

import "context"

// PreferenceStore is a per-visitor key/value slot store.
// Writes overwrite; concurrent writers resolve last-write-wins.
type PreferenceStore interface {
	// GetPreference returns the raw stored value, or apperrors.ErrNotFound when absent.
	GetPreference(ctx context.Context, sessionID, key string) (string, error)

	// SetPreference stores value, replacing any previous one.
	SetPreference(ctx context.Context, sessionID, key, value string) error
}
