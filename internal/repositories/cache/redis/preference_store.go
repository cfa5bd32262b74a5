// Package redis keeps visitor preferences in a redis hash per session.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/growth_storefront/internal/apperrors"
	portsrepo "github.com/SscSPs/growth_storefront/internal/core/ports/repositories"
	goredis "github.com/go-redis/redis/v8"
)

const keyPrefix = "prefs:"

// hashCommander is the subset of goredis.Cmdable the store needs.
type hashCommander interface {
	HGet(ctx context.Context, key, field string) *goredis.StringCmd
	HSet(ctx context.Context, key string, values ...interface{}) *goredis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *goredis.BoolCmd
}

// PreferenceStore implements portsrepo.PreferenceStore on redis.
type PreferenceStore struct {
	client hashCommander
	ttl    time.Duration
}

var _ portsrepo.PreferenceStore = (*PreferenceStore)(nil)

// StoreOption configures a PreferenceStore.
type StoreOption func(*PreferenceStore)

// WithTTL expires a visitor's preferences ttl after their last write. Zero keeps them forever.
func WithTTL(ttl time.Duration) StoreOption {
	return func(s *PreferenceStore) {
		s.ttl = ttl
	}
}

// NewPreferenceStore wraps an existing client.
func NewPreferenceStore(client hashCommander, opts ...StoreOption) *PreferenceStore {
	s := &PreferenceStore{client: client}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewClient parses a redis:// URL and pings the server.
func NewClient(ctx context.Context, redisURL string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

func sessionKey(sessionID string) string {
	return keyPrefix + sessionID
}

// GetPreference returns the stored value or apperrors.ErrNotFound.
func (s *PreferenceStore) GetPreference(ctx context.Context, sessionID, key string) (string, error) {
	value, err := s.client.HGet(ctx, sessionKey(sessionID), key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to read preference %s: %w", key, err)
	}
	return value, nil
}

// SetPreference overwrites the value for key.
func (s *PreferenceStore) SetPreference(ctx context.Context, sessionID, key, value string) error {
	hashKey := sessionKey(sessionID)
	if err := s.client.HSet(ctx, hashKey, key, value).Err(); err != nil {
		return fmt.Errorf("failed to write preference %s: %w", key, err)
	}
	if s.ttl > 0 {
		if err := s.client.Expire(ctx, hashKey, s.ttl).Err(); err != nil {
			return fmt.Errorf("failed to set preference expiry: %w", err)
		}
	}
	return nil
}
