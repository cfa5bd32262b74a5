package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/growth_storefront/internal/apperrors"
	"github.com/SscSPs/growth_storefront/internal/core/services"
	"github.com/SscSPs/growth_storefront/internal/platform/config"
	"github.com/SscSPs/growth_storefront/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := utils.HashPassword("correct horse")
	require.NoError(t, err)
	return &config.Config{
		JWTSecret:         "secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test",
		AdminEmails:       []string{"Ops@Example.com"},
		AdminPasswordHash: hash,
	}
}

func TestAdminAuthenticatorIssuesToken(t *testing.T) {
	auth := services.NewAdminAuthenticator(newAuthConfig(t))

	token, expiresAt, err := auth.Authenticate(context.Background(), " ops@example.com", "correct horse")

	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)
	claims, err := utils.ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", claims.Subject)
	assert.Equal(t, "test", claims.Issuer)
}

func TestAdminAuthenticatorRejects(t *testing.T) {
	cfg := newAuthConfig(t)
	auth := services.NewAdminAuthenticator(cfg)

	_, _, err := auth.Authenticate(context.Background(), "ops@example.com", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, _, err = auth.Authenticate(context.Background(), "intruder@example.com", "correct horse")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	cfg.AdminPasswordHash = ""
	_, _, err = services.NewAdminAuthenticator(cfg).Authenticate(context.Background(), "ops@example.com", "")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
