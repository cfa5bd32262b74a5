package services

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/growth_storefront/internal/apperrors"
	portssvc "github.com/SscSPs/growth_storefront/internal/core/ports/services"
	"github.com/SscSPs/growth_storefront/internal/platform/config"
	"github.com/SscSPs/growth_storefront/internal/utils"
)

// adminAuthenticator checks credentials against the configured allow-list and a shared
// bcrypt password hash, then issues a signed JWT.
type adminAuthenticator struct {
	BaseService
	allowed      []string
	passwordHash string
	jwtSecret    string
	jwtExpiry    time.Duration
	jwtIssuer    string
}

// NewAdminAuthenticator creates the admin authenticator from configuration.
func NewAdminAuthenticator(cfg *config.Config) portssvc.AdminAuthenticatorSvc {
	allowed := make([]string, 0, len(cfg.AdminEmails))
	for _, email := range cfg.AdminEmails {
		allowed = append(allowed, strings.ToLower(email))
	}
	return &adminAuthenticator{
		allowed:      allowed,
		passwordHash: cfg.AdminPasswordHash,
		jwtSecret:    cfg.JWTSecret,
		jwtExpiry:    cfg.JWTExpiryDuration,
		jwtIssuer:    cfg.JWTIssuer,
	}
}

var _ portssvc.AdminAuthenticatorSvc = (*adminAuthenticator)(nil)

func (s *adminAuthenticator) Authenticate(ctx context.Context, email, password string) (string, time.Time, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	// Same error for unknown email and wrong password.
	if s.passwordHash == "" || !slices.Contains(s.allowed, email) || !utils.CheckPasswordHash(password, s.passwordHash) {
		s.LogInfo(ctx, "Admin login rejected", slog.String("email", email))
		return "", time.Time{}, apperrors.ErrUnauthorized
	}

	expiresAt := time.Now().Add(s.jwtExpiry)
	token, err := utils.GenerateJWT(email, s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign admin token", slog.String("email", email))
		return "", time.Time{}, err
	}

	s.LogInfo(ctx, "Admin logged in", slog.String("email", email))
	return token, expiresAt, nil
}
