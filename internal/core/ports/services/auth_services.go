package services

import (
	"context"
	"time"
)

// AdminAuthenticatorSvc verifies admin credentials and issues access tokens.
// The admin routes depend only on this interface so tests can swap it out.
type AdminAuthenticatorSvc interface {
	// Authenticate checks the credentials and returns a signed access token with its expiry.
	Authenticate(ctx context.Context, email, password string) (string, time.Time, error)
}
