package service

import (
	"time"
)

// Claims is the verified identity carried by a session token.
type Claims struct {
	UserID string
	Role   string
}

// TokenService defines the interface for issuing and verifying stateless
// session tokens. Verification fails closed: a bad signature or a past expiry
// yields an error, never partially-trusted claims.
type TokenService interface {
	// Issue creates a signed token asserting the given user identity.
	Issue(userID string, role string) (string, error)

	// Verify checks the token's signature and expiry and returns its claims.
	Verify(tokenString string) (*Claims, error)

	// TokenTTL returns the configured token lifetime.
	TokenTTL() time.Duration
}
