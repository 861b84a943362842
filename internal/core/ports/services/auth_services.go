package services

import (
	"context"
	"time"

	"github.com/devlogkr/blog_backend/internal/core/domain"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade defines the interface for bearer token management.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user, returning the
	// token and its expiry instant.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAccessToken checks signature and expiration and returns the
	// subject user ID. Signature mismatch, structural corruption and expiry
	// all collapse to one unauthorized failure at this boundary.
	ValidateAccessToken(ctx context.Context, tokenString string) (string, error)
}

// GoogleAuthSvcFacade defines the interface for federated identity
// verification.
type GoogleAuthSvcFacade interface {
	// ValidateGoogleIDToken validates an ID token string from Google and
	// returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
