package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/devlogkr/blog_backend/internal/apperrors"
	"github.com/devlogkr/blog_backend/internal/core/domain"
	"github.com/devlogkr/blog_backend/internal/core/services"
	"github.com/devlogkr/blog_backend/internal/platform/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func tokenConfig(expiry time.Duration) *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: expiry,
		JWTIssuer:         "blog-backend-test",
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := services.NewTokenService(tokenConfig(time.Hour))
	user := &domain.User{UserID: uuid.NewString()}

	token, expiresAt, err := svc.GenerateAccessToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	subject, err := svc.ValidateAccessToken(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, user.UserID, subject)
}

func TestTokenService_RejectsForgedSecret(t *testing.T) {
	issuer := services.NewTokenService(tokenConfig(time.Hour))
	verifier := services.NewTokenService(&config.Config{
		JWTSecret:         "a-completely-different-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "blog-backend-test",
	})
	user := &domain.User{UserID: uuid.NewString()}

	token, _, err := issuer.GenerateAccessToken(context.Background(), user)
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(context.Background(), token)
	require.Error(t, err)
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	svc := services.NewTokenService(tokenConfig(-time.Minute))
	user := &domain.User{UserID: uuid.NewString()}

	token, _, err := svc.GenerateAccessToken(context.Background(), user)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(context.Background(), token)
	require.Error(t, err)
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	svc := services.NewTokenService(tokenConfig(time.Hour))

	_, err := svc.ValidateAccessToken(context.Background(), "not-a-jwt")
	require.Error(t, err)
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestGoogleAuthService_Unconfigured(t *testing.T) {
	svc := services.NewGoogleAuthService(&config.Config{})

	_, err := svc.ValidateGoogleIDToken(context.Background(), "some-credential")
	require.Error(t, err)
}
