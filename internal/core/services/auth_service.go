package services

import (
	"context"
	"fmt"
	"time"

	"github.com/devlogkr/blog_backend/internal/apperrors"
	"github.com/devlogkr/blog_backend/internal/core/domain"
	portssvc "github.com/devlogkr/blog_backend/internal/core/ports/services"
	"github.com/devlogkr/blog_backend/internal/platform/config"
	"github.com/devlogkr/blog_backend/internal/utils"
	"google.golang.org/api/idtoken"
)

type tokenService struct {
	secret string
	expiry time.Duration
	issuer string
}

// NewTokenService creates the JWT access token service from config.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{
		secret: cfg.JWTSecret,
		expiry: cfg.JWTExpiryDuration,
		issuer: cfg.JWTIssuer,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

func (s *tokenService) GenerateAccessToken(_ context.Context, user *domain.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.expiry)
	token, err := utils.GenerateJWT(user.UserID, s.secret, s.expiry, s.issuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, expiresAt, nil
}

func (s *tokenService) ValidateAccessToken(_ context.Context, tokenString string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(tokenString, s.secret)
	if err != nil {
		return "", apperrors.NewUnauthorizedError("invalid or expired token")
	}
	if claims.Subject == "" {
		return "", apperrors.NewUnauthorizedError("invalid or expired token")
	}
	return claims.Subject, nil
}

type googleAuthService struct {
	clientID string
}

// NewGoogleAuthService creates the federated login verifier. The audience
// check binds accepted tokens to this application's OAuth client.
func NewGoogleAuthService(cfg *config.Config) portssvc.GoogleAuthSvcFacade {
	return &googleAuthService{clientID: cfg.GoogleClientID}
}

var _ portssvc.GoogleAuthSvcFacade = (*googleAuthService)(nil)

func (s *googleAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if s.clientID == "" {
		return nil, apperrors.NewInternalServerError("google login is not configured")
	}
	payload, err := idtoken.Validate(ctx, idTokenString, s.clientID)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid google credential")
	}
	return payload, nil
}
