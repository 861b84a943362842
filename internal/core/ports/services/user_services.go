package services

import (
	"context"

	"github.com/devlogkr/blog_backend/internal/core/domain"
	"github.com/devlogkr/blog_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID. Returns apperrors.ErrNotFound via
	// an AppError when no such user exists.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserAuthSvc defines operations for account creation and authentication
type UserAuthSvc interface {
	// Signup creates a new local-credential account. Duplicate email fails
	// with a Conflict AppError.
	Signup(ctx context.Context, req dto.SignupRequest) (*domain.User, error)

	// Authenticate verifies email+password. Unknown email and wrong password
	// are indistinguishable to the caller.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// CreateOAuthUser finds or creates the user for a verified federated
	// identity. A pre-existing email gets the identity attached once.
	CreateOAuthUser(ctx context.Context, name, email, googleID, pictureURL string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserAuthSvc
}
