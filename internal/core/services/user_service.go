package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/devlogkr/blog_backend/internal/apperrors"
	"github.com/devlogkr/blog_backend/internal/core/domain"
	portsrepo "github.com/devlogkr/blog_backend/internal/core/ports/repositories"
	portssvc "github.com/devlogkr/blog_backend/internal/core/ports/services"
	"github.com/devlogkr/blog_backend/internal/dto"
	"github.com/devlogkr/blog_backend/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the user service over the given repository.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// normalizeEmail lowercases and trims so that uniqueness is
// case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) Signup(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	email := normalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)
	if email == "" || req.Password == "" || name == "" {
		return nil, apperrors.NewValidationError("email, password and name are required")
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		CreatedAt:    time.Now(),
	}

	// The unique index on email is the source of truth for duplicates;
	// no pre-check so concurrent signups cannot slip past.
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("email is already in use")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("email and password are required")
	}

	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same failure as a wrong password; do not leak which one it was.
			return nil, apperrors.NewUnauthorizedError("invalid email or password")
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}

	return user, nil
}

func (s *userService) CreateOAuthUser(ctx context.Context, name, email, googleID, pictureURL string) (*domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || googleID == "" {
		return nil, apperrors.NewValidationError("essential user information missing from provider token")
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user for oauth login: %w", err)
	}

	if user != nil {
		// Attach the federated identity once for a pre-existing email.
		if user.GoogleID == "" {
			if err := s.userRepo.AttachGoogleIdentity(ctx, user.UserID, googleID, pictureURL); err != nil {
				return nil, fmt.Errorf("failed to attach google identity: %w", err)
			}
			user.GoogleID = googleID
			user.ProfilePictureURL = pictureURL
		}
		return user, nil
	}

	// First sight of this email: create the account. The password column is
	// non-null, so store a random hash nobody can log in with.
	throwaway, err := utils.GenerateSecureRandomString(24)
	if err != nil {
		return nil, fmt.Errorf("failed to generate throwaway password: %w", err)
	}
	passwordHash, err := utils.HashPassword(throwaway)
	if err != nil {
		return nil, fmt.Errorf("failed to hash throwaway password: %w", err)
	}

	newUser := domain.User{
		UserID:            uuid.NewString(),
		Email:             email,
		PasswordHash:      passwordHash,
		Name:              strings.TrimSpace(name),
		GoogleID:          googleID,
		ProfilePictureURL: pictureURL,
		CreatedAt:         time.Now(),
	}
	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Either a concurrent first login won the email race, or this
			// google identity is already bound to an account under a
			// different email. One re-read settles the race; a still-missing
			// email means the google_id index fired, which is a conflict,
			// not something a retry can resolve.
			winner, lookupErr := s.userRepo.FindUserByEmail(ctx, email)
			if lookupErr == nil {
				return winner, nil
			}
			if errors.Is(lookupErr, apperrors.ErrNotFound) {
				return nil, apperrors.NewConflictError("google account is already linked to another user")
			}
			return nil, fmt.Errorf("failed to re-read user after duplicate: %w", lookupErr)
		}
		return nil, fmt.Errorf("failed to create oauth user: %w", err)
	}

	return &newUser, nil
}
