package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/devlogkr/blog_backend/internal/apperrors"
	"github.com/devlogkr/blog_backend/internal/core/domain"
	portsrepo "github.com/devlogkr/blog_backend/internal/core/ports/repositories"
	"github.com/devlogkr/blog_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// Helper to convert domain.User to models.User
func toModelUser(d domain.User) models.User {
	return models.User{
		UserID:            d.UserID,
		Email:             d.Email,
		PasswordHash:      d.PasswordHash,
		Name:              d.Name,
		GoogleID:          sql.NullString{String: d.GoogleID, Valid: d.GoogleID != ""},
		ProfilePictureURL: sql.NullString{String: d.ProfilePictureURL, Valid: d.ProfilePictureURL != ""},
		CreatedAt:         d.CreatedAt,
		DeletedAt:         d.DeletedAt,
	}
}

// Helper to convert models.User to domain.User
func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:            m.UserID,
		Email:             m.Email,
		PasswordHash:      m.PasswordHash,
		Name:              m.Name,
		GoogleID:          m.GoogleID.String,
		ProfilePictureURL: m.ProfilePictureURL.String,
		CreatedAt:         m.CreatedAt,
		DeletedAt:         m.DeletedAt,
	}
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := toModelUser(user)
	query := `
        INSERT INTO users (user_id, email, password_hash, name, google_id, profile_picture_url, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		modelUser.UserID,
		modelUser.Email,
		modelUser.PasswordHash,
		modelUser.Name,
		modelUser.GoogleID,
		modelUser.ProfilePictureURL,
		modelUser.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, email, password_hash, name, google_id, profile_picture_url, created_at, deleted_at
		FROM users
		WHERE user_id = $1 AND deleted_at IS NULL;
	`
	return r.scanOneUser(ctx, query, userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT user_id, email, password_hash, name, google_id, profile_picture_url, created_at, deleted_at
		FROM users
		WHERE email = $1 AND deleted_at IS NULL;
	`
	return r.scanOneUser(ctx, query, email)
}

func (r *PgxUserRepository) scanOneUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var modelUser models.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&modelUser.UserID,
		&modelUser.Email,
		&modelUser.PasswordHash,
		&modelUser.Name,
		&modelUser.GoogleID,
		&modelUser.ProfilePictureURL,
		&modelUser.CreatedAt,
		&modelUser.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	domainUser := toDomainUser(modelUser)
	return &domainUser, nil
}

func (r *PgxUserRepository) AttachGoogleIdentity(ctx context.Context, userID string, googleID string, pictureURL string) error {
	query := `
        UPDATE users
        SET google_id = $1, profile_picture_url = $2
        WHERE user_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		sql.NullString{String: googleID, Valid: googleID != ""},
		sql.NullString{String: pictureURL, Valid: pictureURL != ""},
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to attach google identity: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
