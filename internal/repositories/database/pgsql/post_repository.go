package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/devlogkr/blog_backend/internal/apperrors"
	"github.com/devlogkr/blog_backend/internal/core/domain"
	portsrepo "github.com/devlogkr/blog_backend/internal/core/ports/repositories"
	"github.com/devlogkr/blog_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPostRepository struct {
	db *pgxpool.Pool
}

func newPgxPostRepository(db *pgxpool.Pool) portsrepo.PostRepositoryFacade {
	return &PgxPostRepository{db: db}
}

// Ensure PgxPostRepository implements portsrepo.PostRepositoryFacade
var _ portsrepo.PostRepositoryFacade = (*PgxPostRepository)(nil)

// Helper to convert models.Post to domain.Post
func toDomainPost(m models.Post) domain.Post {
	return domain.Post{
		PostID:    m.PostID,
		Title:     m.Title,
		Content:   m.Content,
		ImageURLs: m.ImageURLs,
		AuthorID:  m.AuthorID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Author: domain.UserSummary{
			UserID: m.AuthorID,
			Name:   m.AuthorName,
			Email:  m.AuthorEmail,
		},
		LikeCount: m.LikeCount,
	}
}

// postSelect joins the author display fields and like count onto each row.
const postSelect = `
	SELECT p.post_id, p.title, p.content, p.image_urls, p.author_id,
	       p.created_at, p.updated_at,
	       u.name AS author_name, u.email AS author_email,
	       (SELECT COUNT(*) FROM post_likes pl WHERE pl.post_id = p.post_id) AS like_count
	FROM posts p
	JOIN users u ON u.user_id = p.author_id
`

func scanPostRow(row pgx.Row) (models.Post, error) {
	var m models.Post
	err := row.Scan(
		&m.PostID,
		&m.Title,
		&m.Content,
		&m.ImageURLs,
		&m.AuthorID,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.AuthorName,
		&m.AuthorEmail,
		&m.LikeCount,
	)
	return m, err
}

func (r *PgxPostRepository) SavePost(ctx context.Context, post domain.Post) error {
	query := `
        INSERT INTO posts (post_id, title, content, image_urls, author_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		post.PostID,
		post.Title,
		post.Content,
		post.ImageURLs,
		post.AuthorID,
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}
	return nil
}

func (r *PgxPostRepository) FindPostByID(ctx context.Context, postID string) (*domain.Post, error) {
	query := postSelect + ` WHERE p.post_id = $1;`
	m, err := scanPostRow(r.db.QueryRow(ctx, query, postID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find post by ID %s: %w", postID, err)
	}
	domainPost := toDomainPost(m)
	return &domainPost, nil
}

func (r *PgxPostRepository) FindPosts(ctx context.Context) ([]domain.Post, error) {
	query := postSelect + ` ORDER BY p.created_at DESC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		m, err := scanPostRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, toDomainPost(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", rows.Err())
	}
	return posts, nil
}

func (r *PgxPostRepository) FindLikers(ctx context.Context, postID string) ([]domain.UserSummary, error) {
	query := `
        SELECT u.user_id, u.name, u.email
        FROM post_likes pl
        JOIN users u ON u.user_id = pl.user_id
        WHERE pl.post_id = $1
        ORDER BY pl.created_at;
    `
	rows, err := r.db.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query post likers: %w", err)
	}
	defer rows.Close()

	likers := []domain.UserSummary{}
	for rows.Next() {
		var s domain.UserSummary
		if err := rows.Scan(&s.UserID, &s.Name, &s.Email); err != nil {
			return nil, fmt.Errorf("failed to scan liker row: %w", err)
		}
		likers = append(likers, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating liker rows: %w", rows.Err())
	}
	return likers, nil
}

func (r *PgxPostRepository) UpdatePost(ctx context.Context, post domain.Post) error {
	// author_id is deliberately absent: ownership is immutable.
	query := `
        UPDATE posts
        SET title = $1, content = $2, image_urls = $3, updated_at = $4
        WHERE post_id = $5;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		post.Title,
		post.Content,
		post.ImageURLs,
		post.UpdatedAt,
		post.PostID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update post query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("post not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxPostRepository) DeletePost(ctx context.Context, postID string) error {
	query := `DELETE FROM posts WHERE post_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("post not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxPostRepository) HasLiked(ctx context.Context, postID string, userID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM post_likes WHERE post_id = $1 AND user_id = $2);`
	var liked bool
	if err := r.db.QueryRow(ctx, query, postID, userID).Scan(&liked); err != nil {
		return false, fmt.Errorf("failed to check like membership: %w", err)
	}
	return liked, nil
}

func (r *PgxPostRepository) AddLike(ctx context.Context, postID string, userID string) error {
	// ON CONFLICT keeps the no-duplicate-membership invariant even when two
	// toggles race.
	query := `
        INSERT INTO post_likes (post_id, user_id, created_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (post_id, user_id) DO NOTHING;
    `
	if _, err := r.db.Exec(ctx, query, postID, userID); err != nil {
		return fmt.Errorf("failed to add like: %w", err)
	}
	return nil
}

func (r *PgxPostRepository) RemoveLike(ctx context.Context, postID string, userID string) error {
	query := `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2;`
	if _, err := r.db.Exec(ctx, query, postID, userID); err != nil {
		return fmt.Errorf("failed to remove like: %w", err)
	}
	return nil
}

func (r *PgxPostRepository) CountLikes(ctx context.Context, postID string) (int, error) {
	query := `SELECT COUNT(*) FROM post_likes WHERE post_id = $1;`
	var count int
	if err := r.db.QueryRow(ctx, query, postID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}
