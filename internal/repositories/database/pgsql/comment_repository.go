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

type PgxCommentRepository struct {
	db *pgxpool.Pool
}

func newPgxCommentRepository(db *pgxpool.Pool) portsrepo.CommentRepositoryFacade {
	return &PgxCommentRepository{db: db}
}

// Ensure PgxCommentRepository implements portsrepo.CommentRepositoryFacade
var _ portsrepo.CommentRepositoryFacade = (*PgxCommentRepository)(nil)

func toDomainComment(m models.Comment) domain.Comment {
	return domain.Comment{
		CommentID: m.CommentID,
		PostID:    m.PostID,
		Content:   m.Content,
		AuthorID:  m.AuthorID,
		CreatedAt: m.CreatedAt,
		Author: domain.UserSummary{
			UserID: m.AuthorID,
			Name:   m.AuthorName,
			Email:  m.AuthorEmail,
		},
		LikeCount:    m.LikeCount,
		DislikeCount: m.DislikeCount,
	}
}

const commentSelect = `
	SELECT c.comment_id, c.post_id, c.content, c.author_id, c.created_at,
	       u.name AS author_name, u.email AS author_email,
	       (SELECT COUNT(*) FROM comment_reactions cr WHERE cr.comment_id = c.comment_id AND cr.kind = 'like') AS like_count,
	       (SELECT COUNT(*) FROM comment_reactions cr WHERE cr.comment_id = c.comment_id AND cr.kind = 'dislike') AS dislike_count
	FROM comments c
	JOIN users u ON u.user_id = c.author_id
`

func scanCommentRow(row pgx.Row) (models.Comment, error) {
	var m models.Comment
	err := row.Scan(
		&m.CommentID,
		&m.PostID,
		&m.Content,
		&m.AuthorID,
		&m.CreatedAt,
		&m.AuthorName,
		&m.AuthorEmail,
		&m.LikeCount,
		&m.DislikeCount,
	)
	return m, err
}

func (r *PgxCommentRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	query := `
        INSERT INTO comments (comment_id, post_id, content, author_id, created_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.db.Exec(ctx, query,
		comment.CommentID,
		comment.PostID,
		comment.Content,
		comment.AuthorID,
		comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}
	return nil
}

func (r *PgxCommentRepository) FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	query := commentSelect + ` WHERE c.comment_id = $1;`
	m, err := scanCommentRow(r.db.QueryRow(ctx, query, commentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find comment by ID %s: %w", commentID, err)
	}
	domainComment := toDomainComment(m)
	return &domainComment, nil
}

func (r *PgxCommentRepository) FindCommentsByPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	query := commentSelect + ` WHERE c.post_id = $1 ORDER BY c.created_at DESC;`
	rows, err := r.db.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		m, err := scanCommentRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, toDomainComment(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", rows.Err())
	}
	return comments, nil
}

func (r *PgxCommentRepository) DeleteComment(ctx context.Context, commentID string) error {
	query := `DELETE FROM comments WHERE comment_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("comment not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxCommentRepository) HasReacted(ctx context.Context, commentID string, userID string, kind domain.ReactionKind) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM comment_reactions WHERE comment_id = $1 AND user_id = $2 AND kind = $3);`
	var reacted bool
	if err := r.db.QueryRow(ctx, query, commentID, userID, string(kind)).Scan(&reacted); err != nil {
		return false, fmt.Errorf("failed to check reaction membership: %w", err)
	}
	return reacted, nil
}

func (r *PgxCommentRepository) AddReaction(ctx context.Context, commentID string, userID string, kind domain.ReactionKind) error {
	query := `
        INSERT INTO comment_reactions (comment_id, user_id, kind, created_at)
        VALUES ($1, $2, $3, NOW())
        ON CONFLICT (comment_id, user_id, kind) DO NOTHING;
    `
	if _, err := r.db.Exec(ctx, query, commentID, userID, string(kind)); err != nil {
		return fmt.Errorf("failed to add reaction: %w", err)
	}
	return nil
}

func (r *PgxCommentRepository) RemoveReaction(ctx context.Context, commentID string, userID string, kind domain.ReactionKind) error {
	query := `DELETE FROM comment_reactions WHERE comment_id = $1 AND user_id = $2 AND kind = $3;`
	if _, err := r.db.Exec(ctx, query, commentID, userID, string(kind)); err != nil {
		return fmt.Errorf("failed to remove reaction: %w", err)
	}
	return nil
}

func (r *PgxCommentRepository) CountReactions(ctx context.Context, commentID string, kind domain.ReactionKind) (int, error) {
	query := `SELECT COUNT(*) FROM comment_reactions WHERE comment_id = $1 AND kind = $2;`
	var count int
	if err := r.db.QueryRow(ctx, query, commentID, string(kind)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count reactions: %w", err)
	}
	return count, nil
}
