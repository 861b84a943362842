package repositories

import (
	"context"

	"github.com/devlogkr/blog_backend/internal/core/domain"
)

// CommentReader defines read operations for comment data
type CommentReader interface {
	// FindCommentByID retrieves a single comment with author and reaction
	// counts resolved.
	FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error)

	// FindCommentsByPost retrieves a post's comments, most recent first.
	FindCommentsByPost(ctx context.Context, postID string) ([]domain.Comment, error)
}

// CommentWriter defines write operations for comment data
type CommentWriter interface {
	// SaveComment persists a new comment.
	SaveComment(ctx context.Context, comment domain.Comment) error

	// DeleteComment removes a comment and its reactions.
	DeleteComment(ctx context.Context, commentID string) error
}

// CommentReactor defines reaction-set membership operations. Like and
// dislike sets toggle independently.
type CommentReactor interface {
	HasReacted(ctx context.Context, commentID string, userID string, kind domain.ReactionKind) (bool, error)
	AddReaction(ctx context.Context, commentID string, userID string, kind domain.ReactionKind) error
	RemoveReaction(ctx context.Context, commentID string, userID string, kind domain.ReactionKind) error
	CountReactions(ctx context.Context, commentID string, kind domain.ReactionKind) (int, error)
}

// CommentRepositoryFacade combines all comment-related repository interfaces.
type CommentRepositoryFacade interface {
	CommentReader
	CommentWriter
	CommentReactor
}
