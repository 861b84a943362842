package services

import (
	"context"

	"github.com/devlogkr/blog_backend/internal/core/domain"
	"github.com/devlogkr/blog_backend/internal/dto"
)

// CommentReaderSvc defines read operations for comments
type CommentReaderSvc interface {
	// ListComments returns a post's comments, most recent first. The post
	// must exist.
	ListComments(ctx context.Context, postID string) ([]domain.Comment, error)
}

// CommentWriterSvc defines mutating operations for comments
type CommentWriterSvc interface {
	// CreateComment validates and persists a comment against an existing
	// post.
	CreateComment(ctx context.Context, postID, authorID string, req dto.CreateCommentRequest) (*domain.Comment, error)

	// DeleteComment removes the comment after the NotFound/Forbidden guard
	// sequence.
	DeleteComment(ctx context.Context, commentID, actingUserID string) error
}

// CommentReactionSvc defines the independent like/dislike toggles.
type CommentReactionSvc interface {
	ToggleReaction(ctx context.Context, commentID, actingUserID string, kind domain.ReactionKind) (*domain.ReactionResult, error)
}

// CommentSvcFacade combines all comment-related service interfaces
type CommentSvcFacade interface {
	CommentReaderSvc
	CommentWriterSvc
	CommentReactionSvc
}
