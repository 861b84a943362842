package services

import (
	"context"

	"github.com/devlogkr/blog_backend/internal/core/domain"
	"github.com/devlogkr/blog_backend/internal/dto"
)

// PostReaderSvc defines read operations for posts
type PostReaderSvc interface {
	// ListPosts returns all posts, most recently created first.
	ListPosts(ctx context.Context) ([]domain.Post, error)

	// GetPost returns one post with author and liking users resolved.
	GetPost(ctx context.Context, postID string) (*domain.Post, error)
}

// PostWriterSvc defines mutating operations for posts. Every mutation
// enforces the ownership rule.
type PostWriterSvc interface {
	// CreatePost validates and persists a new post owned by authorID.
	CreatePost(ctx context.Context, authorID string, req dto.CreatePostRequest, imageURLs []string) (*domain.Post, error)

	// UpdatePost applies non-empty fields from the patch only; empty fields
	// leave existing values unchanged. Newly uploaded image URLs are
	// appended.
	UpdatePost(ctx context.Context, postID, actingUserID string, req dto.UpdatePostRequest, newImageURLs []string) (*domain.Post, error)

	// DeletePost removes the post after the NotFound/Forbidden guard
	// sequence.
	DeletePost(ctx context.Context, postID, actingUserID string) error
}

// PostLikeSvc defines the idempotent like toggle.
type PostLikeSvc interface {
	// ToggleLike flips the acting user's like-set membership and returns
	// the resulting state.
	ToggleLike(ctx context.Context, postID, actingUserID string) (*domain.LikeResult, error)
}

// PostSvcFacade combines all post-related service interfaces
type PostSvcFacade interface {
	PostReaderSvc
	PostWriterSvc
	PostLikeSvc
}
