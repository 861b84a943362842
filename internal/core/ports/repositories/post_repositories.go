package repositories

import (
	"context"

	"github.com/devlogkr/blog_backend/internal/core/domain"
)

// PostReader defines read operations for post data
type PostReader interface {
	// FindPostByID retrieves a post with author display fields resolved.
	FindPostByID(ctx context.Context, postID string) (*domain.Post, error)

	// FindPosts retrieves all posts, most recently created first, with
	// author display fields and like counts resolved.
	FindPosts(ctx context.Context) ([]domain.Post, error)

	// FindLikers returns the display fields of users who liked the post.
	FindLikers(ctx context.Context, postID string) ([]domain.UserSummary, error)
}

// PostWriter defines write operations for post data
type PostWriter interface {
	// SavePost persists a new post.
	SavePost(ctx context.Context, post domain.Post) error

	// UpdatePost updates title, content, image URLs and updated_at.
	UpdatePost(ctx context.Context, post domain.Post) error

	// DeletePost removes a post; comments and likes cascade.
	DeletePost(ctx context.Context, postID string) error
}

// PostLiker defines like-set membership operations.
type PostLiker interface {
	// HasLiked reports whether the user is in the post's like set.
	HasLiked(ctx context.Context, postID string, userID string) (bool, error)

	// AddLike inserts the user into the like set. A duplicate insert is a
	// no-op rather than an error.
	AddLike(ctx context.Context, postID string, userID string) error

	// RemoveLike removes the user from the like set.
	RemoveLike(ctx context.Context, postID string, userID string) error

	// CountLikes returns the current like-set size.
	CountLikes(ctx context.Context, postID string) (int, error)
}

// PostRepositoryFacade combines all post-related repository interfaces.
type PostRepositoryFacade interface {
	PostReader
	PostWriter
	PostLiker
}
