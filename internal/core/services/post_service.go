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
	"github.com/google/uuid"
)

const maxTitleLength = 100

type postService struct {
	postRepo portsrepo.PostRepositoryFacade
}

// NewPostService creates the post service over the given repository.
func NewPostService(postRepo portsrepo.PostRepositoryFacade) portssvc.PostSvcFacade {
	return &postService{postRepo: postRepo}
}

var _ portssvc.PostSvcFacade = (*postService)(nil)

func (s *postService) CreatePost(ctx context.Context, authorID string, req dto.CreatePostRequest, imageURLs []string) (*domain.Post, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, apperrors.NewValidationError("title and content are required")
	}
	if len([]rune(title)) > maxTitleLength {
		return nil, apperrors.NewValidationError("title must be 100 characters or fewer")
	}

	now := time.Now()
	post := domain.Post{
		PostID:    uuid.NewString(),
		Title:     title,
		Content:   content,
		ImageURLs: imageURLs,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if post.ImageURLs == nil {
		post.ImageURLs = []string{}
	}

	if err := s.postRepo.SavePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	// Re-read so the author display fields are resolved like every other
	// read path.
	return s.getPost(ctx, post.PostID)
}

func (s *postService) ListPosts(ctx context.Context) ([]domain.Post, error) {
	posts, err := s.postRepo.FindPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (s *postService) GetPost(ctx context.Context, postID string) (*domain.Post, error) {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	likers, err := s.postRepo.FindLikers(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve liking users: %w", err)
	}
	post.LikedBy = likers
	return post, nil
}

// getPost fetches a post with author fields resolved but without the
// liking-users list.
func (s *postService) getPost(ctx context.Context, postID string) (*domain.Post, error) {
	post, err := s.postRepo.FindPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("post not found")
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

func (s *postService) UpdatePost(ctx context.Context, postID, actingUserID string, req dto.UpdatePostRequest, newImageURLs []string) (*domain.Post, error) {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !post.CanMutate(actingUserID) {
		return nil, apperrors.NewForbiddenError("only the author may edit this post")
	}

	// Partial update: empty fields keep the existing values.
	if title := strings.TrimSpace(req.Title); title != "" {
		if len([]rune(title)) > maxTitleLength {
			return nil, apperrors.NewValidationError("title must be 100 characters or fewer")
		}
		post.Title = title
	}
	if content := strings.TrimSpace(req.Content); content != "" {
		post.Content = content
	}
	if len(newImageURLs) > 0 {
		post.ImageURLs = append(post.ImageURLs, newImageURLs...)
	}
	post.UpdatedAt = time.Now()

	if err := s.postRepo.UpdatePost(ctx, *post); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("post not found")
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return s.getPost(ctx, postID)
}

func (s *postService) DeletePost(ctx context.Context, postID, actingUserID string) error {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return err
	}
	if !post.CanMutate(actingUserID) {
		return apperrors.NewForbiddenError("only the author may delete this post")
	}

	if err := s.postRepo.DeletePost(ctx, postID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("post not found")
		}
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

func (s *postService) ToggleLike(ctx context.Context, postID, actingUserID string) (*domain.LikeResult, error) {
	if _, err := s.getPost(ctx, postID); err != nil {
		return nil, err
	}

	// Read-then-write with no lock: two concurrent toggles by the same user
	// can race, so exactly-one-flip is best effort. The join-table key still
	// rules out duplicate membership.
	liked, err := s.postRepo.HasLiked(ctx, postID, actingUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to read like state: %w", err)
	}

	if liked {
		err = s.postRepo.RemoveLike(ctx, postID, actingUserID)
	} else {
		err = s.postRepo.AddLike(ctx, postID, actingUserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}

	count, err := s.postRepo.CountLikes(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}

	return &domain.LikeResult{LikeCount: count, Liked: !liked}, nil
}
