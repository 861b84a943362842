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

const maxCommentLength = 500

type commentService struct {
	commentRepo portsrepo.CommentRepositoryFacade
	postRepo    portsrepo.PostRepositoryFacade
}

// NewCommentService creates the comment service. The post repository is
// needed to anchor comments to existing posts.
func NewCommentService(commentRepo portsrepo.CommentRepositoryFacade, postRepo portsrepo.PostRepositoryFacade) portssvc.CommentSvcFacade {
	return &commentService{commentRepo: commentRepo, postRepo: postRepo}
}

var _ portssvc.CommentSvcFacade = (*commentService)(nil)

func (s *commentService) ensurePostExists(ctx context.Context, postID string) error {
	if _, err := s.postRepo.FindPostByID(ctx, postID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("post not found")
		}
		return fmt.Errorf("failed to check post existence: %w", err)
	}
	return nil
}

func (s *commentService) ListComments(ctx context.Context, postID string) ([]domain.Comment, error) {
	if err := s.ensurePostExists(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FindCommentsByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

func (s *commentService) CreateComment(ctx context.Context, postID, authorID string, req dto.CreateCommentRequest) (*domain.Comment, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.NewValidationError("comment content is required")
	}
	if len([]rune(content)) > maxCommentLength {
		return nil, apperrors.NewValidationError("comment must be 500 characters or fewer")
	}

	if err := s.ensurePostExists(ctx, postID); err != nil {
		return nil, err
	}

	comment := domain.Comment{
		CommentID: uuid.NewString(),
		PostID:    postID,
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
	}
	if err := s.commentRepo.SaveComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return s.getComment(ctx, comment.CommentID)
}

func (s *commentService) getComment(ctx context.Context, commentID string) (*domain.Comment, error) {
	comment, err := s.commentRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("comment not found")
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return comment, nil
}

func (s *commentService) DeleteComment(ctx context.Context, commentID, actingUserID string) error {
	comment, err := s.getComment(ctx, commentID)
	if err != nil {
		return err
	}
	if !comment.CanMutate(actingUserID) {
		return apperrors.NewForbiddenError("only the author may delete this comment")
	}

	if err := s.commentRepo.DeleteComment(ctx, commentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("comment not found")
		}
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

func (s *commentService) ToggleReaction(ctx context.Context, commentID, actingUserID string, kind domain.ReactionKind) (*domain.ReactionResult, error) {
	if !kind.Valid() {
		return nil, apperrors.NewValidationError("unknown reaction kind")
	}
	if _, err := s.getComment(ctx, commentID); err != nil {
		return nil, err
	}

	// Same best-effort toggle as post likes. Likes and dislikes are
	// independent sets, so a user can hold both at once.
	active, err := s.commentRepo.HasReacted(ctx, commentID, actingUserID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to read reaction state: %w", err)
	}

	if active {
		err = s.commentRepo.RemoveReaction(ctx, commentID, actingUserID, kind)
	} else {
		err = s.commentRepo.AddReaction(ctx, commentID, actingUserID, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to toggle reaction: %w", err)
	}

	likes, err := s.commentRepo.CountReactions(ctx, commentID, domain.ReactionLike)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}
	dislikes, err := s.commentRepo.CountReactions(ctx, commentID, domain.ReactionDislike)
	if err != nil {
		return nil, fmt.Errorf("failed to count dislikes: %w", err)
	}

	return &domain.ReactionResult{
		LikeCount:    likes,
		DislikeCount: dislikes,
		Active:       !active,
	}, nil
}
