package dto

import (
	"time"

	"github.com/devlogkr/blog_backend/internal/core/domain"
)

// CreateCommentRequest is the body for POST /api/posts/:id/comments.
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,notblank,max=500"`
}

// CommentResponse is the public view of a comment.
type CommentResponse struct {
	CommentID    string         `json:"id"`
	PostID       string         `json:"postID"`
	Content      string         `json:"content"`
	Author       AuthorResponse `json:"author"`
	LikeCount    int            `json:"likesCount"`
	DislikeCount int            `json:"dislikesCount"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// ListCommentsResponse wraps the comment list with its size.
type ListCommentsResponse struct {
	Comments []CommentResponse `json:"comments"`
	Count    int               `json:"count"`
}

// ToggleReactionResponse reports the outcome of a like or dislike toggle.
type ToggleReactionResponse struct {
	LikesCount    int  `json:"likesCount"`
	DislikesCount int  `json:"dislikesCount"`
	IsActive      bool `json:"isActive"`
}

// ToCommentResponse converts a domain comment to its public view.
func ToCommentResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		CommentID:    comment.CommentID,
		PostID:       comment.PostID,
		Content:      comment.Content,
		Author:       toAuthorResponse(comment.Author),
		LikeCount:    comment.LikeCount,
		DislikeCount: comment.DislikeCount,
		CreatedAt:    comment.CreatedAt,
	}
}

// ToListCommentsResponse converts a slice of domain comments.
func ToListCommentsResponse(comments []domain.Comment) ListCommentsResponse {
	out := make([]CommentResponse, len(comments))
	for i := range comments {
		out[i] = ToCommentResponse(&comments[i])
	}
	return ListCommentsResponse{Comments: out, Count: len(out)}
}
