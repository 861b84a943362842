package dto

import (
	"time"

	"github.com/devlogkr/blog_backend/internal/core/domain"
)

// CreatePostRequest is the body for POST /api/posts. Fields bind from JSON
// or from multipart form fields when images accompany the request.
type CreatePostRequest struct {
	Title   string `json:"title" form:"title" binding:"required,notblank,max=100"`
	Content string `json:"content" form:"content" binding:"required,notblank"`
}

// UpdatePostRequest is the body for PUT /api/posts/:id. Empty fields leave
// the existing values unchanged (partial update, not replace).
type UpdatePostRequest struct {
	Title   string `json:"title" form:"title" binding:"omitempty,max=100"`
	Content string `json:"content" form:"content"`
}

// AuthorResponse is the resolved display view of a post or comment author.
type AuthorResponse struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// PostResponse is the public view of a post.
type PostResponse struct {
	PostID    string           `json:"id"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	Images    []string         `json:"images"`
	Author    AuthorResponse   `json:"author"`
	LikeCount int              `json:"likesCount"`
	LikedBy   []AuthorResponse `json:"likedBy,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// ListPostsResponse wraps the post list with its size.
type ListPostsResponse struct {
	Posts []PostResponse `json:"posts"`
	Count int            `json:"count"`
}

// ToggleLikeResponse reports the outcome of a like toggle.
type ToggleLikeResponse struct {
	LikesCount int  `json:"likesCount"`
	IsLiked    bool `json:"isLiked"`
}

func toAuthorResponse(s domain.UserSummary) AuthorResponse {
	return AuthorResponse{UserID: s.UserID, Name: s.Name, Email: s.Email}
}

// ToPostResponse converts a domain post to its public view.
func ToPostResponse(post *domain.Post) PostResponse {
	resp := PostResponse{
		PostID:    post.PostID,
		Title:     post.Title,
		Content:   post.Content,
		Images:    post.ImageURLs,
		Author:    toAuthorResponse(post.Author),
		LikeCount: post.LikeCount,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
	if resp.Images == nil {
		resp.Images = []string{}
	}
	for _, liker := range post.LikedBy {
		resp.LikedBy = append(resp.LikedBy, toAuthorResponse(liker))
	}
	return resp
}

// ToListPostsResponse converts a slice of domain posts.
func ToListPostsResponse(posts []domain.Post) ListPostsResponse {
	out := make([]PostResponse, len(posts))
	for i := range posts {
		out[i] = ToPostResponse(&posts[i])
	}
	return ListPostsResponse{Posts: out, Count: len(out)}
}
