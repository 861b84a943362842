package domain

import "time"

// Post represents a blog post. AuthorID is immutable after creation.
type Post struct {
	PostID    string    `json:"postID"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURLs []string  `json:"images"`
	AuthorID  string    `json:"authorID"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Resolved display fields. Author is populated on every read path;
	// LikedBy only on single-post reads.
	Author    UserSummary   `json:"author"`
	LikeCount int           `json:"likesCount"`
	LikedBy   []UserSummary `json:"likedBy,omitempty"`
}

// CanMutate reports whether the acting user may update or delete the post.
// Only the owner may mutate.
func (p Post) CanMutate(actingUserID string) bool {
	return p.AuthorID == actingUserID
}

// LikeResult is the outcome of a like toggle: the new like-set size and
// whether the acting user is now in the set.
type LikeResult struct {
	LikeCount int  `json:"likesCount"`
	Liked     bool `json:"isLiked"`
}
