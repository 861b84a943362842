package domain

import "time"

// ReactionKind distinguishes the two independent reaction sets on a comment.
type ReactionKind string

const (
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

// Valid reports whether the kind is one of the two known reaction sets.
func (k ReactionKind) Valid() bool {
	return k == ReactionLike || k == ReactionDislike
}

// Comment represents a comment attached to an existing post.
type Comment struct {
	CommentID string    `json:"commentID"`
	PostID    string    `json:"postID"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"authorID"`
	CreatedAt time.Time `json:"createdAt"`

	Author       UserSummary `json:"author"`
	LikeCount    int         `json:"likesCount"`
	DislikeCount int         `json:"dislikesCount"`
}

// CanMutate reports whether the acting user may delete the comment.
func (c Comment) CanMutate(actingUserID string) bool {
	return c.AuthorID == actingUserID
}

// ReactionResult is the outcome of a reaction toggle. Active reports whether
// the acting user is now in the toggled set.
type ReactionResult struct {
	LikeCount    int  `json:"likesCount"`
	DislikeCount int  `json:"dislikesCount"`
	Active       bool `json:"isActive"`
}
