package models

import "time"

// Comment is the database row model for the comments table. Reactions live
// in the comment_reactions join table keyed by (comment_id, user_id, kind).
type Comment struct {
	CommentID string    `db:"comment_id"`
	PostID    string    `db:"post_id"`
	Content   string    `db:"content"`
	AuthorID  string    `db:"author_id"`
	CreatedAt time.Time `db:"created_at"`

	AuthorName   string `db:"author_name"`
	AuthorEmail  string `db:"author_email"`
	LikeCount    int    `db:"like_count"`
	DislikeCount int    `db:"dislike_count"`
}
