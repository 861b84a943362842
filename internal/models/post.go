package models

import "time"

// Post is the database row model for the posts table. Like membership lives
// in the post_likes join table; its primary key rules out duplicate entries.
type Post struct {
	PostID    string    `db:"post_id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	ImageURLs []string  `db:"image_urls"`
	AuthorID  string    `db:"author_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	// Joined author display fields.
	AuthorName  string `db:"author_name"`
	AuthorEmail string `db:"author_email"`
	LikeCount   int    `db:"like_count"`
}
