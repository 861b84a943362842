package models

import (
	"database/sql"
	"time"
)

// User is the database row model for the users table.
type User struct {
	UserID            string         `db:"user_id"`
	Email             string         `db:"email"`
	PasswordHash      string         `db:"password_hash"`
	Name              string         `db:"name"`
	GoogleID          sql.NullString `db:"google_id"`
	ProfilePictureURL sql.NullString `db:"profile_picture_url"`
	CreatedAt         time.Time      `db:"created_at"`
	DeletedAt         *time.Time     `db:"deleted_at"`
}
