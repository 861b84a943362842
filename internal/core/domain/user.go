package domain

import "time"

// User represents a user of the application in the domain.
// PasswordHash never leaves the service layer; DTO mapping strips it.
type User struct {
	UserID            string     `json:"userID"`
	Email             string     `json:"email"`
	PasswordHash      string     `json:"-"`
	Name              string     `json:"name"`
	GoogleID          string     `json:"-"`
	ProfilePictureURL string     `json:"profilePicture,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	DeletedAt         *time.Time `json:"deletedAt,omitempty"`
}

// UserSummary is the subset of user fields resolved onto posts and comments
// (author / liking users). Never includes credentials.
type UserSummary struct {
	UserID string `json:"userID"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Summary returns the display-field view of the user.
func (u User) Summary() UserSummary {
	return UserSummary{UserID: u.UserID, Name: u.Name, Email: u.Email}
}
