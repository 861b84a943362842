package dto

import (
	"time"

	"github.com/devlogkr/blog_backend/internal/core/domain"
)

// UserResponse is the public view of a user. The password hash is never
// part of any response DTO.
type UserResponse struct {
	UserID         string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain user to its public view.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:         user.UserID,
		Email:          user.Email,
		Name:           user.Name,
		ProfilePicture: user.ProfilePictureURL,
		CreatedAt:      user.CreatedAt,
	}
}
