package dto

import "github.com/devlogkr/blog_backend/internal/core/domain"

// SignupRequest is the body for POST /api/auth/signup.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required,max=50"`
}

// LoginRequest is the body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginRequest carries the Google Identity Services credential
// (a provider-signed ID token).
type GoogleLoginRequest struct {
	Credential string `json:"credential" binding:"required"`
}

// AuthResponse pairs the user with a freshly issued bearer token.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// NewAuthResponse builds the login/signup response payload.
func NewAuthResponse(user *domain.User, token string) AuthResponse {
	return AuthResponse{User: ToUserResponse(user), Token: token}
}
