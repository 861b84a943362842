package services

import (
	"fmt"

	portsrepo "github.com/devlogkr/blog_backend/internal/core/ports/repositories"
	portssvc "github.com/devlogkr/blog_backend/internal/core/ports/services"
	"github.com/devlogkr/blog_backend/internal/platform/config"
)

// NewServiceContainer wires every application service over the repository
// provider and configuration.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	uploader, err := NewUploaderService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create uploader service: %w", err)
	}

	return &portssvc.ServiceContainer{
		User:       NewUserService(repos.UserRepo),
		Post:       NewPostService(repos.PostRepo),
		Comment:    NewCommentService(repos.CommentRepo, repos.PostRepo),
		Token:      NewTokenService(cfg),
		GoogleAuth: NewGoogleAuthService(cfg),
		Uploader:   uploader,
	}, nil
}
