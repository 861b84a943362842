package pgsql

import (
	portsrepo "github.com/devlogkr/blog_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	postRepo := newPgxPostRepository(dbPool)
	commentRepo := newPgxCommentRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:    userRepo,
		PostRepo:    postRepo,
		CommentRepo: commentRepo,
	}
}
