package repositories

// RepositoryProvider holds one instance of every repository facade. Built by
// the composition root and handed to the service container.
type RepositoryProvider struct {
	UserRepo    UserRepositoryFacade
	PostRepo    PostRepositoryFacade
	CommentRepo CommentRepositoryFacade
}
