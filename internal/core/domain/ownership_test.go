package domain_test

import (
	"testing"

	"github.com/devlogkr/blog_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestPostCanMutate(t *testing.T) {
	post := domain.Post{AuthorID: "author-1"}

	assert.True(t, post.CanMutate("author-1"))
	assert.False(t, post.CanMutate("someone-else"))
	assert.False(t, post.CanMutate(""))
}

func TestCommentCanMutate(t *testing.T) {
	comment := domain.Comment{AuthorID: "author-2"}

	assert.True(t, comment.CanMutate("author-2"))
	assert.False(t, comment.CanMutate("author-1"))
}

func TestReactionKindValid(t *testing.T) {
	assert.True(t, domain.ReactionLike.Valid())
	assert.True(t, domain.ReactionDislike.Valid())
	assert.False(t, domain.ReactionKind("love").Valid())
	assert.False(t, domain.ReactionKind("").Valid())
}
