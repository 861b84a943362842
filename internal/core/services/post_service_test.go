package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/devlogkr/blog_backend/internal/apperrors"
	"github.com/devlogkr/blog_backend/internal/core/domain"
	portssvc "github.com/devlogkr/blog_backend/internal/core/ports/services"
	"github.com/devlogkr/blog_backend/internal/core/services"
	"github.com/devlogkr/blog_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PostRepository ---
type MockPostRepository struct {
	mock.Mock
	FindPostByIDFn func(ctx context.Context, postID string) (*domain.Post, error)
}

func (m *MockPostRepository) FindPostByID(ctx context.Context, postID string) (*domain.Post, error) {
	if m.FindPostByIDFn != nil {
		return m.FindPostByIDFn(ctx, postID)
	}
	args := m.Called(ctx, postID)
	var post *domain.Post
	if args.Get(0) != nil {
		post = args.Get(0).(*domain.Post)
	}
	return post, args.Error(1)
}

func (m *MockPostRepository) FindPosts(ctx context.Context) ([]domain.Post, error) {
	args := m.Called(ctx)
	var posts []domain.Post
	if args.Get(0) != nil {
		posts = args.Get(0).([]domain.Post)
	}
	return posts, args.Error(1)
}

func (m *MockPostRepository) FindLikers(ctx context.Context, postID string) ([]domain.UserSummary, error) {
	args := m.Called(ctx, postID)
	var likers []domain.UserSummary
	if args.Get(0) != nil {
		likers = args.Get(0).([]domain.UserSummary)
	}
	return likers, args.Error(1)
}

func (m *MockPostRepository) SavePost(ctx context.Context, post domain.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) UpdatePost(ctx context.Context, post domain.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) DeletePost(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockPostRepository) HasLiked(ctx context.Context, postID string, userID string) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) AddLike(ctx context.Context, postID string, userID string) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *MockPostRepository) RemoveLike(ctx context.Context, postID string, userID string) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *MockPostRepository) CountLikes(ctx context.Context, postID string) (int, error) {
	args := m.Called(ctx, postID)
	return args.Int(0), args.Error(1)
}

// --- Test Suite ---
type PostServiceTestSuite struct {
	suite.Suite
	mockPostRepo *MockPostRepository
	service      portssvc.PostSvcFacade
}

func (suite *PostServiceTestSuite) SetupTest() {
	suite.mockPostRepo = new(MockPostRepository)
	suite.service = services.NewPostService(suite.mockPostRepo)
}

func makePost(postID, authorID string) *domain.Post {
	return &domain.Post{
		PostID:    postID,
		Title:     "A title",
		Content:   "Some content",
		ImageURLs: []string{},
		AuthorID:  authorID,
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: time.Now().Add(-time.Hour),
		Author:    domain.UserSummary{UserID: authorID, Name: "Author", Email: "a@b.c"},
	}
}

// --- CreatePost Tests ---

func (suite *PostServiceTestSuite) TestCreatePost_Success() {
	ctx := context.Background()
	authorID := uuid.NewString()
	req := dto.CreatePostRequest{Title: "  My Title  ", Content: "Body text"}

	var savedID string
	suite.mockPostRepo.On("SavePost", ctx, mock.MatchedBy(func(p domain.Post) bool {
		savedID = p.PostID
		return p.Title == "My Title" && p.Content == "Body text" && p.AuthorID == authorID
	})).Return(nil).Once()
	suite.mockPostRepo.FindPostByIDFn = func(ctx context.Context, postID string) (*domain.Post, error) {
		return makePost(postID, authorID), nil
	}

	post, err := suite.service.CreatePost(ctx, authorID, req, nil)

	suite.Require().NoError(err)
	suite.Equal(savedID, post.PostID)
	suite.mockPostRepo.AssertExpectations(suite.T())
}

func (suite *PostServiceTestSuite) TestCreatePost_BlankTitle() {
	ctx := context.Background()

	post, err := suite.service.CreatePost(ctx, uuid.NewString(), dto.CreatePostRequest{Title: "   ", Content: "x"}, nil)

	suite.Require().Error(err)
	suite.Nil(post)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPostRepo.AssertNotCalled(suite.T(), "SavePost")
}

func (suite *PostServiceTestSuite) TestCreatePost_TitleTooLong() {
	ctx := context.Background()
	req := dto.CreatePostRequest{Title: strings.Repeat("x", 101), Content: "body"}

	post, err := suite.service.CreatePost(ctx, uuid.NewString(), req, nil)

	suite.Require().Error(err)
	suite.Nil(post)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- UpdatePost Tests ---

func (suite *PostServiceTestSuite) TestUpdatePost_PartialKeepsExistingFields() {
	ctx := context.Background()
	authorID := uuid.NewString()
	postID := uuid.NewString()
	suite.mockPostRepo.FindPostByIDFn = func(ctx context.Context, id string) (*domain.Post, error) {
		return makePost(postID, authorID), nil
	}

	suite.mockPostRepo.On("UpdatePost", ctx, mock.MatchedBy(func(p domain.Post) bool {
		// Empty title in the request keeps the stored one.
		return p.Title == "A title" && p.Content == "New content"
	})).Return(nil).Once()

	post, err := suite.service.UpdatePost(ctx, postID, authorID, dto.UpdatePostRequest{Content: "New content"}, nil)

	suite.Require().NoError(err)
	suite.NotNil(post)
	suite.mockPostRepo.AssertExpectations(suite.T())
}

func (suite *PostServiceTestSuite) TestUpdatePost_AppendsImages() {
	ctx := context.Background()
	authorID := uuid.NewString()
	postID := uuid.NewString()
	suite.mockPostRepo.FindPostByIDFn = func(ctx context.Context, id string) (*domain.Post, error) {
		p := makePost(postID, authorID)
		p.ImageURLs = []string{"/uploads/old.png"}
		return p, nil
	}

	suite.mockPostRepo.On("UpdatePost", ctx, mock.MatchedBy(func(p domain.Post) bool {
		return len(p.ImageURLs) == 2 && p.ImageURLs[1] == "/uploads/new.png"
	})).Return(nil).Once()

	_, err := suite.service.UpdatePost(ctx, postID, authorID, dto.UpdatePostRequest{}, []string{"/uploads/new.png"})

	suite.Require().NoError(err)
	suite.mockPostRepo.AssertExpectations(suite.T())
}

func (suite *PostServiceTestSuite) TestUpdatePost_NotOwner() {
	ctx := context.Background()
	postID := uuid.NewString()
	suite.mockPostRepo.FindPostByIDFn = func(ctx context.Context, id string) (*domain.Post, error) {
		return makePost(postID, uuid.NewString()), nil
	}

	post, err := suite.service.UpdatePost(ctx, postID, uuid.NewString(), dto.UpdatePostRequest{Title: "hijack"}, nil)

	suite.Require().Error(err)
	suite.Nil(post)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockPostRepo.AssertNotCalled(suite.T(), "UpdatePost")
}

func (suite *PostServiceTestSuite) TestUpdatePost_MissingPostIsNotFoundBeforeOwnership() {
	ctx := context.Background()
	suite.mockPostRepo.FindPostByIDFn = func(ctx context.Context, id string) (*domain.Post, error) {
		return nil, apperrors.ErrNotFound
	}

	post, err := suite.service.UpdatePost(ctx, uuid.NewString(), uuid.NewString(), dto.UpdatePostRequest{}, nil)

	suite.Require().Error(err)
	suite.Nil(post)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- DeletePost Tests ---

func (suite *PostServiceTestSuite) TestDeletePost_Success() {
	ctx := context.Background()
	authorID := uuid.NewString()
	postID := uuid.NewString()
	suite.mockPostRepo.FindPostByIDFn = func(ctx context.Context, id string) (*domain.Post, error) {
		return makePost(postID, authorID), nil
	}
	suite.mockPostRepo.On("DeletePost", ctx, postID).Return(nil).Once()

	err := suite.service.DeletePost(ctx, postID, authorID)

	suite.Require().NoError(err)
	suite.mockPostRepo.AssertExpectations(suite.T())
}

func (suite *PostServiceTestSuite) TestDeletePost_NotOwner() {
	ctx := context.Background()
	postID := uuid.NewString()
	suite.mockPostRepo.FindPostByIDFn = func(ctx context.Context, id string) (*domain.Post, error) {
		return makePost(postID, uuid.NewString()), nil
	}

	err := suite.service.DeletePost(ctx, postID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockPostRepo.AssertNotCalled(suite.T(), "DeletePost")
}

// --- ToggleLike Tests ---

func (suite *PostServiceTestSuite) TestToggleLike_AddsWhenAbsent() {
	ctx := context.Background()
	userID := uuid.NewString()
	postID := uuid.NewString()
	suite.mockPostRepo.FindPostByIDFn = func(ctx context.Context, id string) (*domain.Post, error) {
		return makePost(postID, uuid.NewString()), nil
	}

	suite.mockPostRepo.On("HasLiked", ctx, postID, userID).Return(false, nil).Once()
	suite.mockPostRepo.On("AddLike", ctx, postID, userID).Return(nil).Once()
	suite.mockPostRepo.On("CountLikes", ctx, postID).Return(3, nil).Once()

	result, err := suite.service.ToggleLike(ctx, postID, userID)

	suite.Require().NoError(err)
	suite.True(result.Liked)
	suite.Equal(3, result.LikeCount)
	suite.mockPostRepo.AssertExpectations(suite.T())
}

func (suite *PostServiceTestSuite) TestToggleLike_RemovesWhenPresent() {
	ctx := context.Background()
	userID := uuid.NewString()
	postID := uuid.NewString()
	suite.mockPostRepo.FindPostByIDFn = func(ctx context.Context, id string) (*domain.Post, error) {
		return makePost(postID, uuid.NewString()), nil
	}

	suite.mockPostRepo.On("HasLiked", ctx, postID, userID).Return(true, nil).Once()
	suite.mockPostRepo.On("RemoveLike", ctx, postID, userID).Return(nil).Once()
	suite.mockPostRepo.On("CountLikes", ctx, postID).Return(0, nil).Once()

	result, err := suite.service.ToggleLike(ctx, postID, userID)

	suite.Require().NoError(err)
	suite.False(result.Liked)
	suite.Equal(0, result.LikeCount)
	suite.mockPostRepo.AssertExpectations(suite.T())
}

func (suite *PostServiceTestSuite) TestToggleLike_MissingPost() {
	ctx := context.Background()
	suite.mockPostRepo.FindPostByIDFn = func(ctx context.Context, id string) (*domain.Post, error) {
		return nil, apperrors.ErrNotFound
	}

	result, err := suite.service.ToggleLike(ctx, uuid.NewString(), uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPostRepo.AssertNotCalled(suite.T(), "HasLiked")
}

// --- GetPost Tests ---

func (suite *PostServiceTestSuite) TestGetPost_IncludesLikers() {
	ctx := context.Background()
	postID := uuid.NewString()
	suite.mockPostRepo.FindPostByIDFn = func(ctx context.Context, id string) (*domain.Post, error) {
		return makePost(postID, uuid.NewString()), nil
	}
	likers := []domain.UserSummary{{UserID: uuid.NewString(), Name: "Fan"}}
	suite.mockPostRepo.On("FindLikers", ctx, postID).Return(likers, nil).Once()

	post, err := suite.service.GetPost(ctx, postID)

	suite.Require().NoError(err)
	suite.Len(post.LikedBy, 1)
	suite.mockPostRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestPostService(t *testing.T) {
	suite.Run(t, new(PostServiceTestSuite))
}
