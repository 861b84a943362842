package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/devlogkr/blog_backend/internal/core/domain"
	portssvc "github.com/devlogkr/blog_backend/internal/core/ports/services"
	"github.com/devlogkr/blog_backend/internal/core/services"
	"github.com/devlogkr/blog_backend/internal/dto"
	"github.com/devlogkr/blog_backend/internal/handlers"
	"github.com/devlogkr/blog_backend/internal/middleware"
	"github.com/devlogkr/blog_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"google.golang.org/api/idtoken"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Signup(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) CreateOAuthUser(ctx context.Context, name, email, googleID, pictureURL string) (*domain.User, error) {
	args := m.Called(ctx, name, email, googleID, pictureURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock PostService ---
type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, authorID string, req dto.CreatePostRequest, imageURLs []string) (*domain.Post, error) {
	args := m.Called(ctx, authorID, req, imageURLs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *MockPostService) ListPosts(ctx context.Context) ([]domain.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Post), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, postID string) (*domain.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, postID, actingUserID string, req dto.UpdatePostRequest, newImageURLs []string) (*domain.Post, error) {
	args := m.Called(ctx, postID, actingUserID, req, newImageURLs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, postID, actingUserID string) error {
	args := m.Called(ctx, postID, actingUserID)
	return args.Error(0)
}

func (m *MockPostService) ToggleLike(ctx context.Context, postID, actingUserID string) (*domain.LikeResult, error) {
	args := m.Called(ctx, postID, actingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LikeResult), args.Error(1)
}

var _ portssvc.PostSvcFacade = (*MockPostService)(nil)

// --- Mock CommentService ---
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) ListComments(ctx context.Context, postID string) ([]domain.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *MockCommentService) CreateComment(ctx context.Context, postID, authorID string, req dto.CreateCommentRequest) (*domain.Comment, error) {
	args := m.Called(ctx, postID, authorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentService) DeleteComment(ctx context.Context, commentID, actingUserID string) error {
	args := m.Called(ctx, commentID, actingUserID)
	return args.Error(0)
}

func (m *MockCommentService) ToggleReaction(ctx context.Context, commentID, actingUserID string, kind domain.ReactionKind) (*domain.ReactionResult, error) {
	args := m.Called(ctx, commentID, actingUserID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReactionResult), args.Error(1)
}

var _ portssvc.CommentSvcFacade = (*MockCommentService)(nil)

// --- Mock GoogleAuthService ---
type MockGoogleAuthService struct {
	mock.Mock
}

func (m *MockGoogleAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idtoken.Payload), args.Error(1)
}

var _ portssvc.GoogleAuthSvcFacade = (*MockGoogleAuthService)(nil)

// --- Mock UploaderService ---
type MockUploaderService struct {
	mock.Mock
}

func (m *MockUploaderService) StoreAll(ctx context.Context, files []portssvc.UploadFile) ([]string, error) {
	args := m.Called(ctx, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ portssvc.UploaderSvcFacade = (*MockUploaderService)(nil)

// --- Test Suite ---
type PostHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *MockUserService
	mockPostService *MockPostService
	tokenService    portssvc.TokenSvcFacade
}

func (suite *PostHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	cfg := &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "blog-backend-test",
		IsProduction:      true, // skip swagger routes in tests
	}

	suite.mockUserService = new(MockUserService)
	suite.mockPostService = new(MockPostService)
	suite.tokenService = services.NewTokenService(cfg)

	container := &portssvc.ServiceContainer{
		User:       suite.mockUserService,
		Post:       suite.mockPostService,
		Comment:    new(MockCommentService),
		Token:      suite.tokenService,
		GoogleAuth: new(MockGoogleAuthService),
		Uploader:   new(MockUploaderService),
	}

	handlers.RegisterRoutes(suite.router, cfg, container)
}

// generateTestToken issues a real token and stubs the user lookup the
// auth middleware performs.
func (suite *PostHandlerTestSuite) generateTestToken(userID string) string {
	token, _, err := suite.tokenService.GenerateAccessToken(context.Background(), &domain.User{UserID: userID})
	suite.Require().NoError(err)
	suite.mockUserService.On("GetUserByID", mock.Anything, userID).
		Return(&domain.User{UserID: userID, Email: "t@e.st", Name: "Tester"}, nil)
	return token
}

func (suite *PostHandlerTestSuite) decodeEnvelope(w *httptest.ResponseRecorder) dto.Envelope {
	var envelope dto.Envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

// --- Test Cases ---

func (suite *PostHandlerTestSuite) TestListPosts_Public() {
	posts := []domain.Post{
		{
			PostID:   uuid.NewString(),
			Title:    "First",
			Content:  "Body",
			AuthorID: uuid.NewString(),
			Author:   domain.UserSummary{Name: "Author"},
		},
	}
	suite.mockPostService.On("ListPosts", mock.Anything).Return(posts, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/posts", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	envelope := suite.decodeEnvelope(w)
	suite.True(envelope.Success)
	suite.mockPostService.AssertExpectations(suite.T())
}

func (suite *PostHandlerTestSuite) TestCreatePost_RequiresAuth() {
	body, _ := json.Marshal(dto.CreatePostRequest{Title: "T", Content: "C"})
	req, _ := http.NewRequest(http.MethodPost, "/api/posts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	envelope := suite.decodeEnvelope(w)
	suite.False(envelope.Success)
	suite.mockPostService.AssertNotCalled(suite.T(), "CreatePost")
}

func (suite *PostHandlerTestSuite) TestCreatePost_Success() {
	userID := uuid.NewString()
	token := suite.generateTestToken(userID)

	created := &domain.Post{
		PostID:   uuid.NewString(),
		Title:    "T",
		Content:  "C",
		AuthorID: userID,
		Author:   domain.UserSummary{UserID: userID, Name: "Tester"},
	}
	suite.mockPostService.On("CreatePost", mock.Anything, userID,
		dto.CreatePostRequest{Title: "T", Content: "C"}, []string(nil)).Return(created, nil).Once()

	body, _ := json.Marshal(dto.CreatePostRequest{Title: "T", Content: "C"})
	req, _ := http.NewRequest(http.MethodPost, "/api/posts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	envelope := suite.decodeEnvelope(w)
	suite.True(envelope.Success)
	suite.mockPostService.AssertExpectations(suite.T())
}

func (suite *PostHandlerTestSuite) TestCreatePost_RejectsBlankTitle() {
	userID := uuid.NewString()
	token := suite.generateTestToken(userID)

	body, _ := json.Marshal(map[string]string{"title": "   ", "content": "C"})
	req, _ := http.NewRequest(http.MethodPost, "/api/posts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	// The notblank binding rule rejects whitespace-only titles.
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPostService.AssertNotCalled(suite.T(), "CreatePost")
}

func (suite *PostHandlerTestSuite) TestUpdatePost_MalformedMultipartBody() {
	userID := uuid.NewString()
	postID := uuid.NewString()
	token := suite.generateTestToken(userID)

	// A multipart body that does not parse is the client's fault and must
	// come back as 400, not 500.
	req, _ := http.NewRequest(http.MethodPut, "/api/posts/"+postID, bytes.NewReader([]byte("not a multipart body")))
	req.Header.Set("Content-Type", "multipart/mixed; boundary=xyz")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	envelope := suite.decodeEnvelope(w)
	suite.False(envelope.Success)
	suite.Equal("malformed multipart form data", envelope.Message)
	suite.mockPostService.AssertNotCalled(suite.T(), "UpdatePost")
}

func (suite *PostHandlerTestSuite) TestToggleLike_Success() {
	userID := uuid.NewString()
	postID := uuid.NewString()
	token := suite.generateTestToken(userID)

	suite.mockPostService.On("ToggleLike", mock.Anything, postID, userID).
		Return(&domain.LikeResult{LikeCount: 7, Liked: true}, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/posts/"+postID+"/like", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	envelope := suite.decodeEnvelope(w)
	suite.True(envelope.Success)

	data, err := json.Marshal(envelope.Data)
	suite.Require().NoError(err)
	var toggle dto.ToggleLikeResponse
	suite.Require().NoError(json.Unmarshal(data, &toggle))
	suite.Equal(7, toggle.LikesCount)
	suite.True(toggle.IsLiked)
	suite.mockPostService.AssertExpectations(suite.T())
}

func (suite *PostHandlerTestSuite) TestRequestIDHeaderSet() {
	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(testLogger()))
	suite.router.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })

	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.NotEmpty(w.Header().Get("X-Request-ID"))
}

// --- Run Test Suite ---
func TestPostHandler(t *testing.T) {
	suite.Run(t, new(PostHandlerTestSuite))
}
