package http

import (
	"context"

	"snapblog/internal/entity"
	"snapblog/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockAuthUseCase is a mock implementation of AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(email, username, password string) error {
	args := m.Called(email, username, password)
	return args.Error(0)
}

func (m *MockAuthUseCase) Login(email, password string) (*entity.User, string, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

// MockUserUseCase is a mock implementation of UserUseCase
type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) ListUsers(callerID string, callerIsAdmin bool) ([]*entity.User, error) {
	args := m.Called(callerID, callerIsAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserUseCase) CountUsers(callerID string, callerIsAdmin bool) (int64, error) {
	args := m.Called(callerID, callerIsAdmin)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserUseCase) GetUser(userID string) (*entity.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) UpdateUser(userID, callerID string, callerIsAdmin bool, username, password, bio *string) (*entity.User, error) {
	args := m.Called(userID, callerID, callerIsAdmin, username, password, bio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) UploadProfilePhoto(ctx context.Context, userID, imagePath, contentType string) (*entity.Image, error) {
	args := m.Called(ctx, userID, imagePath, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Image), args.Error(1)
}

func (m *MockUserUseCase) DeleteUser(ctx context.Context, userID, callerID string, callerIsAdmin bool) error {
	args := m.Called(ctx, userID, callerID, callerIsAdmin)
	return args.Error(0)
}

var _ usecase.UserUseCase = (*MockUserUseCase)(nil)

// MockPostUseCase is a mock implementation of PostUseCase
type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) CreatePost(ctx context.Context, authorID, title, description, category, imagePath, contentType string) (*entity.Post, error) {
	args := m.Called(ctx, authorID, title, description, category, imagePath, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) GetPost(postID string) (*entity.Post, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) ListPosts(pageNumber int, category string) ([]*entity.Post, error) {
	args := m.Called(pageNumber, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) CountPosts() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostUseCase) UpdatePost(postID, callerID string, callerIsAdmin bool, title, description, category *string) (*entity.Post, error) {
	args := m.Called(postID, callerID, callerIsAdmin, title, description, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) UpdatePostImage(ctx context.Context, postID, callerID string, callerIsAdmin bool, imagePath, contentType string) (*entity.Post, error) {
	args := m.Called(ctx, postID, callerID, callerIsAdmin, imagePath, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) DeletePost(ctx context.Context, postID, callerID string, callerIsAdmin bool) (string, error) {
	args := m.Called(ctx, postID, callerID, callerIsAdmin)
	return args.String(0), args.Error(1)
}

func (m *MockPostUseCase) ToggleLike(postID, callerID string) (*entity.Post, error) {
	args := m.Called(postID, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

// MockCommentUseCase is a mock implementation of CommentUseCase
type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) CreateComment(authorID, postID, text string) (*entity.Comment, error) {
	args := m.Called(authorID, postID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) ListComments() ([]*entity.Comment, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) UpdateComment(commentID, callerID, text string) (*entity.Comment, error) {
	args := m.Called(commentID, callerID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) DeleteComment(commentID, callerID string) error {
	args := m.Called(commentID, callerID)
	return args.Error(0)
}

var _ usecase.CommentUseCase = (*MockCommentUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func asCaller(userID string, isAdmin bool, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("is_admin", isAdmin)
		handler(c)
	}
}
