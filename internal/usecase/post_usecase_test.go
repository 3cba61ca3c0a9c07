package usecase

import (
	"context"
	"errors"
	"testing"

	"snapblog/internal/apperr"
	"snapblog/internal/entity"
	"snapblog/pkg/s3"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUpdatePost_NonOwnerForbidden(t *testing.T) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)
	userRepo := new(MockUserRepository)
	assets := new(MockAssetGateway)

	post := &entity.Post{ID: "p1", AuthorID: "u1", Title: "original"}
	postRepo.On("GetByID", "p1").Return(post, nil)

	uc := newTestPostUseCase(postRepo, commentRepo, userRepo, assets)

	title := "hijacked"
	_, err := uc.UpdatePost("p1", "u2", false, &title, nil, nil)

	assert.Error(t, err)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	// No field changes applied
	postRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdatePost_AdminDoesNotOverrideOwnership(t *testing.T) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)
	userRepo := new(MockUserRepository)
	assets := new(MockAssetGateway)

	postRepo.On("GetByID", "p1").Return(&entity.Post{ID: "p1", AuthorID: "u1"}, nil)

	uc := newTestPostUseCase(postRepo, commentRepo, userRepo, assets)

	title := "hijacked"
	_, err := uc.UpdatePost("p1", "admin", true, &title, nil, nil)

	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	postRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdatePost_OwnerAllowed(t *testing.T) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)
	userRepo := new(MockUserRepository)
	assets := new(MockAssetGateway)

	post := &entity.Post{ID: "p1", AuthorID: "u1", Title: "original"}
	postRepo.On("GetByID", "p1").Return(post, nil)
	postRepo.On("Update", mock.Anything).Return(nil)

	uc := newTestPostUseCase(postRepo, commentRepo, userRepo, assets)

	title := "updated"
	updated, err := uc.UpdatePost("p1", "u1", false, &title, nil, nil)

	assert.NoError(t, err)
	assert.Equal(t, "updated", updated.Title)
	postRepo.AssertCalled(t, "Update", mock.Anything)
}

func TestCreatePost_UploadFailureSurfaces(t *testing.T) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)
	userRepo := new(MockUserRepository)
	assets := new(MockAssetGateway)

	assets.On("Upload", mock.Anything, "/tmp/img.jpg", mock.Anything, "image/jpeg").
		Return(nil, errors.New("gateway unreachable"))

	uc := newTestPostUseCase(postRepo, commentRepo, userRepo, assets)
	_, err := uc.CreatePost(context.Background(), "u1", "title", "description text", "travel", "/tmp/img.jpg", "image/jpeg")

	// Upload failures before any record exists are real errors, never
	// a success payload.
	assert.Error(t, err)
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	postRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUpdatePostImage_NewUploadBeforeOldRemoval(t *testing.T) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)
	userRepo := new(MockUserRepository)
	assets := new(MockAssetGateway)

	post := &entity.Post{ID: "p1", AuthorID: "u1", Image: entity.Image{Key: "posts/u1/old.jpg"}}
	postRepo.On("GetByID", "p1").Return(post, nil)
	assets.On("Upload", mock.Anything, "/tmp/new.jpg", mock.Anything, "image/jpeg").
		Return(&s3.Asset{URL: "https://img/new.jpg", Key: "posts/u1/new.jpg"}, nil)
	assets.On("Delete", mock.Anything, "posts/u1/old.jpg").Return(errors.New("gateway unreachable"))
	postRepo.On("UpdateImage", "p1", entity.Image{URL: "https://img/new.jpg", Key: "posts/u1/new.jpg"}).Return(nil)

	uc := newTestPostUseCase(postRepo, commentRepo, userRepo, assets)
	_, err := uc.UpdatePostImage(context.Background(), "p1", "u1", false, "/tmp/new.jpg", "image/jpeg")

	// Old-asset removal failure does not block the replacement.
	assert.NoError(t, err)
	postRepo.AssertCalled(t, "UpdateImage", "p1", mock.Anything)
}

func TestUpdatePostImage_UploadFailureLeavesRecordUntouched(t *testing.T) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)
	userRepo := new(MockUserRepository)
	assets := new(MockAssetGateway)

	post := &entity.Post{ID: "p1", AuthorID: "u1", Image: entity.Image{Key: "posts/u1/old.jpg"}}
	postRepo.On("GetByID", "p1").Return(post, nil)
	assets.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("gateway unreachable"))

	uc := newTestPostUseCase(postRepo, commentRepo, userRepo, assets)
	_, err := uc.UpdatePostImage(context.Background(), "p1", "u1", false, "/tmp/new.jpg", "image/jpeg")

	assert.Error(t, err)
	assets.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	postRepo.AssertNotCalled(t, "UpdateImage", mock.Anything, mock.Anything)
}

func TestToggleLike_TwoCallsRestoreOriginalSet(t *testing.T) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)
	userRepo := new(MockUserRepository)
	assets := new(MockAssetGateway)

	// The repo flip is simulated by mutating the shared post value.
	post := &entity.Post{ID: "p1", AuthorID: "u1", Likes: []string{}}
	postRepo.On("GetByID", "p1").Return(post, nil)
	postRepo.On("ToggleLike", "u2", "p1").Run(func(args mock.Arguments) {
		for i, id := range post.Likes {
			if id == "u2" {
				post.Likes = append(post.Likes[:i], post.Likes[i+1:]...)
				return
			}
		}
		post.Likes = append(post.Likes, "u2")
	}).Return(nil)

	uc := newTestPostUseCase(postRepo, commentRepo, userRepo, assets)

	liked, err := uc.ToggleLike("p1", "u2")
	assert.NoError(t, err)
	assert.Equal(t, []string{"u2"}, liked.Likes)

	unliked, err := uc.ToggleLike("p1", "u2")
	assert.NoError(t, err)
	assert.Empty(t, unliked.Likes)
}

func TestToggleLike_PostNotFound(t *testing.T) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)
	userRepo := new(MockUserRepository)
	assets := new(MockAssetGateway)

	postRepo.On("GetByID", "missing").Return(nil, errors.New("record not found"))

	uc := newTestPostUseCase(postRepo, commentRepo, userRepo, assets)
	_, err := uc.ToggleLike("missing", "u2")

	assert.Error(t, err)
	postRepo.AssertNotCalled(t, "ToggleLike", mock.Anything, mock.Anything)
}

func TestListPosts_Paged(t *testing.T) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)
	userRepo := new(MockUserRepository)
	assets := new(MockAssetGateway)

	postRepo.On("List", 3, 3, "").Return([]*entity.Post{}, nil)

	uc := newTestPostUseCase(postRepo, commentRepo, userRepo, assets)
	_, err := uc.ListPosts(2, "")

	assert.NoError(t, err)
	postRepo.AssertExpectations(t)
}

func TestListPosts_ByCategory(t *testing.T) {
	postRepo := new(MockPostRepository)
	commentRepo := new(MockCommentRepository)
	userRepo := new(MockUserRepository)
	assets := new(MockAssetGateway)

	postRepo.On("List", 0, 0, "travel").Return([]*entity.Post{}, nil)

	uc := newTestPostUseCase(postRepo, commentRepo, userRepo, assets)
	_, err := uc.ListPosts(0, "travel")

	assert.NoError(t, err)
	postRepo.AssertExpectations(t)
}
