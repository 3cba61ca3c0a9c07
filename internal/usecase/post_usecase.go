package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"snapblog/internal/apperr"
	"snapblog/internal/entity"
	"snapblog/internal/policy"
	"snapblog/internal/repo/persistent"
	"snapblog/pkg/logger"

	"github.com/google/uuid"
)

// Page size for the public post listing.
const postsPerPage = 3

type PostUseCase interface {
	CreatePost(ctx context.Context, authorID, title, description, category, imagePath, contentType string) (*entity.Post, error)
	GetPost(postID string) (*entity.Post, error)
	ListPosts(pageNumber int, category string) ([]*entity.Post, error)
	CountPosts() (int64, error)
	UpdatePost(postID, callerID string, callerIsAdmin bool, title, description, category *string) (*entity.Post, error)
	UpdatePostImage(ctx context.Context, postID, callerID string, callerIsAdmin bool, imagePath, contentType string) (*entity.Post, error)
	DeletePost(ctx context.Context, postID, callerID string, callerIsAdmin bool) (string, error)
	ToggleLike(postID, callerID string) (*entity.Post, error)
}

type postUseCase struct {
	postRepo    persistent.PostRepository
	commentRepo persistent.CommentRepository
	assets      AssetGateway
	cascade     *cascadeDeleter
	logger      *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	commentRepo persistent.CommentRepository,
	userRepo persistent.UserRepository,
	assets AssetGateway,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		assets:      assets,
		cascade:     newCascadeDeleter(postRepo, commentRepo, userRepo, assets, logger),
		logger:      logger,
	}
}

func (uc *postUseCase) CreatePost(ctx context.Context, authorID, title, description, category, imagePath, contentType string) (*entity.Post, error) {
	key := fmt.Sprintf("posts/%s/%s%s", authorID, uuid.New().String(), filepath.Ext(imagePath))

	// Upload before creating the record so a post never exists without
	// a live asset behind its image reference.
	asset, err := uc.assets.Upload(ctx, imagePath, key, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload post image: %v", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to upload image", err)
	}

	post := &entity.Post{
		AuthorID:    authorID,
		Title:       title,
		Description: description,
		Category:    category,
		Image:       entity.Image{URL: asset.URL, Key: asset.Key},
		Likes:       []string{},
	}

	if err := uc.postRepo.Create(post); err != nil {
		uc.logger.Error("Failed to create post: %v", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to create post", err)
	}

	return post, nil
}

func (uc *postUseCase) GetPost(postID string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, notFoundOr(err, "post not found")
	}
	return post, nil
}

// ListPosts pages through posts newest first when pageNumber is
// positive, otherwise returns all posts with an optional category
// filter.
func (uc *postUseCase) ListPosts(pageNumber int, category string) ([]*entity.Post, error) {
	if pageNumber > 0 {
		return uc.postRepo.List(postsPerPage, (pageNumber-1)*postsPerPage, "")
	}
	return uc.postRepo.List(0, 0, category)
}

func (uc *postUseCase) CountPosts() (int64, error) {
	return uc.postRepo.Count()
}

func (uc *postUseCase) UpdatePost(postID, callerID string, callerIsAdmin bool, title, description, category *string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, notFoundOr(err, "post not found")
	}

	if err := policy.Decide(policy.ActionUpdatePost, callerID, callerIsAdmin, post.AuthorID); err != nil {
		return nil, err
	}

	if title != nil {
		post.Title = *title
	}
	if description != nil {
		post.Description = *description
	}
	if category != nil {
		post.Category = *category
	}

	if err := uc.postRepo.Update(post); err != nil {
		uc.logger.Error("Failed to update post %s: %v", postID, err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to update post", err)
	}

	return uc.postRepo.GetByID(postID)
}

// UpdatePostImage replaces the post's image asset: the new asset is
// uploaded first and the record repointed only on success; removal of
// the old asset is best effort.
func (uc *postUseCase) UpdatePostImage(ctx context.Context, postID, callerID string, callerIsAdmin bool, imagePath, contentType string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, notFoundOr(err, "post not found")
	}

	if err := policy.Decide(policy.ActionReplacePostImage, callerID, callerIsAdmin, post.AuthorID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("posts/%s/%s%s", post.AuthorID, uuid.New().String(), filepath.Ext(imagePath))
	asset, err := uc.assets.Upload(ctx, imagePath, key, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload replacement image for post %s: %v", postID, err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to upload image", err)
	}

	if post.Image.Key != "" {
		if err := uc.assets.Delete(ctx, post.Image.Key); err != nil {
			uc.logger.Error("Failed to remove old image asset %s for post %s: %v", post.Image.Key, postID, err)
		}
	}

	if err := uc.postRepo.UpdateImage(postID, entity.Image{URL: asset.URL, Key: asset.Key}); err != nil {
		uc.logger.Error("Failed to update image for post %s: %v", postID, err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to update post image", err)
	}

	return uc.postRepo.GetByID(postID)
}

func (uc *postUseCase) DeletePost(ctx context.Context, postID, callerID string, callerIsAdmin bool) (string, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return "", notFoundOr(err, "post not found")
	}

	if err := policy.Decide(policy.ActionDeletePost, callerID, callerIsAdmin, post.AuthorID); err != nil {
		return "", err
	}

	if err := uc.cascade.deletePost(ctx, post); err != nil {
		uc.logger.Error("Failed to delete post %s: %v", postID, err)
		return "", apperr.Wrap(apperr.KindInternal, "failed to delete post", err)
	}

	return post.ID, nil
}

func (uc *postUseCase) ToggleLike(postID, callerID string) (*entity.Post, error) {
	if _, err := uc.postRepo.GetByID(postID); err != nil {
		return nil, notFoundOr(err, "post not found")
	}

	if err := uc.postRepo.ToggleLike(callerID, postID); err != nil {
		uc.logger.Error("Failed to toggle like on post %s: %v", postID, err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to toggle like", err)
	}

	return uc.postRepo.GetByID(postID)
}
