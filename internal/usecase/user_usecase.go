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
	"golang.org/x/crypto/bcrypt"
)

type UserUseCase interface {
	ListUsers(callerID string, callerIsAdmin bool) ([]*entity.User, error)
	CountUsers(callerID string, callerIsAdmin bool) (int64, error)
	GetUser(userID string) (*entity.User, error)
	UpdateUser(userID, callerID string, callerIsAdmin bool, username, password, bio *string) (*entity.User, error)
	UploadProfilePhoto(ctx context.Context, userID, imagePath, contentType string) (*entity.Image, error)
	DeleteUser(ctx context.Context, userID, callerID string, callerIsAdmin bool) error
}

type userUseCase struct {
	userRepo persistent.UserRepository
	assets   AssetGateway
	cascade  *cascadeDeleter
	logger   *logger.Logger
}

func NewUserUseCase(
	userRepo persistent.UserRepository,
	postRepo persistent.PostRepository,
	commentRepo persistent.CommentRepository,
	assets AssetGateway,
	logger *logger.Logger,
) UserUseCase {
	return &userUseCase{
		userRepo: userRepo,
		assets:   assets,
		cascade:  newCascadeDeleter(postRepo, commentRepo, userRepo, assets, logger),
		logger:   logger,
	}
}

func (uc *userUseCase) ListUsers(callerID string, callerIsAdmin bool) ([]*entity.User, error) {
	if err := policy.Decide(policy.ActionListUsers, callerID, callerIsAdmin, ""); err != nil {
		return nil, err
	}

	users, err := uc.userRepo.List()
	if err != nil {
		uc.logger.Error("Failed to list users: %v", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to fetch users", err)
	}
	for _, user := range users {
		user.Password = ""
	}
	return users, nil
}

func (uc *userUseCase) CountUsers(callerID string, callerIsAdmin bool) (int64, error) {
	if err := policy.Decide(policy.ActionCountUsers, callerID, callerIsAdmin, ""); err != nil {
		return 0, err
	}
	return uc.userRepo.Count()
}

func (uc *userUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByIDWithPosts(userID)
	if err != nil {
		return nil, notFoundOr(err, "user not found")
	}
	user.Password = ""
	return user, nil
}

func (uc *userUseCase) UpdateUser(userID, callerID string, callerIsAdmin bool, username, password, bio *string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, notFoundOr(err, "user not found")
	}

	if err := policy.Decide(policy.ActionUpdateUser, callerID, callerIsAdmin, user.ID); err != nil {
		return nil, err
	}

	if username != nil {
		user.Username = *username
	}
	if bio != nil {
		user.Bio = *bio
	}
	if password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			uc.logger.Error("Failed to hash password: %v", err)
			return nil, apperr.Wrap(apperr.KindInternal, "failed to update user", err)
		}
		user.Password = string(hashedPassword)
	}

	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update user %s: %v", userID, err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to update user", err)
	}

	user.Password = ""
	return user, nil
}

// UploadProfilePhoto uploads the new asset first; only on success is
// the previous photo removed (best effort) and the record repointed.
// A user with no prior photo skips the removal step.
func (uc *userUseCase) UploadProfilePhoto(ctx context.Context, userID, imagePath, contentType string) (*entity.Image, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, notFoundOr(err, "user not found")
	}

	key := fmt.Sprintf("profiles/%s/%s%s", userID, uuid.New().String(), filepath.Ext(imagePath))
	asset, err := uc.assets.Upload(ctx, imagePath, key, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload profile photo for user %s: %v", userID, err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to upload profile photo", err)
	}

	if user.ProfilePhoto != nil {
		if err := uc.assets.Delete(ctx, user.ProfilePhoto.Key); err != nil {
			uc.logger.Error("Failed to remove old profile photo %s for user %s: %v", user.ProfilePhoto.Key, userID, err)
		}
	}

	photo := &entity.Image{URL: asset.URL, Key: asset.Key}
	user.ProfilePhoto = photo
	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update profile photo for user %s: %v", userID, err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to update profile photo", err)
	}

	return photo, nil
}

func (uc *userUseCase) DeleteUser(ctx context.Context, userID, callerID string, callerIsAdmin bool) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return notFoundOr(err, "user not found")
	}

	if err := policy.Decide(policy.ActionDeleteUser, callerID, callerIsAdmin, user.ID); err != nil {
		return err
	}

	if err := uc.cascade.deleteUser(ctx, user); err != nil {
		uc.logger.Error("Failed to delete user %s: %v", userID, err)
		return apperr.Wrap(apperr.KindInternal, "failed to delete user", err)
	}

	return nil
}
