package usecase

import (
	"context"

	"snapblog/internal/entity"
	"snapblog/internal/repo/persistent"
	"snapblog/pkg/logger"
)

// cascadeDeleter walks the dependency graph of a record being removed:
// dependent rows in the store plus image assets in the external store.
// There is no transaction spanning the two stores, so the ordering is
// best effort: a gateway failure is logged and swallowed, local
// deletions always proceed. An orphaned external asset is the accepted
// cost of never blocking a user-visible delete.
type cascadeDeleter struct {
	postRepo    persistent.PostRepository
	commentRepo persistent.CommentRepository
	userRepo    persistent.UserRepository
	assets      AssetGateway
	logger      *logger.Logger
}

func newCascadeDeleter(
	postRepo persistent.PostRepository,
	commentRepo persistent.CommentRepository,
	userRepo persistent.UserRepository,
	assets AssetGateway,
	logger *logger.Logger,
) *cascadeDeleter {
	return &cascadeDeleter{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		assets:      assets,
		logger:      logger,
	}
}

// deletePost removes the post record, then its image asset, then every
// comment and like row referencing it. Caller has already authorized
// the delete and loaded the post.
func (d *cascadeDeleter) deletePost(ctx context.Context, post *entity.Post) error {
	if err := d.postRepo.Delete(post.ID); err != nil {
		return err
	}

	if err := d.assets.Delete(ctx, post.Image.Key); err != nil {
		d.logger.Error("Failed to remove image asset %s for deleted post %s: %v", post.Image.Key, post.ID, err)
	}

	if err := d.commentRepo.DeleteByPostID(post.ID); err != nil {
		return err
	}

	return d.postRepo.DeleteLikesByPostID(post.ID)
}

// deleteUser removes everything the user owns. External assets go
// first so records never outlive a window where they point at deleted
// rows; local deletions proceed even when the gateway is unreachable.
func (d *cascadeDeleter) deleteUser(ctx context.Context, user *entity.User) error {
	posts, err := d.postRepo.GetByAuthorID(user.ID)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(posts))
	for _, post := range posts {
		if post.Image.Key != "" {
			keys = append(keys, post.Image.Key)
		}
	}

	if len(keys) > 0 {
		if err := d.assets.DeleteMany(ctx, keys); err != nil {
			d.logger.Error("Failed to remove %d post image assets for user %s: %v", len(keys), user.ID, err)
		}
	}

	if user.ProfilePhoto != nil {
		if err := d.assets.Delete(ctx, user.ProfilePhoto.Key); err != nil {
			d.logger.Error("Failed to remove profile photo asset %s for user %s: %v", user.ProfilePhoto.Key, user.ID, err)
		}
	}

	if err := d.postRepo.DeleteByAuthorID(user.ID); err != nil {
		return err
	}

	// Like rows on the user's deleted posts, then the user's own likes
	// on everyone else's posts.
	for _, post := range posts {
		if err := d.postRepo.DeleteLikesByPostID(post.ID); err != nil {
			return err
		}
	}
	if err := d.postRepo.DeleteLikesByUserID(user.ID); err != nil {
		return err
	}

	if err := d.commentRepo.DeleteByAuthorID(user.ID); err != nil {
		return err
	}

	return d.userRepo.Delete(user.ID)
}
