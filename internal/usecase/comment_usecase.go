package usecase

import (
	"snapblog/internal/apperr"
	"snapblog/internal/entity"
	"snapblog/internal/policy"
	"snapblog/internal/repo/persistent"
	"snapblog/pkg/logger"
)

type CommentUseCase interface {
	CreateComment(authorID, postID, text string) (*entity.Comment, error)
	ListComments() ([]*entity.Comment, error)
	UpdateComment(commentID, callerID, text string) (*entity.Comment, error)
	DeleteComment(commentID, callerID string) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	postRepo    persistent.PostRepository
	logger      *logger.Logger
}

func NewCommentUseCase(commentRepo persistent.CommentRepository, postRepo persistent.PostRepository, logger *logger.Logger) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		logger:      logger,
	}
}

// CreateComment refuses a comment on a post that does not exist, so a
// comment can never reference a missing post.
func (uc *commentUseCase) CreateComment(authorID, postID, text string) (*entity.Comment, error) {
	if _, err := uc.postRepo.GetByID(postID); err != nil {
		return nil, notFoundOr(err, "post not found")
	}

	comment := &entity.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Text:     text,
	}

	if err := uc.commentRepo.Create(comment); err != nil {
		uc.logger.Error("Failed to create comment: %v", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to create comment", err)
	}

	return comment, nil
}

func (uc *commentUseCase) ListComments() ([]*entity.Comment, error) {
	comments, err := uc.commentRepo.List()
	if err != nil {
		uc.logger.Error("Failed to list comments: %v", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to fetch comments", err)
	}
	return comments, nil
}

func (uc *commentUseCase) UpdateComment(commentID, callerID, text string) (*entity.Comment, error) {
	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		return nil, notFoundOr(err, "comment not found")
	}

	if err := policy.Decide(policy.ActionUpdateComment, callerID, false, comment.AuthorID); err != nil {
		return nil, err
	}

	comment.Text = text
	if err := uc.commentRepo.Update(comment); err != nil {
		uc.logger.Error("Failed to update comment %s: %v", commentID, err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to update comment", err)
	}

	return comment, nil
}

func (uc *commentUseCase) DeleteComment(commentID, callerID string) error {
	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		return notFoundOr(err, "comment not found")
	}

	if err := policy.Decide(policy.ActionDeleteComment, callerID, false, comment.AuthorID); err != nil {
		return err
	}

	if err := uc.commentRepo.Delete(commentID); err != nil {
		uc.logger.Error("Failed to delete comment %s: %v", commentID, err)
		return apperr.Wrap(apperr.KindInternal, "failed to delete comment", err)
	}

	return nil
}
