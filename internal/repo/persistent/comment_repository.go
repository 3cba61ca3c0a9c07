package persistent

import (
	"snapblog/internal/entity"
	"snapblog/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *entity.Comment) error
	GetByID(id string) (*entity.Comment, error)
	List() ([]*entity.Comment, error)
	Update(comment *entity.Comment) error
	Delete(id string) error
	DeleteByPostID(postID string) error
	DeleteByAuthorID(authorID string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if commentModel.ID == "" {
		commentModel.ID = uuid.New().String()
	}
	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) GetByID(id string) (*entity.Comment, error) {
	var commentModel model.CommentModel
	if err := r.db.Where("id = ?", id).First(&commentModel).Error; err != nil {
		return nil, err
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) List() ([]*entity.Comment, error) {
	var commentModels []model.CommentModel
	if err := r.db.Preload("Author").Order("created_at DESC").Find(&commentModels).Error; err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, nil
}

func (r *commentRepository) Update(comment *entity.Comment) error {
	return r.db.Model(&model.CommentModel{}).Where("id = ?", comment.ID).Update("text", comment.Text).Error
}

func (r *commentRepository) Delete(id string) error {
	return r.db.Delete(&model.CommentModel{}, "id = ?", id).Error
}

func (r *commentRepository) DeleteByPostID(postID string) error {
	return r.db.Delete(&model.CommentModel{}, "post_id = ?", postID).Error
}

func (r *commentRepository) DeleteByAuthorID(authorID string) error {
	return r.db.Delete(&model.CommentModel{}, "author_id = ?", authorID).Error
}
