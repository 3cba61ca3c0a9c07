package persistent

import (
	"snapblog/internal/entity"
	"snapblog/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	GetByAuthorID(authorID string) ([]*entity.Post, error)
	List(limit, offset int, category string) ([]*entity.Post, error)
	Count() (int64, error)
	Update(post *entity.Post) error
	UpdateImage(id string, image entity.Image) error
	Delete(id string) error
	DeleteByAuthorID(authorID string) error
	ToggleLike(userID, postID string) error
	DeleteLikesByPostID(postID string) error
	DeleteLikesByUserID(userID string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	if postModel.ID == "" {
		postModel.ID = uuid.New().String()
	}
	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.
		Preload("Author").
		Preload("Likes").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) GetByAuthorID(authorID string) ([]*entity.Post, error) {
	var postModels []model.PostModel
	if err := r.db.Where("author_id = ?", authorID).Order("created_at DESC").Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *postRepository) List(limit, offset int, category string) ([]*entity.Post, error) {
	var postModels []model.PostModel
	query := r.db.Preload("Author").Preload("Likes").Order("created_at DESC")

	if category != "" {
		query = query.Where("category = ?", category)
	}

	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	if err := query.Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *postRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.PostModel{}).Count(&count).Error
	return count, err
}

func (r *postRepository) Update(post *entity.Post) error {
	return r.db.Model(&model.PostModel{}).Where("id = ?", post.ID).Updates(map[string]interface{}{
		"title":       post.Title,
		"description": post.Description,
		"category":    post.Category,
	}).Error
}

func (r *postRepository) UpdateImage(id string, image entity.Image) error {
	return r.db.Model(&model.PostModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"image_url": image.URL,
		"image_key": image.Key,
	}).Error
}

func (r *postRepository) Delete(id string) error {
	return r.db.Delete(&model.PostModel{}, "id = ?", id).Error
}

func (r *postRepository) DeleteByAuthorID(authorID string) error {
	return r.db.Delete(&model.PostModel{}, "author_id = ?", authorID).Error
}

// ToggleLike flips the caller's membership in the post's like set in a
// single transaction: delete wins when a row exists, insert otherwise.
// The unique (user_id, post_id) index plus ON CONFLICT DO NOTHING keep
// concurrent toggles from producing duplicate rows.
func (r *postRepository) ToggleLike(userID, postID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&model.LikeModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}

		likeModel := &model.LikeModel{
			ID:     uuid.New().String(),
			UserID: userID,
			PostID: postID,
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(likeModel).Error
	})
}

func (r *postRepository) DeleteLikesByPostID(postID string) error {
	return r.db.Delete(&model.LikeModel{}, "post_id = ?", postID).Error
}

func (r *postRepository) DeleteLikesByUserID(userID string) error {
	return r.db.Delete(&model.LikeModel{}, "user_id = ?", userID).Error
}
