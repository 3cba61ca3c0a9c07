package persistent

import (
	"snapblog/internal/entity"
	"snapblog/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	user := &entity.User{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		Password:  m.Password,
		Bio:       m.Bio,
		IsAdmin:   m.IsAdmin,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if m.ProfilePhotoURL != nil && m.ProfilePhotoKey != nil {
		user.ProfilePhoto = &entity.Image{
			URL: *m.ProfilePhotoURL,
			Key: *m.ProfilePhotoKey,
		}
	}

	if len(m.Posts) > 0 {
		user.Posts = make([]entity.Post, len(m.Posts))
		for i := range m.Posts {
			user.Posts[i] = *ToPostEntity(&m.Posts[i])
		}
	}

	return user
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	user := &model.UserModel{
		ID:        e.ID,
		Username:  e.Username,
		Email:     e.Email,
		Password:  e.Password,
		Bio:       e.Bio,
		IsAdmin:   e.IsAdmin,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}

	if e.ProfilePhoto != nil {
		url := e.ProfilePhoto.URL
		key := e.ProfilePhoto.Key
		user.ProfilePhotoURL = &url
		user.ProfilePhotoKey = &key
	}

	return user
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:          m.ID,
		AuthorID:    m.AuthorID,
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		Image: entity.Image{
			URL: m.ImageURL,
			Key: m.ImageKey,
		},
		Likes:     make([]string, len(m.Likes)),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	for i := range m.Likes {
		post.Likes[i] = m.Likes[i].UserID
	}

	if m.Author != nil {
		post.Author = ToUserEntity(m.Author)
	}

	if len(m.Comments) > 0 {
		post.Comments = make([]entity.Comment, len(m.Comments))
		for i := range m.Comments {
			post.Comments[i] = *ToCommentEntity(&m.Comments[i])
		}
	}

	return post
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:          e.ID,
		AuthorID:    e.AuthorID,
		Title:       e.Title,
		Description: e.Description,
		Category:    e.Category,
		ImageURL:    e.Image.URL,
		ImageKey:    e.Image.Key,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	comment := &entity.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		AuthorID:  m.AuthorID,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if m.Author != nil {
		comment.Author = ToUserEntity(m.Author)
	}

	return comment
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        e.ID,
		PostID:    e.PostID,
		AuthorID:  e.AuthorID,
		Text:      e.Text,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
