package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentModel struct {
	ID        string     `gorm:"type:uuid;primary_key" json:"id"`
	PostID    string     `gorm:"type:uuid;not null;index" json:"post_id"`
	AuthorID  string     `gorm:"type:uuid;not null;index" json:"author_id"`
	Text      string     `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Author    *UserModel `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (CommentModel) TableName() string {
	return "comments"
}

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
