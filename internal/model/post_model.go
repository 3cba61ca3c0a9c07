package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID          string         `gorm:"type:uuid;primary_key" json:"id"`
	AuthorID    string         `gorm:"type:uuid;not null;index" json:"author_id"`
	Title       string         `gorm:"type:varchar(200);not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Category    string         `gorm:"type:varchar(100);index" json:"category"`
	ImageURL    string         `gorm:"type:varchar(500);not null" json:"image_url"`
	ImageKey    string         `gorm:"type:varchar(500);not null" json:"image_key"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Author      *UserModel     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Likes       []LikeModel    `gorm:"foreignKey:PostID" json:"likes,omitempty"`
	Comments    []CommentModel `gorm:"foreignKey:PostID" json:"comments,omitempty"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
