package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID              string      `gorm:"type:uuid;primary_key" json:"id"`
	Username        string      `gorm:"type:varchar(100);not null" json:"username"`
	Email           string      `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password        string      `gorm:"type:varchar(255);not null" json:"-"`
	Bio             string      `gorm:"type:text" json:"bio"`
	IsAdmin         bool        `gorm:"default:false" json:"is_admin"`
	ProfilePhotoURL *string     `gorm:"type:varchar(500)" json:"profile_photo_url"`
	ProfilePhotoKey *string     `gorm:"type:varchar(500)" json:"profile_photo_key"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	Posts           []PostModel `gorm:"foreignKey:AuthorID" json:"posts,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
