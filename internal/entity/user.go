package entity

import "time"

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Password     string    `json:"-"`
	Bio          string    `json:"bio"`
	IsAdmin      bool      `json:"is_admin"`
	ProfilePhoto *Image    `json:"profile_photo,omitempty"`
	Posts        []Post    `json:"posts,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
