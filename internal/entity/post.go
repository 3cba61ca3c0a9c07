package entity

import "time"

// Image references an asset in the external store. Key is the handle
// used to delete the asset; URL is the public location.
type Image struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

type Post struct {
	ID          string    `json:"id"`
	AuthorID    string    `json:"author_id"`
	Author      *User     `json:"author,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Image       Image     `json:"image"`
	Likes       []string  `json:"likes"`
	Comments    []Comment `json:"comments,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
