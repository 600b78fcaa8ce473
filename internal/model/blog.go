package model

import (
	"time"

	"github.com/google/uuid"
)

// Blog is a user-authored awareness post with likes and comments.
type Blog struct {
	Base
	Title      string        `json:"title" db:"title"`
	Content    string        `json:"content" db:"content"`
	AuthorID   uuid.UUID     `json:"author_id" db:"author_id"`
	AuthorName string        `json:"author_name,omitempty" db:"author_name"`
	LikeCount  int           `json:"like_count" db:"like_count"`
	Comments   []BlogComment `json:"comments,omitempty" db:"-"`
}

type BlogComment struct {
	ID          uuid.UUID `json:"id" db:"id"`
	BlogID      uuid.UUID `json:"blog_id" db:"blog_id"`
	CommenterID uuid.UUID `json:"commenter_id" db:"commenter_id"`
	Text        string    `json:"text" db:"text"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type CreateBlogRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type CommentBlogRequest struct {
	Text string `json:"text" binding:"required"`
}
