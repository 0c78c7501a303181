package models

import (
	"time"

	"github.com/google/uuid"
)

type ForumThread struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	PostCount int       `json:"post_count"`
	CreatedAt time.Time `json:"created_at"`
}

// ForumPost bodies go through the same placeholder pipeline as articles, and
// Mentions holds the canonical tokens extracted at posting time.
type ForumPost struct {
	ID        uuid.UUID      `json:"id"`
	ThreadID  uuid.UUID      `json:"thread_id"`
	AuthorID  uuid.UUID      `json:"author_id"`
	Content   string         `json:"content"`
	Videos    []ArticleVideo `json:"videos"`
	Mentions  []string       `json:"mentions"`
	CreatedAt time.Time      `json:"created_at"`
}

type CreateThreadRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Category string `json:"category" validate:"required,oneof=general matches teams off-topic"`
	Content  string `json:"content" validate:"required"`
}

type CreatePostRequest struct {
	Content string `json:"content" validate:"required"`
}
